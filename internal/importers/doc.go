// Package importers turns fetched Notion collections into story-planning entities.
//
// # Architecture
//
// An import run follows a fixed flow:
//
//	notion.Source → Collection (classified) → Importer → EntityStore
//	                                              ↘ OutlineBuilder (chapters)
//
// Each collection is classified once by Classify, then handed to the Importer
// registered for its type. Importers map records through a shared Mapper,
// write one batch per target store and describe what they did in an Outcome.
// The Pipeline creates the project, folds every Outcome into a single Report
// and finishes with a best-effort legacy copy of all source records.
//
// # Failure model
//
// Project creation is the only fatal step. A store rejecting a batch becomes a
// *StoreWriteError scoped to that collection; the run moves on to the next one
// and the error is listed in Report.Errors as "<collection>: <error>".
//
// # Example Usage
//
//	pipeline := importers.NewPipeline(projectStore, entityStore, logger)
//
//	collections := []importers.Collection{importers.NewCollection(source)}
//	report, err := pipeline.Run(ctx, collections, "My Saga", userID)
package importers
