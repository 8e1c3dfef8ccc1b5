// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - ProjectStore: Create import projects (internal/importers/stores.go)
//   - EntityStore: Batched writes of planning entities (internal/importers/stores.go)
//   - ProfileReader: Subscription and trial lookup (internal/services/interfaces.go)
//   - ProjectReader, OutlineReader, AuditEventReader: API read side (internal/http/stores.go)
//
// ## Remote Workspace Interfaces
//
//   - CollectionLoader: Token check and collection fetch (internal/services/interfaces.go)
//   - TokenValidator: Token check only (internal/http/stores.go)
//
// ## Import Interfaces
//
//   - Importer: One per collection type (internal/importers/importer.go)
//   - ImportRunner: The orchestrator (internal/services/interfaces.go)
//   - EligibilityChecker, ImportAuditor: Gate and audit trail (internal/services/interfaces.go)
//
// # Adding a New Collection Type
//
//  1. Add a CollectionType constant and a classification rule in
//     internal/importers/collection.go. Rules are checked in order, so put
//     the new rule where its keywords cannot shadow an existing type.
//
//  2. Add the entity to internal/entities/story.go and register it in
//     database.Models.
//
//  3. Add a mapping method to Mapper and an importer:
//
//     type SceneImporter struct {
//         store EntityStore
//     }
//
//     func (i *SceneImporter) Import(ctx context.Context, m *Mapper, col Collection) (Outcome, error)
//
//     var _ importers.Importer = (*SceneImporter)(nil)
//
//  4. Register the importer in NewPipeline.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
