package importers

import (
	"github.com/google/uuid"

	"github.com/mrlokans/storyplanner/internal/entities"
)

var entityNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://storyplanner.app/notion-import"))

// EntityID derives a stable id from the project, entity type and source id,
// so relations can point at rows that have not been written yet.
func EntityID(projectID string, entityType entities.EntityType, sourceID string) string {
	key := projectID + ":" + string(entityType) + ":" + sourceID
	return uuid.NewSHA1(entityNamespace, []byte(key)).String()
}
