package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/storyplanner/internal/entities"
	"github.com/mrlokans/storyplanner/internal/logging"
)

// Models lists every table the application owns, in migration order.
var Models = []any{
	&entities.Project{},
	&entities.Profile{},
	&entities.Character{},
	&entities.PlotThread{},
	&entities.Chapter{},
	&entities.Location{},
	&entities.WorldElement{},
	&entities.OutlineNode{},
	&entities.LegacyRecord{},
	&entities.AuditEvent{},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the sqlite database at dbPath and migrates all models.
func NewDatabase(dbPath string, log *zap.Logger) (*Database, error) {
	log = logging.OrNop(log)

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("database initialized", zap.String("path", dbPath))

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
