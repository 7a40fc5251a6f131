package app

import (
	"github.com/saradorri/prospera/internal/infrastructure/database"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *application) InitDatabase(log *logger.Logger) (*database.Database, error) {
	dbConfig := database.ConfigFrom(a.config.Database)
	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		return nil, err
	}
	log.Info("Database connected",
		zap.String("host", dbConfig.Host),
		zap.String("name", dbConfig.Name),
	)
	return db, nil
}

func (a *application) InitGormDB(db *database.Database) *gorm.DB {
	return db.GetDB()
}
