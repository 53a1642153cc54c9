package database

import (
	"github.com/driftwood-social/interactive/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Member{},
	&models.Tag{},
	&models.Post{},
	&models.Comment{},
	&models.StorageObject{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Like{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
