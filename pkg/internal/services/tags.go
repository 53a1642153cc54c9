package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	localCache "github.com/driftwood-social/interactive/pkg/internal/cache"
	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
)

var ErrTagNotFound = errors.New("tag not found")

func ListTags(take int, offset int) ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

func SearchTags(take int, offset int, probe string) ([]models.Tag, error) {
	probe = "%" + probe + "%"

	var tags []models.Tag
	err := database.C.Where("name LIKE ?", probe).Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

// GetTag looks a tag up by its exact name. The search path hits this for
// every tag-filtered page, so resolved tags are kept in the local cache.
func GetTag(name string) (models.Tag, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	cacheKey := fmt.Sprintf("tag-query#%s", name)
	if val, err := marshal.Get(ctx, cacheKey, new(models.Tag)); err == nil {
		return *(val.(*models.Tag)), nil
	}

	var tag models.Tag
	if err := database.C.Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tag, ErrTagNotFound
		}
		return tag, err
	}

	_ = marshal.Set(
		ctx,
		cacheKey,
		tag,
		store.WithExpiration(30*time.Minute),
		store.WithTags([]string{"tag-query", fmt.Sprintf("tag#%d", tag.ID)}),
	)

	return tag, nil
}

// GetTagOrCreate resolves a tag by exact name, creating it on first use.
// Two requests can race past the lookup for a brand-new name, so the insert
// goes through ON CONFLICT DO NOTHING; a raised unique violation would poison
// the surrounding transaction on postgres. The loser sees zero rows affected
// and re-fetches the winner's row.
func GetTagOrCreate(tx *gorm.DB, name string) (models.Tag, error) {
	name = strings.TrimSpace(name)

	var tag models.Tag
	if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return tag, err
		}
		tag = models.Tag{Name: name}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag)
		if result.Error != nil {
			return tag, result.Error
		}
		if result.RowsAffected == 0 {
			if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
				return tag, err
			}
		}
	}

	return tag, nil
}
