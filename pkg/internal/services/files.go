package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
)

const PostFileCategory = "post"

// FileStore is the external blob storage collaborator. Its calls sit outside
// the database transaction, which is why every upload leaves a StorageObject
// row behind for the orphan sweep.
type FileStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

var Files FileStore

// UploadPostFile pushes the file to the store and records it as unclaimed.
// A nil or empty file means the post simply has no attachment.
func UploadPostFile(ctx context.Context, file *multipart.FileHeader, category string) (*string, error) {
	if file == nil || file.Size == 0 {
		return nil, nil
	}

	key := fmt.Sprintf("%s/%s%s", category, uuid.NewString(), filepath.Ext(file.Filename))
	key, err := Files.Upload(ctx, file, key)
	if err != nil {
		return nil, fmt.Errorf("unable to upload file: %w", err)
	}

	if err := database.C.Save(&models.StorageObject{
		Key:      key,
		Category: category,
	}).Error; err != nil {
		return nil, err
	}

	return &key, nil
}

// ClaimPostFile binds an uploaded object to its post so the sweep leaves it
// alone. Runs inside the post transaction.
func ClaimPostFile(tx *gorm.DB, key string, postId uint) error {
	return tx.Model(&models.StorageObject{}).
		Where("key = ?", key).
		Update("post_id", postId).Error
}

func RemovePostFile(ctx context.Context, key *string) error {
	if key == nil || len(*key) == 0 {
		return nil
	}

	if err := Files.Delete(ctx, *key); err != nil {
		return fmt.Errorf("unable to delete file: %w", err)
	}

	return database.C.Where("key = ?", *key).Delete(&models.StorageObject{}).Error
}

// CleanupOrphanFiles removes uploads whose owning post never committed.
// Grace period keeps it from racing an in-flight create.
func CleanupOrphanFiles() {
	grace := viper.GetDuration("storage.orphan_grace")
	if grace <= 0 {
		grace = time.Hour
	}

	var orphans []models.StorageObject
	if err := database.C.
		Where("post_id IS NULL").
		Where("created_at < ?", time.Now().Add(-grace)).
		Find(&orphans).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when listing orphan files...")
		return
	}
	if len(orphans) == 0 {
		return
	}

	ctx := context.Background()
	var swept int
	for _, object := range orphans {
		if err := Files.Delete(ctx, object.Key); err != nil {
			log.Warn().Err(err).Str("key", object.Key).Msg("Unable to sweep orphan file, will retry next round...")
			continue
		}
		if err := database.C.Delete(&object).Error; err != nil {
			log.Error().Err(err).Str("key", object.Key).Msg("Unable to remove swept storage object record...")
			continue
		}
		swept++
	}

	log.Info().Int("count", swept).Msg("Swept orphan files.")
}
