package services

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
)

func TestUploadPostFileSkipsEmptyUploads(t *testing.T) {
	store := setupTest(t)

	key, err := UploadPostFile(context.Background(), nil, PostFileCategory)
	require.NoError(t, err)
	assert.Nil(t, key)
	assert.Equal(t, 0, store.uploads)
}

func TestUploadPostFileRecordsObject(t *testing.T) {
	store := setupTest(t)

	key, err := UploadPostFile(context.Background(), fileHeader("shot.jpg"), PostFileCategory)
	require.NoError(t, err)
	require.NotNil(t, key)
	assert.Equal(t, 1, store.uploads)

	var object models.StorageObject
	require.NoError(t, database.C.Where("key = ?", *key).First(&object).Error)
	assert.Equal(t, PostFileCategory, object.Category)
	assert.Nil(t, object.PostID)
}

func TestCleanupOrphanFiles(t *testing.T) {
	store := setupTest(t)

	viper.Set("storage.orphan_grace", time.Minute)
	defer viper.Set("storage.orphan_grace", nil)

	alice := seedMember(t, "alice")
	claimed, err := CreatePost(alice, models.PostRequest{Title: "kept"}, fileHeader("kept.png"))
	require.NoError(t, err)

	orphanKey, err := UploadPostFile(context.Background(), fileHeader("lost.png"), PostFileCategory)
	require.NoError(t, err)

	// Age both objects past the grace period; only the unclaimed one goes.
	stale := time.Now().Add(-2 * time.Minute)
	require.NoError(t, database.C.Model(&models.StorageObject{}).
		Where("1 = 1").Update("created_at", stale).Error)

	CleanupOrphanFiles()

	assert.Equal(t, 1, store.deletes)
	assert.False(t, store.objects[*orphanKey])
	assert.True(t, store.objects[*claimed.FilePath])

	var remaining int64
	require.NoError(t, database.C.Model(&models.StorageObject{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestCleanupOrphanFilesHonorsGrace(t *testing.T) {
	store := setupTest(t)

	viper.Set("storage.orphan_grace", time.Hour)
	defer viper.Set("storage.orphan_grace", nil)

	_, err := UploadPostFile(context.Background(), fileHeader("fresh.png"), PostFileCategory)
	require.NoError(t, err)

	CleanupOrphanFiles()

	assert.Equal(t, 0, store.deletes)
}
