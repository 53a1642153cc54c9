package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	localCache "github.com/driftwood-social/interactive/pkg/internal/cache"
	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
)

// memoryFileStore stands in for the blob storage collaborator and counts
// every call so tests can assert which operations were never attempted.
type memoryFileStore struct {
	uploads int
	deletes int
	objects map[string]bool
}

func newMemoryFileStore() *memoryFileStore {
	return &memoryFileStore{objects: map[string]bool{}}
}

func (s *memoryFileStore) Upload(_ context.Context, _ *multipart.FileHeader, key string) (string, error) {
	s.uploads++
	s.objects[key] = true
	return key, nil
}

func (s *memoryFileStore) Delete(_ context.Context, key string) error {
	s.deletes++
	delete(s.objects, key)
	return nil
}

func setupTest(t *testing.T) *memoryFileStore {
	t.Helper()

	if localCache.S == nil {
		require.NoError(t, localCache.NewStore())
	}

	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))
	database.C = db

	store := newMemoryFileStore()
	Files = store
	return store
}

func seedMember(t *testing.T, name string) models.Member {
	t.Helper()

	member := models.Member{Name: name, Nick: name}
	require.NoError(t, database.C.Create(&member).Error)
	return member
}

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: 1024}
}
