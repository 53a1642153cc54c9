package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
)

func TestCountLikesForPosts(t *testing.T) {
	setupTest(t)

	alice := seedMember(t, "alice")
	bob := seedMember(t, "bob")

	var posts []*models.Post
	for _, title := range []string{"first", "second", "third"} {
		item, err := CreatePost(alice, models.PostRequest{Title: title}, nil)
		require.NoError(t, err)
		posts = append(posts, &item)
	}

	require.NoError(t, database.C.Create(&models.Like{PostID: posts[0].ID, MemberID: alice.ID}).Error)
	require.NoError(t, database.C.Create(&models.Like{PostID: posts[0].ID, MemberID: bob.ID}).Error)
	require.NoError(t, database.C.Create(&models.Like{PostID: posts[1].ID, MemberID: bob.ID}).Error)

	counts, err := CountLikesForPosts(posts)
	require.NoError(t, err)

	assert.EqualValues(t, 2, counts[posts[0].ID])
	assert.EqualValues(t, 1, counts[posts[1].ID])

	// Unliked posts stay absent; the zero value has to be the default.
	_, present := counts[posts[2].ID]
	assert.False(t, present)

	assert.EqualValues(t, 2, CountPostLikes(posts[0].ID))
	assert.EqualValues(t, 0, CountPostLikes(posts[2].ID))
}

func TestCountLikesForPostsEmptyPage(t *testing.T) {
	setupTest(t)

	counts, err := CountLikesForPosts(nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestTogglePostLike(t *testing.T) {
	setupTest(t)

	alice := seedMember(t, "alice")
	item, err := CreatePost(alice, models.PostRequest{Title: "toggle me"}, nil)
	require.NoError(t, err)

	liked, count, err := TogglePostLike(alice, item.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, count)

	liked, count, err = TogglePostLike(alice, item.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, count)
}

func TestTogglePostLikeDeleteFailure(t *testing.T) {
	setupTest(t)

	alice := seedMember(t, "alice")
	item, err := CreatePost(alice, models.PostRequest{Title: "toggle me"}, nil)
	require.NoError(t, err)

	_, _, err = TogglePostLike(alice, item.ID)
	require.NoError(t, err)

	require.NoError(t, database.C.Callback().Delete().Before("gorm:delete").
		Register("test:fail_like_delete", func(tx *gorm.DB) {
			if tx.Statement != nil && tx.Statement.Table == "likes" {
				_ = tx.AddError(errors.New("like rows are pinned"))
			}
		}))

	// A failed un-like must not claim the post ended up liked.
	liked, count, err := TogglePostLike(alice, item.ID)
	require.Error(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, count)
}

func TestTogglePostLikeMissingPost(t *testing.T) {
	setupTest(t)

	alice := seedMember(t, "alice")
	_, _, err := TogglePostLike(alice, 9999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
