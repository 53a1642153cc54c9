package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwood-social/interactive/pkg/internal/models"
)

func TestNewComment(t *testing.T) {
	setupTest(t)

	alice := seedMember(t, "alice")
	bob := seedMember(t, "bob")

	item, err := CreatePost(alice, models.PostRequest{Title: "commented"}, nil)
	require.NoError(t, err)

	comment, err := NewComment(bob, item.ID, "well said")
	require.NoError(t, err)
	assert.Equal(t, item.ID, comment.PostID)
	assert.Equal(t, bob.ID, comment.MemberID)

	_, err = NewComment(bob, 9999, "into the void")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListComments(t *testing.T) {
	setupTest(t)

	alice := seedMember(t, "alice")
	item, err := CreatePost(alice, models.PostRequest{Title: "thread"}, nil)
	require.NoError(t, err)

	for _, content := range []string{"one", "two", "three"} {
		_, err := NewComment(alice, item.ID, content)
		require.NoError(t, err)
	}

	comments, count, err := ListComments(item.ID, 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.Len(t, comments, 2)
	assert.Equal(t, "alice", comments[0].Member.Name)
}
