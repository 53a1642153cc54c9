package services

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
)

func FilterPostWithKeyword(tx *gorm.DB, keyword string) *gorm.DB {
	if len(keyword) == 0 {
		return tx
	}

	probe := "%" + strings.ToLower(keyword) + "%"
	return tx.Where("LOWER(title) LIKE ?", probe)
}

func FilterPostWithTag(tx *gorm.DB, tag models.Tag) *gorm.DB {
	return tx.Joins("JOIN post_tags ON posts.id = post_tags.post_id").
		Where("post_tags.tag_id = ?", tag.ID)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Tags").
		Preload("Member").
		Preload("Comments")
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func GetPost(id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(database.C).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, ErrPostNotFound
		}
		return item, err
	}

	return item, nil
}

func ListPost(tx *gorm.DB, take int, offset int) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// BuildPostResponse projects a post into its response shape. When the caller
// already batched like counts for the page it passes the map in; the
// single-post path falls back to a direct count instead.
func BuildPostResponse(post models.Post, likeCounts ...map[uint]int64) models.PostResponse {
	var likes int64
	if len(likeCounts) > 0 {
		likes = likeCounts[0][post.ID]
	} else {
		likes = CountPostLikes(post.ID)
	}

	return models.PostResponse{
		ID:           post.ID,
		Title:        post.Title,
		Content:      post.Content,
		Language:     post.Language,
		FilePath:     post.FilePath,
		Username:     post.Member.Name,
		CreatedAt:    post.CreatedAt,
		EditedAt:     post.EditedAt,
		LikeCount:    likes,
		CommentCount: len(post.Comments),
		Tags: lo.Map(post.Tags, func(item models.Tag, index int) string {
			return item.Name
		}),
	}
}

// listPostPage runs the shared page pipeline: count, fetch one page sorted by
// creation time descending, batch the like counts over exactly that page,
// then assemble.
func listPostPage(tx *gorm.DB, page int, size int) (models.Page[models.PostResponse], error) {
	var empty models.Page[models.PostResponse]

	count, err := CountPost(tx)
	if err != nil {
		return empty, err
	}

	items, err := ListPost(tx, size, page*size)
	if err != nil {
		return empty, err
	}

	likeCounts, err := CountLikesForPosts(items)
	if err != nil {
		return empty, err
	}

	content := lo.Map(items, func(item *models.Post, index int) models.PostResponse {
		return BuildPostResponse(*item, likeCounts)
	})

	return models.PageFrom(content, page, size, count), nil
}

func ListPosts(page int, size int) (models.Page[models.PostResponse], error) {
	return listPostPage(database.C, page, size)
}

func SearchPostsByKeyword(keyword string, page int, size int) (models.Page[models.PostResponse], error) {
	return listPostPage(FilterPostWithKeyword(database.C, keyword), page, size)
}

func SearchPostsByTag(name string, page int, size int) (models.Page[models.PostResponse], error) {
	tag, err := GetTag(name)
	if err != nil {
		return models.Page[models.PostResponse]{}, err
	}

	return listPostPage(FilterPostWithTag(database.C, tag), page, size)
}
