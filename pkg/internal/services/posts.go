package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("only the owner can modify this post")
)

// AttachTags resolves every requested tag name and links it to the post.
// Blank names are skipped here, not in the tag lookup. Duplicate names in
// one request attach once; the join table's composite key would collapse
// them anyway.
func AttachTags(tx *gorm.DB, post *models.Post, names []string) error {
	seen := map[string]bool{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if len(name) == 0 || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := GetTagOrCreate(tx, name)
		if err != nil {
			return err
		}
		if err := tx.Model(post).Association("Tags").Append(&tag); err != nil {
			return err
		}
	}

	return nil
}

// CreatePost persists a new post owned by the member and attaches its tags.
// The file upload happens before and outside the transaction; the sweep
// reclaims it if the commit never lands.
func CreatePost(member models.Member, data models.PostRequest, file *multipart.FileHeader) (models.Post, error) {
	filePath, err := UploadPostFile(context.Background(), file, PostFileCategory)
	if err != nil {
		return models.Post{}, err
	}

	item := models.Post{
		Title:    data.Title,
		Content:  data.Content,
		Language: DetectLanguage(data.Content),
		FilePath: filePath,
		MemberID: member.ID,
		Member:   member,
	}

	start := time.Now()
	log.Debug().Str("title", item.Title).Uint("member", member.ID).Msg("Posting a post...")

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&item).Error; err != nil {
			return err
		}
		if filePath != nil {
			if err := ClaimPostFile(tx, *filePath, item.ID); err != nil {
				return err
			}
		}
		return AttachTags(tx, &item, data.Tags)
	}); err != nil {
		return item, err
	}

	log.Debug().Dur("elapsed", time.Since(start)).Uint("post", item.ID).Msg("The post is posted.")
	return item, nil
}

// UpdatePost rebuilds the post from the request. Existing tag associations
// are cleared outright and re-attached, never diffed. A new non-empty file
// replaces the old one; otherwise the existing reference stays.
func UpdatePost(member models.Member, postId uint, data models.PostRequest, file *multipart.FileHeader) (models.Post, error) {
	var item models.Post
	if err := database.C.Where("id = ?", postId).
		Preload("Member").
		Preload("Comments").
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, ErrPostNotFound
		}
		return item, err
	}

	if item.Member.Name != member.Name {
		return item, ErrNotPostOwner
	}

	if file != nil && file.Size > 0 {
		ctx := context.Background()
		if err := RemovePostFile(ctx, item.FilePath); err != nil {
			log.Warn().Err(err).Uint("post", item.ID).Msg("Unable to delete replaced file, leaving it to the sweep...")
		}
		filePath, err := UploadPostFile(ctx, file, PostFileCategory)
		if err != nil {
			return item, err
		}
		item.FilePath = filePath
	}

	item.Title = data.Title
	item.Content = data.Content
	item.Language = DetectLanguage(data.Content)
	item.EditedAt = lo.ToPtr(time.Now())

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).Association("Tags").Clear(); err != nil {
			return err
		}
		item.Tags = nil
		if err := tx.Omit(clause.Associations).Save(&item).Error; err != nil {
			return err
		}
		if item.FilePath != nil {
			if err := ClaimPostFile(tx, *item.FilePath, item.ID); err != nil {
				return err
			}
		}
		return AttachTags(tx, &item, data.Tags)
	}); err != nil {
		return item, err
	}

	return item, nil
}

// DeletePost removes the post, its file, and everything hanging off it.
// Tag rows themselves are never deleted, only the associations.
func DeletePost(member models.Member, postId uint) error {
	var item models.Post
	if err := database.C.Where("id = ?", postId).
		Preload("Member").
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if item.Member.Name != member.Name {
		return ErrNotPostOwner
	}

	if err := RemovePostFile(context.Background(), item.FilePath); err != nil {
		log.Warn().Err(err).Uint("post", item.ID).Msg("Unable to delete post file, leaving it to the sweep...")
	}

	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
