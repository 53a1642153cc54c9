package services

import (
	"errors"

	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func CountPostLikes(id uint) int64 {
	var count int64
	if err := database.C.Model(&models.Like{}).
		Where("post_id = ?", id).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

// CountLikesForPosts computes like counts for a whole page of posts with a
// single grouped query. Posts nobody liked are absent from the map, so
// lookups have to treat a miss as zero.
func CountLikesForPosts(posts []*models.Post) (map[uint]int64, error) {
	counts := map[uint]int64{}
	if len(posts) == 0 {
		return counts, nil
	}

	idx := lo.Map(posts, func(item *models.Post, index int) uint {
		return item.ID
	})

	var results []struct {
		PostID uint
		Count  int64
	}

	if err := database.C.Model(&models.Like{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&results).Error; err != nil {
		return counts, err
	}

	for _, info := range results {
		counts[info.PostID] = info.Count
	}

	return counts, nil
}

// TogglePostLike flips the member's like on a post. The first return value
// reports whether the post ended up liked.
func TogglePostLike(member models.Member, postId uint) (bool, int64, error) {
	var post models.Post
	if err := database.C.Where("id = ?", postId).Select("id").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrPostNotFound
		}
		return false, 0, err
	}

	like := models.Like{PostID: post.ID, MemberID: member.ID}
	if err := database.C.Where(like).First(&like).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, err
		}
		if err := database.C.Save(&like).Error; err != nil {
			return false, 0, err
		}
		return true, CountPostLikes(post.ID), nil
	}

	if err := database.C.Delete(&like).Error; err != nil {
		return false, 0, err
	}

	return false, CountPostLikes(post.ID), nil
}
