package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/driftwood-social/interactive/pkg/internal/http/exts"
	"github.com/driftwood-social/interactive/pkg/internal/services"
)

func togglePostLike(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	member, err := exts.CurrentMember(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a number")
	}

	liked, count, err := services.TogglePostLike(member, uint(id))
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(lo.Ternary(liked, fiber.StatusCreated, fiber.StatusOK)).JSON(fiber.Map{
		"liked":      liked,
		"like_count": count,
	})
}
