package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftwood-social/interactive/pkg/internal/http/exts"
	"github.com/driftwood-social/interactive/pkg/internal/models"
	"github.com/driftwood-social/interactive/pkg/internal/services"
)

func listPostComments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a number")
	}

	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	comments, count, err := services.ListComments(uint(id), take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  comments,
	})
}

func createPostComment(c *fiber.Ctx) error {
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

	var data models.CommentRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.NewComment(member, uint(id), data.Content)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
