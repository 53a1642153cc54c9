package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftwood-social/interactive/pkg/internal/services"
)

func listTags(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	var err error
	var tags any
	if probe := c.Query("probe"); len(probe) > 0 {
		tags, err = services.SearchTags(take, offset, probe)
	} else {
		tags, err = services.ListTags(take, offset)
	}

	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(tags)
}
