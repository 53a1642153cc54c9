package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftwood-social/interactive/pkg/internal/http/exts"
	"github.com/driftwood-social/interactive/pkg/internal/models"
	"github.com/driftwood-social/interactive/pkg/internal/services"
)

func listPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)

	result, err := services.ListPosts(page, size)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

func searchPosts(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if len(keyword) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "keyword is required")
	}

	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)

	result, err := services.SearchPostsByKeyword(keyword, page, size)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

func searchPostsByTag(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)

	result, err := services.SearchPostsByTag(c.Params("tag"), page, size)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(result)
}

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a number")
	}

	item, err := services.GetPost(uint(id))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(services.BuildPostResponse(item))
}

// bindPostRequest reads the multipart form the way older clients send it:
// scalar fields plus a repeated tags field.
func bindPostRequest(c *fiber.Ctx) (models.PostRequest, error) {
	data := models.PostRequest{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}
	if form, err := c.MultipartForm(); err == nil {
		data.Tags = form.Value["tags"]
	}

	return data, exts.ValidateStruct(&data)
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	member, err := exts.CurrentMember(c)
	if err != nil {
		return err
	}

	data, err := bindPostRequest(c)
	if err != nil {
		return err
	}
	file, _ := c.FormFile("file")

	item, err := services.CreatePost(member, data, file)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(services.BuildPostResponse(item))
}

func updatePost(c *fiber.Ctx) error {
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

	data, err := bindPostRequest(c)
	if err != nil {
		return err
	}
	file, _ := c.FormFile("file")

	item, err := services.UpdatePost(member, uint(id), data, file)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(services.BuildPostResponse(item))
}

func deletePost(c *fiber.Ctx) error {
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

	if err := services.DeletePost(member, uint(id)); err != nil {
		return mapServiceError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
