package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/driftwood-social/interactive/pkg/internal/services"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		tags := api.Group("/tags").Name("Tags API")
		{
			tags.Get("/", listTags)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", listPosts)
			posts.Get("/search", searchPosts)
			posts.Get("/by-tag/:tag", searchPostsByTag)
			posts.Get("/:postId", getPost)
			posts.Post("/", createPost)
			posts.Put("/:postId", updatePost)
			posts.Delete("/:postId", deletePost)

			posts.Post("/:postId/likes", togglePostLike)
			posts.Get("/:postId/comments", listPostComments)
			posts.Post("/:postId/comments", createPostComment)
		}
	}
}

// mapServiceError translates the service taxonomy into transport statuses.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrMemberNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotPostOwner):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
}
