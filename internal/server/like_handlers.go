package server

import (
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type likeRequest struct {
	Username string `json:"username"`
}

// LikePost handles POST /posts/:id/likes. Liking a post the user already
// likes is a success, so retried requests always converge on 201.
func (s *Server) LikePost(c *fiber.Ctx) error {
	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidBodyError())
	}

	err := s.postService.LikePost(c.UserContext(), service.LikeInput{
		PostID:   c.Params("id"),
		Username: req.Username,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// UnlikePost handles DELETE /posts/:id/likes. Removing a like that does not
// exist is a success as long as the post does.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidBodyError())
	}

	err := s.postService.UnlikePost(c.UserContext(), service.LikeInput{
		PostID:   c.Params("id"),
		Username: req.Username,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
