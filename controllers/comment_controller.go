package controllers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mergeguard/mergeguard/shared"
)

type CommentController struct {
	mergeRequestRepository shared.MergeRequestRepository
	commentService         shared.ViolationCommentService
}

func NewCommentController(mergeRequestRepository shared.MergeRequestRepository, commentService shared.ViolationCommentService) *CommentController {
	return &CommentController{
		mergeRequestRepository: mergeRequestRepository,
		commentService:         commentService,
	}
}

// Refresh recomputes the violation comment and upserts it on the upstream
// merge request.
func (c *CommentController) Refresh(ctx shared.Context) error {
	mergeRequestID, err := uuid.Parse(ctx.Param("mergeRequestID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid merge request id").WithInternal(err)
	}

	if _, err := c.mergeRequestRepository.Read(mergeRequestID); err != nil {
		return echo.NewHTTPError(404, "could not find merge request").WithInternal(err)
	}

	if err := c.commentService.RefreshComment(ctx.Request().Context(), mergeRequestID); err != nil {
		return echo.NewHTTPError(500, "could not refresh violation comment").WithInternal(err)
	}

	return ctx.NoContent(204)
}
