package router

import (
	"github.com/labstack/echo/v4"
	"github.com/mergeguard/mergeguard/controllers"
)

type MergeRequestRouter struct {
	*echo.Group
}

func NewMergeRequestRouter(apiV1 APIV1Router, commentController *controllers.CommentController) MergeRequestRouter {
	mergeRequestRouter := apiV1.Group.Group("/merge-requests/:mergeRequestID")

	mergeRequestRouter.POST("/violation-comment/refresh/", commentController.Refresh)

	return MergeRequestRouter{Group: mergeRequestRouter}
}
