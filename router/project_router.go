// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/mergeguard/mergeguard/controllers"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	apiV1 APIV1Router,
	policyController *controllers.PolicyController,
	violationController *controllers.ViolationController,
	pushController *controllers.PushController,
) ProjectRouter {
	/**
	Project scoped router
	All routes below this line are scoped to a specific project.
	*/
	projectRouter := apiV1.Group.Group("/projects/:projectID")

	projectRouter.GET("/policies/", policyController.List)
	projectRouter.GET("/policy-overrides/", policyController.Overrides)
	projectRouter.POST("/push-evaluations/", pushController.Evaluate)

	projectRouter.GET("/merge-requests/:mergeRequestIID/violations/", violationController.Details)
	projectRouter.GET("/merge-requests/:mergeRequestIID/violation-comment/", violationController.CommentBody)

	return ProjectRouter{Group: projectRouter}
}
