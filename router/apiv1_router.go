// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

// NewAPIV1Router mounts the api group plus the operational endpoints.
func NewAPIV1Router(e *echo.Echo) APIV1Router {
	e.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health/", func(ctx echo.Context) error {
		return ctx.JSON(200, echo.Map{"status": "ok"})
	})

	return APIV1Router{Group: apiV1}
}
