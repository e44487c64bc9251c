// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/mergeguard/mergeguard/accesscontrol"
	"github.com/mergeguard/mergeguard/controllers"
	"github.com/mergeguard/mergeguard/database"
	"github.com/mergeguard/mergeguard/database/repositories"
	"github.com/mergeguard/mergeguard/integrations"
	"github.com/mergeguard/mergeguard/middlewares"
	"github.com/mergeguard/mergeguard/router"
	"github.com/mergeguard/mergeguard/services"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	// Initialize database connection first
	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error()) // print detailed error message to stdout
		panic(errors.New("failed to setup database connection"))
	}

	// Run database migrations using the existing database connection
	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(middlewares.Server),
		repositories.Module,
		controllers.ControllerModule,
		services.Module,
		router.RouterModule,
		accesscontrol.Module,
		integrations.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(ProjectRouter router.ProjectRouter) {}),
		fx.Invoke(func(MergeRequestRouter router.MergeRequestRouter) {}),
		fx.Invoke(startServer),
	).Run()
}

func startServer(lc fx.Lifecycle, e *echo.Echo) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		Debug: environment == "dev",

		// Configures whether SDK should generate and attach stack traces to pure
		// capture message calls.
		AttachStacktrace: true,

		// If this flag is enabled, certain personally identifiable information (PII) is added by active integrations.
		// By default, no such data is sent.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
