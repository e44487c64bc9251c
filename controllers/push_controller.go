package controllers

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mergeguard/mergeguard/bypass"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/shared"
)

type PushController struct {
	projectRepository shared.ProjectRepository
	pushEvaluator     shared.PushEvaluator
}

func NewPushController(projectRepository shared.ProjectRepository, pushEvaluator shared.PushEvaluator) *PushController {
	return &PushController{
		projectRepository: projectRepository,
		pushEvaluator:     pushEvaluator,
	}
}

// Evaluate runs the bypass cascade for a push event and returns the
// decision. A granted bypass needing a reason that was not supplied is a
// 422, not a denial, so the caller can prompt for one.
func (c *PushController) Evaluate(ctx shared.Context) error {
	projectID, err := uuid.Parse(ctx.Param("projectID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
	}

	var req dtos.PushEvaluationRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid request body").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	project, err := c.projectRepository.Read(projectID)
	if err != nil {
		return echo.NewHTTPError(404, "could not find project").WithInternal(err)
	}

	decision, err := c.pushEvaluator.EvaluatePush(project, req.UserID, req.Branch, req.BypassReason)
	if err != nil {
		if errors.Is(err, bypass.ErrReasonRequired) {
			return echo.NewHTTPError(422, "a bypass reason is required").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not evaluate push").WithInternal(err)
	}

	return ctx.JSON(200, decision)
}
