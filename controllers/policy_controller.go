package controllers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/overrides"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/mergeguard/mergeguard/utils"
)

type PolicyController struct {
	policyRepository  shared.SecurityPolicyRepository
	projectRepository shared.ProjectRepository
	branchMatcher     shared.BranchMatcher
	protectedBranches shared.ProtectedBranchRepository
}

func NewPolicyController(policyRepository shared.SecurityPolicyRepository, projectRepository shared.ProjectRepository, branchMatcher shared.BranchMatcher, protectedBranches shared.ProtectedBranchRepository) *PolicyController {
	return &PolicyController{
		policyRepository:  policyRepository,
		projectRepository: projectRepository,
		branchMatcher:     branchMatcher,
		protectedBranches: protectedBranches,
	}
}

type policyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	PolicyIndex int       `json:"policyIndex"`
	Enforcement string    `json:"enforcement"`
	FailOpen    bool      `json:"failOpen"`
	RuleCount   int       `json:"ruleCount"`
}

func (c *PolicyController) loadProject(ctx shared.Context) (models.Project, error) {
	projectID, err := uuid.Parse(ctx.Param("projectID"))
	if err != nil {
		return models.Project{}, echo.NewHTTPError(400, "invalid project id").WithInternal(err)
	}
	project, err := c.projectRepository.Read(projectID)
	if err != nil {
		return models.Project{}, echo.NewHTTPError(404, "could not find project").WithInternal(err)
	}
	return project, nil
}

// List returns the typed view of every policy applicable to a project.
func (c *PolicyController) List(ctx shared.Context) error {
	project, err := c.loadProject(ctx)
	if err != nil {
		return err
	}

	records, err := c.policyRepository.GetApplicableToProject(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load policies").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(policy.NewApprovalPolicies(records), func(p policy.ApprovalPolicy) policyResponse {
		return policyResponse{
			ID:          p.ID(),
			Name:        p.Name(),
			Description: p.Description(),
			Enabled:     p.Enabled(),
			PolicyIndex: p.PolicyIndex(),
			Enforcement: string(p.Enforcement()),
			FailOpen:    p.Fallback().FailOpen(),
			RuleCount:   len(p.Rules()),
		}
	}))
}

type overridesResponse struct {
	ApprovalSettings []settingOverrideResponse `json:"approvalSettings"`
	PushSettings     []pushOverrideResponse    `json:"pushSettings"`
}

type settingOverrideResponse struct {
	Attribute string   `json:"attribute"`
	Policies  []string `json:"policies"`
}

type pushOverrideResponse struct {
	Attribute string   `json:"attribute"`
	Policy    string   `json:"policy"`
	Branches  []string `json:"branches"`
}

// Overrides returns the approval and push settings the applicable policies
// enforce on top of the project configuration.
func (c *PolicyController) Overrides(ctx shared.Context) error {
	project, err := c.loadProject(ctx)
	if err != nil {
		return err
	}

	records, err := c.policyRepository.GetApplicableToProject(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load policies").WithInternal(err)
	}
	policies := policy.NewApprovalPolicies(records)

	pushOverrides, err := overrides.PushSettings(project, policies, c.branchMatcher, c.protectedBranches)
	if err != nil {
		return echo.NewHTTPError(500, "could not compute push overrides").WithInternal(err)
	}

	return ctx.JSON(200, overridesResponse{
		ApprovalSettings: utils.Map(overrides.ApprovalSettings(project, policies), func(o overrides.SettingOverride) settingOverrideResponse {
			return settingOverrideResponse{
				Attribute: string(o.Attribute),
				Policies: utils.Map(o.Policies, func(p policy.ApprovalPolicy) string {
					return p.Name()
				}),
			}
		}),
		PushSettings: utils.Map(pushOverrides, func(o overrides.PushOverride) pushOverrideResponse {
			return pushOverrideResponse{
				Attribute: string(o.Attribute),
				Policy:    o.Policy.Name(),
				Branches:  o.Branches,
			}
		}),
	})
}
