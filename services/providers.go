package services

import (
	"github.com/mergeguard/mergeguard/bypass"
	"github.com/mergeguard/mergeguard/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProtectedBranchMatcher, fx.As(new(shared.BranchMatcher)))),
	fx.Provide(fx.Annotate(NewAuditLogService, fx.As(new(shared.AuditSink)))),
	fx.Provide(bypass.NewUserChecker),
	fx.Provide(fx.Annotate(NewPushEvaluationService, fx.As(new(shared.PushEvaluator)))),
	fx.Provide(fx.Annotate(NewViolationCommentService, fx.As(new(shared.ViolationCommentService)))),
)
