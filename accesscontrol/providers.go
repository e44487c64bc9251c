package accesscontrol

import (
	"github.com/mergeguard/mergeguard/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewCasbinRoleStore, fx.As(new(shared.ProjectRoleResolver)))),
)
