package integrations

import (
	"github.com/mergeguard/mergeguard/integrations/gitlabint"
	"github.com/mergeguard/mergeguard/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(gitlabint.NewGitlabNoteClient, fx.As(new(shared.MergeRequestNoteClient)))),
)
