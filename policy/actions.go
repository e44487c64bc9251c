package policy

// ActionKind discriminates the typed actions a policy may carry.
type ActionKind string

const (
	ActionKindRequireApproval ActionKind = "require_approval"
	ActionKindSendBotMessage  ActionKind = "send_bot_message"
)

// Action is one typed policy action. Exactly one payload is non-nil,
// matching the kind.
type Action struct {
	Kind ActionKind

	RequireApproval *RequireApprovalAction
	SendBotMessage  *SendBotMessageAction
}

type RequireApprovalAction struct {
	ApprovalsRequired int

	UserApprovers    []string
	UserApproverIDs  []int64
	GroupApprovers   []string
	GroupApproverIDs []int64
	RoleApprovers    []string
}

type SendBotMessageAction struct {
	Enabled bool
}

type Actions []Action

type rawAction struct {
	Type string `json:"type"`

	ApprovalsRequired *int     `json:"approvals_required"`
	UserApprovers     []string `json:"user_approvers"`
	UserApproverIDs   []int64  `json:"user_approvers_ids"`
	GroupApprovers    []string `json:"group_approvers"`
	GroupApproverIDs  []int64  `json:"group_approvers_ids"`
	RoleApprovers     []string `json:"role_approvers"`

	Enabled *bool `json:"enabled"`
}

// actions of unrecognized type are preserved with their discriminator but
// without a payload, so counting and ordering stay intact
func parseActions(raw []rawAction) Actions {
	actions := make(Actions, 0, len(raw))
	for _, a := range raw {
		action := Action{Kind: ActionKind(a.Type)}
		switch action.Kind {
		case ActionKindRequireApproval:
			approvals := 0
			if a.ApprovalsRequired != nil {
				approvals = *a.ApprovalsRequired
			}
			action.RequireApproval = &RequireApprovalAction{
				ApprovalsRequired: approvals,
				UserApprovers:     a.UserApprovers,
				UserApproverIDs:   a.UserApproverIDs,
				GroupApprovers:    a.GroupApprovers,
				GroupApproverIDs:  a.GroupApproverIDs,
				RoleApprovers:     a.RoleApprovers,
			}
		case ActionKindSendBotMessage:
			enabled := true
			if a.Enabled != nil {
				enabled = *a.Enabled
			}
			action.SendBotMessage = &SendBotMessageAction{Enabled: enabled}
		}
		actions = append(actions, action)
	}
	return actions
}

// RequireApproval returns the payloads of all require_approval actions in
// document order.
func (a Actions) RequireApproval() []RequireApprovalAction {
	res := make([]RequireApprovalAction, 0)
	for _, action := range a {
		if action.Kind == ActionKindRequireApproval && action.RequireApproval != nil {
			res = append(res, *action.RequireApproval)
		}
	}
	return res
}

// SendBotMessage returns the payloads of all send_bot_message actions in
// document order.
func (a Actions) SendBotMessage() []SendBotMessageAction {
	res := make([]SendBotMessageAction, 0)
	for _, action := range a {
		if action.Kind == ActionKindSendBotMessage && action.SendBotMessage != nil {
			res = append(res, *action.SendBotMessage)
		}
	}
	return res
}

// BotMessageDisabled reports whether a send_bot_message action explicitly
// disables the violation comment.
func (a Actions) BotMessageDisabled() bool {
	for _, msg := range a.SendBotMessage() {
		if !msg.Enabled {
			return true
		}
	}
	return false
}
