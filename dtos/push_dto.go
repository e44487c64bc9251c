package dtos

// PushDecision is the outcome of evaluating one branch push against every
// applicable policy.
type PushDecision struct {
	Allowed bool `json:"allowed"`
	// enforced policies no bypass route matched for
	BlockingPolicies []string `json:"blockingPolicies"`
	// enforced policies a bypass route authorized
	BypassedPolicies []string `json:"bypassedPolicies"`
	// warn-mode policies, surfaced but never blocking
	WarnPolicies []string `json:"warnPolicies"`
}

// PushEvaluationRequest is the HTTP payload for a push evaluation.
type PushEvaluationRequest struct {
	UserID       int64  `json:"userId" validate:"required"`
	Branch       string `json:"branch" validate:"required"`
	BypassReason string `json:"bypassReason"`
}
