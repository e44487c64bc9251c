package services

import (
	"log/slog"

	"github.com/mergeguard/mergeguard/shared"
)

var _ shared.AuditSink = &auditLogService{}

// auditLogService writes audit events to the structured log. The bypass
// auditor treats the sink as fire and forget, so this never returns errors
// to its callers.
type auditLogService struct{}

func NewAuditLogService() *auditLogService {
	return &auditLogService{}
}

func (s *auditLogService) Audit(event shared.AuditEvent) {
	args := []any{
		"author", event.Author.Name,
		"authorId", event.Author.ID,
		"authorKind", event.Author.Kind,
		"scope", event.Scope,
		"target", event.Target,
		"message", event.Message,
	}
	for key, value := range event.AdditionalDetails {
		args = append(args, key, value)
	}
	slog.Info(event.Name, args...)
}
