package common

import (
	"context"
	"fmt"

	"visitlog/internal/core"
	"visitlog/internal/storage"
)

// Service объединяет общий пайплайн command->core->audit.
// Журнал посещений однопользовательский, поэтому авторизации
// и ограничения частоты здесь нет.
type Service struct {
	Source   string
	Registry *core.Registry
	// AuditSink может быть nil, тогда аудит выключен.
	AuditSink AuditSink
}

// Execute вызывает core-модуль и фиксирует результат в аудите.
func (s *Service) Execute(ctx context.Context, module, command string, args []string) (core.Response, error) {
	resp, execErr := s.Registry.Execute(ctx, module, command, args)
	status := "ok"
	if execErr != nil || resp.Status == "error" {
		status = "error"
	}
	s.writeAudit(ctx, status, module, command, args)
	return resp, execErr
}

func (s *Service) writeAudit(ctx context.Context, status, module, command string, args []string) {
	if s.AuditSink == nil {
		return
	}
	_ = s.AuditSink.Write(ctx, storage.AuditEvent{
		Action:    fmt.Sprintf("%s:%s", module, command),
		Status:    status,
		RequestID: newRequestID(),
		Payload:   buildAuditPayload(module, command, args),
	})
}
