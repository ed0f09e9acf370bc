package storage

import (
	"context"
	"time"
)

// AuditEvent фиксирует выполненную операцию над журналом посещений.
type AuditEvent struct {
	Action    string
	Status    string
	RequestID string
	Payload   []byte
	TS        time.Time
}

// AuditQuery задает фильтры выборки аудита.
type AuditQuery struct {
	From   time.Time
	To     time.Time
	Action string
	Limit  int
}

// Store описывает операции журнала аудита. Записи посещений сюда
// не попадают: они живут только в плоском файле данных.
type Store interface {
	SaveAudit(ctx context.Context, ev AuditEvent) error
	QueryAudit(ctx context.Context, q AuditQuery) ([]AuditEvent, error)
	Close() error
}
