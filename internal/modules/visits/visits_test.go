package visits

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"visitlog/internal/visit"
)

func newTestModule(t *testing.T) *Module {
	t.Helper()
	m := &Module{
		DataPath:   filepath.Join(t.TempDir(), "data.csv"),
		Collection: visit.NewCollection(),
	}
	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return m
}

func TestInitRequiresCollection(t *testing.T) {
	m := &Module{DataPath: "data.csv"}
	if err := m.Init(context.Background()); err == nil {
		t.Fatal("expected error for nil collection")
	}
}

func TestAddListGet(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	resp, err := m.Execute(ctx, "add", []string{"3", "Ivan Petrov", "2024-03-01 10:30", "Account opening"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("unexpected response: %#v", resp)
	}

	resp, err = m.Execute(ctx, "list", nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	records, ok := resp.Data.([]visit.Record)
	if !ok || len(records) != 1 {
		t.Fatalf("unexpected list data: %#v", resp.Data)
	}

	resp, err = m.Execute(ctx, "get", []string{"0"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	rec, ok := resp.Data.(visit.Record)
	if !ok || rec.ID != 3 {
		t.Fatalf("unexpected get data: %#v", resp.Data)
	}
}

func TestAddValidationFailure(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	resp, err := m.Execute(ctx, "add", []string{"x", "Ivan Petrov", "2024-03-01 10:30", "Loan"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if resp.ErrorCode != "validation_failed" {
		t.Fatalf("unexpected error code: %q", resp.ErrorCode)
	}
	var verr *visit.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	// Ошибка валидации не меняет коллекцию.
	if m.Collection.Len() != 0 {
		t.Fatalf("collection must stay empty, got %d", m.Collection.Len())
	}
}

func TestGetOutOfRange(t *testing.T) {
	m := newTestModule(t)
	resp, err := m.Execute(context.Background(), "get", []string{"0"})
	if !errors.Is(err, visit.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if resp.ErrorCode != "index_out_of_range" {
		t.Fatalf("unexpected error code: %q", resp.ErrorCode)
	}
}

func TestSaveAndReload(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	if _, err := m.Execute(ctx, "add", []string{"1", "Anna Ivanova", "2024-01-05 09:00", "Deposit"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := m.Execute(ctx, "save", nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	res, err := visit.Load(m.DataPath)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if res.Collection.Len() != 1 {
		t.Fatalf("expected 1 record on disk, got %d", res.Collection.Len())
	}
}

func TestUnknownCommand(t *testing.T) {
	m := newTestModule(t)
	resp, err := m.Execute(context.Background(), "drop", nil)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if resp.ErrorCode != "unknown_command" {
		t.Fatalf("unexpected error code: %q", resp.ErrorCode)
	}
}
