package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"visitlog/internal/visit"
)

func TestUnknownCommand(t *testing.T) {
	m := &Module{DataPath: "data.csv"}
	_, err := m.Execute(context.Background(), "unknown", nil)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestInitRequiresDataPath(t *testing.T) {
	m := &Module{}
	if err := m.Init(context.Background()); err == nil {
		t.Fatal("expected error for empty data path")
	}
}

func TestStatusMissingFile(t *testing.T) {
	m := &Module{
		DataPath:   filepath.Join(t.TempDir(), "absent.csv"),
		Collection: visit.NewCollection(),
	}
	resp, err := m.Execute(context.Background(), "status", nil)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data: %#v", resp.Data)
	}
	if data["file_exists"] != false {
		t.Fatalf("expected file_exists=false, got %v", data["file_exists"])
	}
	if data["records"] != 0 {
		t.Fatalf("expected 0 records, got %v", data["records"])
	}
}

func TestStatusExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("№,ФИО,Дата и время,Тип обращения\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	m := &Module{DataPath: path}
	resp, err := m.Execute(context.Background(), "status", nil)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	data := resp.Data.(map[string]interface{})
	if data["file_exists"] != true {
		t.Fatalf("expected file_exists=true, got %v", data["file_exists"])
	}
	if size, ok := data["file_size"].(int64); !ok || size == 0 {
		t.Fatalf("expected non-zero file_size, got %v", data["file_size"])
	}
}
