package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"visitlog/internal/visit"
)

func writeTestConfig(t *testing.T, dataBody string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.csv")
	if dataBody != "" {
		if err := os.WriteFile(dataPath, []byte(dataBody), 0o644); err != nil {
			t.Fatalf("write data file: %v", err)
		}
	}
	cfgPath := filepath.Join(dir, "visitlog.yaml")
	body := fmt.Sprintf("data:\n  path: %s\n", dataPath)
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath, dataPath
}

func runCommand(t *testing.T, cfgPath string, stdin string, args ...string) (string, error) {
	t.Helper()
	root := New("test")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	if stdin != "" {
		root.SetIn(strings.NewReader(stdin))
	}
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "")
	out, err := runCommand(t, cfgPath, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "test" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestListCommand(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "№,ФИО,Дата и время,Тип обращения\n"+
		"3,Ivan Petrov,2024-03-01 10:30,Account opening\n")
	out, err := runCommand(t, cfgPath, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Ivan Petrov") {
		t.Fatalf("expected record in output:\n%s", out)
	}
	if !strings.Contains(out, "ФИО") {
		t.Fatalf("expected table header in output:\n%s", out)
	}
}

func TestAddCommandPersists(t *testing.T) {
	cfgPath, dataPath := writeTestConfig(t, "")
	out, err := runCommand(t, cfgPath, "",
		"add", "--id", "7", "--name", "Anna Ivanova", "--when", "2024-01-05 09:00", "--kind", "Deposit")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "№7") {
		t.Fatalf("unexpected output: %q", out)
	}

	res, err := visit.Load(dataPath)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if res.Collection.Len() != 1 {
		t.Fatalf("expected 1 record on disk, got %d", res.Collection.Len())
	}
	rec, err := res.Collection.At(0)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if rec.ID != 7 || rec.FullName != "Anna Ivanova" {
		t.Fatalf("unexpected record: %#v", rec)
	}
}

func TestAddCommandValidation(t *testing.T) {
	cfgPath, dataPath := writeTestConfig(t, "")
	_, err := runCommand(t, cfgPath, "",
		"add", "--id", "1", "--name", "Ivan Petrov", "--when", "01.03.2024", "--kind", "Loan")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid date format, expected YYYY-MM-DD HH:MM") {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(dataPath); !os.IsNotExist(statErr) {
		t.Fatal("failed add must not create the data file")
	}
}

func TestGetCommandOutOfRange(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "")
	if _, err := runCommand(t, cfgPath, "", "get", "0"); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestSaveCommandCreatesFile(t *testing.T) {
	cfgPath, dataPath := writeTestConfig(t, "")
	if _, err := runCommand(t, cfgPath, "", "save"); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	if !strings.HasPrefix(string(raw), "№,ФИО,Дата и время,Тип обращения") {
		t.Fatalf("expected header row, got:\n%s", raw)
	}
}

func TestAuditCommandDisabled(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "")
	if _, err := runCommand(t, cfgPath, "", "audit"); err == nil {
		t.Fatal("expected error when audit is disabled")
	}
}

func TestExportCommand(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "№,ФИО,Дата и время,Тип обращения\n"+
		"1,Anna Ivanova,2024-01-05 09:00,Deposit\n")
	outPath := filepath.Join(t.TempDir(), "visits.xlsx")
	if _, err := runCommand(t, cfgPath, "", "export", "--out", outPath); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("expected export file: %v", err)
	}
}
