package status

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"

	"visitlog/internal/core"
	"visitlog/internal/visit"
)

// Module сообщает состояние файла данных и узла, на котором он лежит.
type Module struct {
	DataPath   string
	Collection *visit.Collection
}

func (m *Module) Name() string { return "status" }

func (m *Module) Init(ctx context.Context) error {
	if m.DataPath == "" {
		return errors.New("status module requires a data path")
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, cmd string, args []string) (core.Response, error) {
	switch cmd {
	case "status":
		return m.status(ctx)
	default:
		return core.Response{Status: "error", ErrorCode: "unknown_command"}, fmt.Errorf("command %s not supported", cmd)
	}
}

func (m *Module) status(ctx context.Context) (core.Response, error) {
	resp := map[string]interface{}{
		"data_path": m.DataPath,
	}
	if m.Collection != nil {
		resp["records"] = m.Collection.Len()
	}

	fi, err := os.Stat(m.DataPath)
	switch {
	case err == nil:
		resp["file_exists"] = true
		resp["file_size"] = fi.Size()
		resp["file_mtime"] = fi.ModTime().UTC().Format(time.RFC3339)
	case errors.Is(err, os.ErrNotExist):
		resp["file_exists"] = false
	default:
		return core.Response{Status: "error", ErrorCode: "stat_failed"}, fmt.Errorf("stat data file: %w", err)
	}

	dir := filepath.Dir(m.DataPath)
	du, err := disk.UsageWithContext(ctx, dir)
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "disk_info_failed"}, fmt.Errorf("disk usage: %w", err)
	}
	resp["disk_total"] = du.Total
	resp["disk_free"] = du.Free
	resp["disk_used_pct"] = du.UsedPercent

	hInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "host_info_failed"}, fmt.Errorf("host info: %w", err)
	}
	resp["hostname"] = hInfo.Hostname
	resp["uptime_sec"] = hInfo.Uptime

	return core.Response{Status: "ok", Data: resp}, nil
}
