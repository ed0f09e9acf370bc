package visits

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"visitlog/internal/core"
	"visitlog/internal/visit"
)

// Module предоставляет операции над коллекцией записей посещений.
type Module struct {
	DataPath   string
	Collection *visit.Collection
}

func (m *Module) Name() string { return "visits" }

func (m *Module) Init(ctx context.Context) error {
	if m.Collection == nil {
		return errors.New("visits module requires a collection")
	}
	if m.DataPath == "" {
		return errors.New("visits module requires a data path")
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, cmd string, args []string) (core.Response, error) {
	switch cmd {
	case "list":
		return core.Response{Status: "ok", Data: m.Collection.All()}, nil
	case "count":
		return core.Response{Status: "ok", Data: m.Collection.Len()}, nil
	case "get":
		return m.get(args)
	case "add":
		return m.add(args)
	case "save":
		return m.save()
	default:
		return core.Response{Status: "error", ErrorCode: "unknown_command"}, fmt.Errorf("command %s not supported", cmd)
	}
}

func (m *Module) get(args []string) (core.Response, error) {
	if len(args) != 1 {
		return core.Response{Status: "error", ErrorCode: "bad_index"}, fmt.Errorf("get expects one index argument, got %d", len(args))
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "bad_index"}, fmt.Errorf("parse index: %w", err)
	}
	rec, err := m.Collection.At(i)
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "index_out_of_range"}, err
	}
	return core.Response{Status: "ok", Data: rec}, nil
}

// add ожидает четыре аргумента в порядке колонок файла данных:
// номер, ФИО, дата и время, тип обращения.
func (m *Module) add(args []string) (core.Response, error) {
	if len(args) != 4 {
		return core.Response{Status: "error", ErrorCode: "bad_arguments"}, fmt.Errorf("add expects 4 arguments, got %d", len(args))
	}
	rec, err := visit.Parse(args[0], args[1], args[2], args[3])
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "validation_failed"}, err
	}
	if err := m.Collection.Add(rec); err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_record"}, err
	}
	return core.Response{Status: "ok", Data: rec}, nil
}

func (m *Module) save() (core.Response, error) {
	if err := m.Collection.Save(m.DataPath); err != nil {
		return core.Response{Status: "error", ErrorCode: "save_failed"}, err
	}
	return core.Response{Status: "ok", Data: map[string]interface{}{"path": m.DataPath, "records": m.Collection.Len()}}, nil
}
