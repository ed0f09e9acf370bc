package visit

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// Header — точные названия колонок файла данных, порядок фиксирован.
var Header = []string{"№", "ФИО", "Дата и время", "Тип обращения"}

var (
	// ErrHeaderMismatch возвращается, когда заголовок файла не совпадает с Header.
	ErrHeaderMismatch = errors.New("header mismatch")
	errFieldCount     = errors.New("wrong number of fields")
)

// RowError описывает строку, пропущенную при загрузке файла данных.
type RowError struct {
	Line int
	Row  []string
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: row %v skipped: %v", e.Line, e.Row, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// LoadResult описывает итог загрузки файла данных.
type LoadResult struct {
	Collection *Collection
	Skipped    []RowError
	// Created выставляется, когда файла не было: коллекция пуста,
	// файл появится при первом сохранении.
	Created bool
}

// Load читает файл данных в формате CSV. Битая строка не прерывает
// загрузку: она попадает в Skipped, чтение продолжается со следующей.
// Отсутствие файла ошибкой не считается.
func Load(path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadResult{Collection: NewCollection(), Created: true}, nil
		}
		return LoadResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return LoadResult{Collection: NewCollection()}, nil
		}
		return LoadResult{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	if !slices.Equal(header, Header) {
		// Ни одну строку нельзя сопоставить колонкам, файл пропускается целиком.
		res := LoadResult{Collection: NewCollection()}
		res.Skipped = append(res.Skipped, RowError{Line: 1, Row: header, Err: ErrHeaderMismatch})
		return res, nil
	}

	res := LoadResult{Collection: NewCollection()}
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				res.Skipped = append(res.Skipped, RowError{Line: line, Row: row, Err: err})
				continue
			}
			return LoadResult{}, fmt.Errorf("read %s: %w", path, err)
		}
		if len(row) != len(Header) {
			res.Skipped = append(res.Skipped, RowError{Line: line, Row: row, Err: errFieldCount})
			continue
		}
		rec, err := Parse(row[0], row[1], row[2], row[3])
		if err != nil {
			res.Skipped = append(res.Skipped, RowError{Line: line, Row: row, Err: err})
			continue
		}
		if err := res.Collection.Add(rec); err != nil {
			res.Skipped = append(res.Skipped, RowError{Line: line, Row: row, Err: err})
		}
	}
	return res, nil
}

// Save записывает заголовок и все записи в порядке коллекции,
// полностью перезаписывая файл. При ошибке ввода-вывода коллекция
// в памяти не меняется, сохранение можно повторить.
func (c *Collection) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	werr := w.Write(Header)
	for _, rec := range c.records {
		if werr != nil {
			break
		}
		werr = w.Write(rec.Fields())
	}
	if werr == nil {
		w.Flush()
		werr = w.Error()
	}
	if werr != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, werr)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
