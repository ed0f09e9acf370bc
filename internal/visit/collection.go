package visit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecord возвращается при попытке добавить пустую запись.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrIndexOutOfRange возвращается при обращении по недопустимому индексу.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Collection хранит записи посещений в порядке добавления.
// Записи не удаляются и не сортируются; дубликаты ID допустимы.
type Collection struct {
	records []Record
}

// NewCollection создает пустую коллекцию.
func NewCollection() *Collection {
	return &Collection{}
}

// Add добавляет запись в конец коллекции. Пустая запись отклоняется.
func (c *Collection) Add(r Record) error {
	if r == (Record{}) {
		return fmt.Errorf("zero record: %w", ErrInvalidRecord)
	}
	c.records = append(c.records, r)
	return nil
}

// At возвращает запись по индексу, отсчет с нуля.
func (c *Collection) At(i int) (Record, error) {
	if i < 0 || i >= len(c.records) {
		return Record{}, fmt.Errorf("index %d, have %d records: %w", i, len(c.records), ErrIndexOutOfRange)
	}
	return c.records[i], nil
}

// All возвращает копию последовательности записей; каждый вызов
// дает независимый срез, обход всегда начинается с начала.
func (c *Collection) All() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len возвращает количество записей.
func (c *Collection) Len() int {
	return len(c.records)
}
