package visit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLayout задает формат даты и времени посещения, точность до минуты.
const TimeLayout = "2006-01-02 15:04"

// ValidationError описывает ошибку валидации поля при создании записи.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Record представляет одно посещение банка. После создания значение не меняется.
type Record struct {
	ID       int       `json:"id"`
	FullName string    `json:"full_name"`
	When     time.Time `json:"when"`
	Kind     string    `json:"kind"`
}

// New создает запись из уже разобранных значений; время усекается до минуты.
// Уникальность ID не проверяется: дубликаты допустимы.
func New(id int, fullName string, when time.Time, kind string) Record {
	return Record{ID: id, FullName: fullName, When: when.Truncate(time.Minute), Kind: kind}
}

// Parse создает запись из текстовых полей в порядке колонок файла данных.
// ФИО и тип обращения не валидируются, пустые значения допустимы.
func Parse(idText, fullName, whenText, kind string) (Record, error) {
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Record{}, &ValidationError{Field: "id", Message: fmt.Sprintf("invalid id %q, expected integer", idText)}
	}
	when, err := time.Parse(TimeLayout, strings.TrimSpace(whenText))
	if err != nil {
		return Record{}, &ValidationError{Field: "date", Message: "invalid date format, expected YYYY-MM-DD HH:MM"}
	}
	return New(id, fullName, when, kind), nil
}

// WhenText возвращает дату и время в формате файла данных.
func (r Record) WhenText() string {
	return r.When.Format(TimeLayout)
}

// Fields возвращает четыре значения записи в порядке колонок файла данных.
func (r Record) Fields() []string {
	return []string{strconv.Itoa(r.ID), r.FullName, r.WhenText(), r.Kind}
}
