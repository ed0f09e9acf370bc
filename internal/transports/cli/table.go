package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"visitlog/internal/visit"
)

// Ширины колонок консольной таблицы, в символах.
const (
	widthID   = 5
	widthName = 25
	widthWhen = 20
	widthKind = 20
)

// renderTable выводит записи таблицей с фиксированными колонками.
// Длинные ФИО и типы обращения усекаются с многоточием.
func renderTable(w io.Writer, records []visit.Record) {
	separator := strings.Repeat("-", 75)

	fmt.Fprintf(w, "\n%s\n", separator)
	fmt.Fprintf(w, "%s %s %s %s\n",
		pad("№", widthID),
		pad("ФИО", widthName),
		pad("Дата и время", widthWhen),
		pad("Тип обращения", widthKind))
	fmt.Fprintln(w, separator)

	for _, rec := range records {
		fmt.Fprintf(w, "%s %s %s %s\n",
			pad(strconv.Itoa(rec.ID), widthID),
			pad(clip(rec.FullName, widthName, 22), widthName),
			pad(rec.WhenText(), widthWhen),
			pad(clip(rec.Kind, widthKind, 17), widthKind))
	}
	fmt.Fprintln(w, separator)
}

// pad дополняет строку пробелами справа до width символов.
// Ширина считается в рунах, иначе кириллица ломает колонки.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// clip усекает строку длиннее max до cut символов с многоточием.
func clip(s string, max, cut int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:cut]) + "..."
}
