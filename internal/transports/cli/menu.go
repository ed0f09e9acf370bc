package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"visitlog/internal/app"
)

// Menu реализует интерактивный режим работы с журналом: цикл
// выбора действия до явного выхода или конца ввода.
type Menu struct {
	App *app.App
	In  io.Reader
	Out io.Writer
}

// Run запускает цикл меню. Возвращается при выборе "Выйти",
// конце ввода или ошибке чтения.
func (m *Menu) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(m.In)
	for {
		fmt.Fprintln(m.Out, "\nМеню:")
		fmt.Fprintln(m.Out, "1. Показать все записи")
		fmt.Fprintln(m.Out, "2. Добавить новую запись")
		fmt.Fprintln(m.Out, "3. Сохранить изменения")
		fmt.Fprintln(m.Out, "4. Выйти")

		choice, ok := m.prompt(scanner, "Выберите действие: ")
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			renderTable(m.Out, m.App.Collection.All())
		case "2":
			if ok := m.addRecord(ctx, scanner); !ok {
				return scanner.Err()
			}
		case "3":
			m.save(ctx)
		case "4":
			answer, ok := m.prompt(scanner, "\nСохранить изменения перед выходом? (да/нет): ")
			if ok && strings.EqualFold(answer, "да") {
				m.save(ctx)
			}
			fmt.Fprintln(m.Out, "Выход из программы.")
			return nil
		default:
			fmt.Fprintln(m.Out, "\nНеверный ввод. Попробуйте снова.")
		}
	}
}

// addRecord запрашивает поля записи и добавляет ее в коллекцию.
// Ошибка валидации выводится, меню продолжает работу.
func (m *Menu) addRecord(ctx context.Context, scanner *bufio.Scanner) bool {
	id, ok := m.prompt(scanner, "Номер записи: ")
	if !ok {
		return false
	}
	name, ok := m.prompt(scanner, "ФИО клиента: ")
	if !ok {
		return false
	}
	when, ok := m.prompt(scanner, "Дата и время (ГГГГ-ММ-ДД ЧЧ:ММ): ")
	if !ok {
		return false
	}
	kind, ok := m.prompt(scanner, "Тип обращения: ")
	if !ok {
		return false
	}

	if _, err := m.App.Service.Execute(ctx, "visits", "add", []string{id, name, when, kind}); err != nil {
		fmt.Fprintf(m.Out, "\nОшибка: %v\n", err)
		return true
	}
	fmt.Fprintln(m.Out, "\nЗапись успешно добавлена!")
	return true
}

func (m *Menu) save(ctx context.Context) {
	if _, err := m.App.Service.Execute(ctx, "visits", "save", nil); err != nil {
		fmt.Fprintf(m.Out, "\nОшибка сохранения: %v\n", err)
		return
	}
	fmt.Fprintln(m.Out, "\nДанные успешно сохранены!")
}

func (m *Menu) prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Fprint(m.Out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
