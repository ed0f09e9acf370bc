package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"visitlog/internal/app"
	"visitlog/internal/config"
	"visitlog/internal/export"
	"visitlog/internal/storage"
	"visitlog/internal/visit"
	"visitlog/pkg/logger"
)

var errAuditDisabled = errors.New("audit is disabled, enable it in the config")

// CLI держит зависимости команд журнала посещений.
type CLI struct {
	version string
	app     *app.App
}

// New создает корневую CLI-команду.
func New(version string) *cobra.Command {
	c := &CLI{version: version}
	var configPath string

	root := &cobra.Command{
		Use:           "visitlog",
		Short:         "Журнал посещений банка",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			lg := logger.New(cfg.Log.Level, cfg.Log.Format)
			a, err := app.New(cmd.Context(), cfg, lg)
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app == nil {
				return nil
			}
			return c.app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "путь к файлу конфигурации YAML")

	root.AddCommand(newVersionCmd(c))
	root.AddCommand(newListCmd(c))
	root.AddCommand(newAddCmd(c))
	root.AddCommand(newGetCmd(c))
	root.AddCommand(newSaveCmd(c))
	root.AddCommand(newExportCmd(c))
	root.AddCommand(newStatusCmd(c))
	root.AddCommand(newAuditCmd(c))
	root.AddCommand(newMenuCmd(c))

	return root
}

func newVersionCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", c.version)
		},
	}
}

func newListCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Показать все записи",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.app.Service.Execute(cmd.Context(), "visits", "list", nil)
			if err != nil {
				return err
			}
			records, ok := resp.Data.([]visit.Record)
			if !ok {
				return fmt.Errorf("unexpected list payload %T", resp.Data)
			}
			renderTable(cmd.OutOrStdout(), records)
			return nil
		},
	}
}

func newAddCmd(c *CLI) *cobra.Command {
	var id, name, when, kind string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить запись и сохранить файл данных",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			resp, err := c.app.Service.Execute(ctx, "visits", "add", []string{id, name, when, kind})
			if err != nil {
				return err
			}
			if _, err := c.app.Service.Execute(ctx, "visits", "save", nil); err != nil {
				return err
			}
			rec, ok := resp.Data.(visit.Record)
			if !ok {
				return fmt.Errorf("unexpected add payload %T", resp.Data)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Запись №%d добавлена и сохранена\n", rec.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "номер записи")
	cmd.Flags().StringVar(&name, "name", "", "ФИО клиента")
	cmd.Flags().StringVar(&when, "when", "", "дата и время (ГГГГ-ММ-ДД ЧЧ:ММ)")
	cmd.Flags().StringVar(&kind, "kind", "", "тип обращения")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("when")
	return cmd
}

func newGetCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "get <index>",
		Short: "Показать запись по индексу (с нуля)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.app.Service.Execute(cmd.Context(), "visits", "get", args)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
}

func newSaveCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Сохранить записи в файл данных",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.app.Service.Execute(cmd.Context(), "visits", "save", nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Сохранено записей: %d (%s)\n", c.app.Collection.Len(), c.app.Config.Data.Path)
			return nil
		},
	}
}

func newExportCmd(c *CLI) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Выгрузить записи в файл Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := out
			if path == "" {
				path = c.app.Config.Export.Path
			}
			if err := export.WriteXLSX(path, c.app.Collection.All()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Выгружено записей: %d (%s)\n", c.app.Collection.Len(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "путь к файлу выгрузки (по умолчанию из конфига)")
	return cmd
}

func newStatusCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Показать состояние файла данных и узла",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
			defer cancel()

			resp, err := c.app.Service.Execute(ctx, "status", "status", nil)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
}

func newAuditCmd(c *CLI) *cobra.Command {
	var limit int
	var action string
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Показать последние события аудита",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.app.Store == nil {
				return errAuditDisabled
			}
			events, err := c.app.Store.QueryAudit(cmd.Context(), storage.AuditQuery{Action: action, Limit: limit})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(toAuditView(events))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "максимум событий")
	cmd.Flags().StringVar(&action, "action", "", "фильтр по действию, например visits:add")
	return cmd
}

type auditView struct {
	Action    string          `json:"action"`
	Status    string          `json:"status"`
	RequestID string          `json:"request_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	TS        string          `json:"ts"`
}

func toAuditView(events []storage.AuditEvent) []auditView {
	out := make([]auditView, 0, len(events))
	for _, ev := range events {
		out = append(out, auditView{
			Action:    ev.Action,
			Status:    ev.Status,
			RequestID: ev.RequestID,
			Payload:   ev.Payload,
			TS:        ev.TS.Format(time.RFC3339),
		})
	}
	return out
}

func newMenuCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Интерактивный режим работы с журналом",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &Menu{App: c.app, In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			return m.Run(cmd.Context())
		},
	}
}
