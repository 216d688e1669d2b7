// Command crmkit is a mock CRM record browser. It seeds demo objects in
// memory, applies optional layout overlays, and exposes the browse, render,
// export, edit, and import-schema actions.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/salesmock/crmkit/internal/browser"
	"github.com/salesmock/crmkit/internal/config"
	"github.com/salesmock/crmkit/internal/sample"
	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/model"
	"github.com/salesmock/crmkit/pkg/openapi"
	"github.com/salesmock/crmkit/pkg/render"
	"github.com/salesmock/crmkit/pkg/renderers/html"
	"github.com/salesmock/crmkit/pkg/renderers/tui"
	"github.com/salesmock/crmkit/pkg/store"
	"github.com/salesmock/crmkit/pkg/uiconfig"
	"github.com/salesmock/crmkit/pkg/validation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var overlayDir string

	root := &cobra.Command{
		Use:           "crmkit",
		Short:         "Mock CRM record browser and layout editor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&overlayDir, "overlays", "", "directory of layout overlay files (json/yaml)")

	root.AddCommand(
		newBrowseCmd(&overlayDir),
		newRenderCmd(&overlayDir),
		newExportCmd(&overlayDir),
		newEditCmd(&overlayDir),
		newImportSchemaCmd(),
	)
	return root
}

// newSession seeds the demo objects, applies overlays when configured, and
// returns the isolated per-run session.
func newSession(overlayDir string) (*store.Session, error) {
	session := store.NewSession(sample.Objects())
	if overlayDir == "" {
		return session, nil
	}

	overlays, err := uiconfig.LoadFS(os.DirFS(overlayDir))
	if err != nil {
		return nil, err
	}
	for _, name := range session.Names() {
		object, err := session.Object(name)
		if err != nil {
			return nil, err
		}
		if err := overlays.Apply(object); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func newBrowseCmd(overlayDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive record browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			session, err := newSession(*overlayDir)
			if err != nil {
				return err
			}
			program := tea.NewProgram(browser.New(cfg, session), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}

func newRenderCmd(overlayDir *string) *cobra.Command {
	var (
		object        string
		recordIndex   int
		output        string
		format        string
		includeHidden bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one record as a detail page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := newSession(*overlayDir)
			if err != nil {
				return err
			}
			obj, err := session.Object(object)
			if err != nil {
				return err
			}
			record, err := session.Snapshot(object, recordIndex)
			if err != nil {
				return err
			}

			registry := render.NewRegistry()
			registry.MustRegister(html.New())
			renderer, err := registry.Get(format)
			if err != nil {
				return err
			}
			page := render.Page{
				Object:      obj,
				Layout:      layout.New(obj),
				Record:      record,
				RecordIndex: recordIndex,
			}
			payload, err := renderer.Render(cmd.Context(), page, render.Options{IncludeHidden: includeHidden})
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, payload)
		},
	}
	cmd.Flags().StringVar(&object, "object", "Account", "object name")
	cmd.Flags().IntVar(&recordIndex, "record", 0, "record index")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&format, "format", "html", "output format")
	cmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "render hidden fields too")
	return cmd
}

func newExportCmd(overlayDir *string) *cobra.Command {
	var (
		object string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an object's section layout as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := newSession(*overlayDir)
			if err != nil {
				return err
			}
			obj, err := session.Object(object)
			if err != nil {
				return err
			}
			payload, err := layout.New(obj).Export()
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, payload)
		},
	}
	cmd.Flags().StringVar(&object, "object", "Account", "object name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func newEditCmd(overlayDir *string) *cobra.Command {
	var (
		object      string
		recordIndex int
		create      bool
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a record through terminal prompts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := newSession(*overlayDir)
			if err != nil {
				return err
			}
			obj, err := session.Object(object)
			if err != nil {
				return err
			}

			var base model.Record
			if !create {
				snapshot, err := session.Snapshot(object, recordIndex)
				if err != nil {
					return err
				}
				base = snapshot
			}

			lay := layout.New(obj)
			form := tui.New()
			record, err := form.Edit(cmd.Context(), lay, base)
			if err != nil {
				return err
			}
			if err := validation.ValidateRecord(lay, record).Err(); err != nil {
				return err
			}

			if create {
				if err := session.Append(object, record); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s record %d\n", object, len(obj.Records)-1)
				return nil
			}
			if err := session.Replace(object, recordIndex, record); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s record %d\n", object, recordIndex)
			return nil
		},
	}
	cmd.Flags().StringVar(&object, "object", "Account", "object name")
	cmd.Flags().IntVar(&recordIndex, "record", 0, "record index")
	cmd.Flags().BoolVar(&create, "new", false, "create a new record instead of editing")
	return cmd
}

func newImportSchemaCmd() *cobra.Command {
	var (
		schemaName string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "import-schema <openapi-file>",
		Short: "Derive an object layout from an OpenAPI component schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			object, err := openapi.ObjectFromDocument(cmd.Context(), data, schemaName)
			if err != nil {
				return err
			}
			payload, err := layout.New(object).Export()
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, payload)
		},
	}
	cmd.Flags().StringVar(&schemaName, "schema", "", "component schema name (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, payload []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(append(payload, '\n'))
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Written to %s\n", path)
	return nil
}
