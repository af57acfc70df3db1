package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/fieldkit/internal/tui/demo"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/theme"
)

const staticWidth = 80

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show the component demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInputsDemo(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "inputs",
		Short: "Interactive input system demo (static render when not on a terminal)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInputsDemo(cmd, flags)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "buttons",
		Short: "Render the button showcase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), demo.RenderButtons(theme.Default(), staticWidth))
			return nil
		},
	})

	return cmd
}

func demoSettings(app *appContext) demo.Settings {
	d := app.Config.Demo
	return demo.Settings{
		EmailDomains:         d.EmailDomains,
		TitleMaxLength:       d.TitleMaxLength,
		ContentMaxLength:     d.ContentMaxLength,
		DescriptionMaxLength: d.DescriptionMaxLength,
		ContentRows:          d.ContentRows,
		SettleDelay:          app.Config.SettleDelay(),
	}
}

func runInputsDemo(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}

	model := demo.NewModel(demoSettings(app), app.Validator, app.Logger)
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		model.Init()
		fmt.Fprintln(out, model.View())
		return nil
	}

	app.Logger.Debug("starting input demo")
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(out), tea.WithInput(cmd.InOrStdin()))
	if _, err := program.Run(); err != nil {
		return newCommandError("run the input demo", "terminal program", err, "Run fieldkit from an interactive terminal.")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
