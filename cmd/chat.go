package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/afyajamii/afya-cli/internal/adapters/render/markup"
	"github.com/afyajamii/afya-cli/internal/domain"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask the AfyaJamii health assistant",
	}

	cmd.AddCommand(newChatAskCmd(app))

	return cmd
}

func newChatAskCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a health or nutrition question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			var advice domain.Advice
			fetch := func(ctx context.Context) error {
				var fetchErr error
				advice, fetchErr = app.service.Ask(ctx, question)
				return fetchErr
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(advice)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Asking AfyaJamii AI...", fetch); err != nil {
				return err
			}

			rendered := markup.Render(advice.Text, lipgloss.NewStyle().Bold(true))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
