package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afyajamii/afya-cli/internal/domain"
)

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.service.Whoami(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrNotLoggedIn) {
					return fmt.Errorf("%w (run `afya login` first)", err)
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Username    string `json:"username"`
					AccountType string `json:"account_type,omitempty"`
				}{
					Username:    session.Username,
					AccountType: string(session.AccountType),
				})
			}

			if session.AccountType != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", session.Username, session.AccountType)
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.Username)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
