package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afyajamii/afya-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var username string
	var password string
	var accountType string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedType, err := parseOptionalAccountType(accountType)
			if err != nil {
				return err
			}

			session, err := app.service.Login(cmd.Context(), username, password, parsedType)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&accountType, "account-type", "", "Account type (pregnant|postnatal|general)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func parseOptionalAccountType(raw string) (domain.AccountType, error) {
	if raw == "" {
		return "", nil
	}

	return domain.ParseAccountType(raw)
}
