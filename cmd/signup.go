package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afyajamii/afya-cli/internal/domain"
)

func newSignupCmd(app *app) *cobra.Command {
	var username string
	var email string
	var fullName string
	var accountType string
	var password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new AfyaJamii account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedType, err := domain.ParseAccountType(accountType)
			if err != nil {
				return err
			}

			message, err := app.service.Signup(cmd.Context(), domain.SignupRequest{
				Username:    username,
				Email:       email,
				AccountType: parsedType,
				FullName:    fullName,
				Password:    password,
			})
			if err != nil {
				return err
			}

			if message == "" {
				message = "Account created. Run `afya login` to sign in."
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&accountType, "account-type", "", "Account type (pregnant|postnatal|general)")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("full-name")
	_ = cmd.MarkFlagRequired("account-type")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
