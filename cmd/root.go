package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "afya",
		Short:         "AfyaJamii client (afya): vitals, AI health advice and history",
		Long:          "afya is the terminal client for the AfyaJamii maternal-health service. It logs you in, submits vitals for AI risk assessment, asks the health assistant questions, and shows your submission and conversation history.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newVitalsCmd(app),
		newChatCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
