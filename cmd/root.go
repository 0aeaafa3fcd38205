package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fintrack",
		Short:         "Personal Finance Tracker CLI: track income, expenses and savings goals",
		Long:          "fintrack is a client for the Personal Finance Tracker API. It manages your login session and lets you record income and expenses, follow savings goals, and (for administrators) manage user accounts from the terminal.",
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
		newStatusCmd(app),
		newProfileCmd(app),
		newIncomeCmd(app),
		newExpenseCmd(app),
		newSavingCmd(app),
		newAdminCmd(app),
	)

	return rootCmd
}
