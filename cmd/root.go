package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "healify",
		Short:         "HealiFy: self-assess health risks from the terminal",
		Long:          "healify keeps your account session and profile locally, runs symptom questionnaires for supported conditions, and fetches risk scores from the HealiFy prediction service.",
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

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.sessions.Initialize(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newProfileCmd(app),
		newAssessCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
