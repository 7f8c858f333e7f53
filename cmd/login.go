package cmd

import (
	"fmt"

	"github.com/kriju0726/HealiFy/internal/application"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a HealiFy account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.remote.Register(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("register account: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s. Run 'healify login' to sign in.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&password, "password", "", "Account password (8 characters minimum)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.remote.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("sign in: %w", err)
			}

			if err := app.sessions.Login(cmd.Context(), result.Account, result.Credential); err != nil {
				return fmt.Errorf("store session: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", result.Account.Email)

			if !result.Account.Profile.Complete() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Your profile is incomplete. Run 'healify profile set' before assessing.")
			}

			if returnTo := app.guard.ReturnTo(cmd.Context()); returnTo != application.DestinationLanding {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Continue where you left off: healify %s\n", returnTo)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("sign out: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}
