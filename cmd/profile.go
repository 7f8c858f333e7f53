package cmd

import (
	"fmt"

	"github.com/kriju0726/HealiFy/internal/application"
	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/spf13/cobra"
)

const destinationProfile application.Destination = "profile"

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update your health profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile stored on your account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAccess(cmd, app, destinationProfile); err != nil {
				return err
			}

			profile, err := app.remote.GetProfile(cmd.Context(), app.sessions.Credential())
			if err != nil {
				return app.remoteFailure(cmd.Context(), "fetch profile", err)
			}

			if err := app.sessions.ReplaceProfile(cmd.Context(), profile); err != nil {
				return fmt.Errorf("store fetched profile: %w", err)
			}

			printProfile(cmd, profile)
			return nil
		},
	}
}

func newProfileSetCmd(app *app) *cobra.Command {
	var (
		age, weight, height int
		smoking, drinking   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields, leaving the rest untouched",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAccess(cmd, app, destinationProfile); err != nil {
				return err
			}

			patch := domain.ProfilePatch{}
			if cmd.Flags().Changed("age") {
				patch.Age = &age
			}
			if cmd.Flags().Changed("weight") {
				patch.Weight = &weight
			}
			if cmd.Flags().Changed("height") {
				patch.Height = &height
			}
			if cmd.Flags().Changed("smoking") {
				patch.Smoking = &smoking
			}
			if cmd.Flags().Changed("drinking") {
				patch.Drinking = &drinking
			}

			if patch == (domain.ProfilePatch{}) {
				return fmt.Errorf("no profile fields given, set at least one of --age --weight --height --smoking --drinking")
			}

			current := domain.Profile{}
			if session := app.sessions.Snapshot(); session.Account != nil {
				current = session.Account.Profile
			}

			saved, err := app.remote.UpdateProfile(cmd.Context(), app.sessions.Credential(), patch.Apply(current))
			if err != nil {
				return app.remoteFailure(cmd.Context(), "save profile", err)
			}

			if err := app.sessions.ReplaceProfile(cmd.Context(), saved); err != nil {
				return fmt.Errorf("store saved profile: %w", err)
			}

			printProfile(cmd, saved)
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().IntVar(&weight, "weight", 0, "Weight in kilograms")
	cmd.Flags().IntVar(&height, "height", 0, "Height in centimeters")
	cmd.Flags().BoolVar(&smoking, "smoking", false, "Whether you smoke")
	cmd.Flags().BoolVar(&drinking, "drinking", false, "Whether you drink alcohol")

	return cmd
}

func printProfile(cmd *cobra.Command, profile domain.Profile) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Age:      %d\n", profile.Age)
	_, _ = fmt.Fprintf(out, "Weight:   %d kg\n", profile.Weight)
	_, _ = fmt.Fprintf(out, "Height:   %d cm\n", profile.Height)
	_, _ = fmt.Fprintf(out, "Smoking:  %s\n", yesNo(profile.Smoking))
	_, _ = fmt.Fprintf(out, "Drinking: %s\n", yesNo(profile.Drinking))

	if !profile.Complete() {
		_, _ = fmt.Fprintln(out, "Profile is incomplete: assessments stay locked until age, weight and height are set.")
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
