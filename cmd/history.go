package cmd

import (
	"fmt"

	resultadapter "github.com/kriju0726/HealiFy/internal/adapters/render/result"
	"github.com/kriju0726/HealiFy/internal/application"
	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/spf13/cobra"
)

const destinationHistory application.Destination = "history"

func newHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List your previous assessment results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAccess(cmd, app, destinationHistory); err != nil {
				return err
			}

			entries, err := app.remote.GetHistory(cmd.Context(), app.sessions.Credential())
			if err != nil {
				return app.remoteFailure(cmd.Context(), "fetch history", err)
			}

			account := domain.Account{}
			if session := app.sessions.Snapshot(); session.Account != nil {
				account = *session.Account
			}

			rendered, err := app.historyRenderer(
				application.HistoryReport{Account: account, Entries: entries},
				renderOptions(app),
			)
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func renderOptions(app *app) resultadapter.RenderOptions {
	return resultadapter.RenderOptions{Now: app.now()}
}
