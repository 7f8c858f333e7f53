package cmd

import (
	"errors"
	"fmt"

	"github.com/kriju0726/HealiFy/internal/application"
	"github.com/spf13/cobra"
)

// requireAccess runs the route guard before a protected command. On
// redirect the requested destination is already remembered, so a
// following login returns the visitor there.
func requireAccess(cmd *cobra.Command, app *app, dest application.Destination) error {
	decision := app.guard.Evaluate(cmd.Context(), dest)

	switch decision.Kind {
	case application.DecisionRender:
		return nil
	case application.DecisionPending:
		return errors.New("session recovery still in progress, retry in a moment")
	default:
		return fmt.Errorf("sign in required for %q: run 'healify login' first", dest)
	}
}
