package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kriju0726/HealiFy/internal/adapters/api"
	filecreds "github.com/kriju0726/HealiFy/internal/adapters/credentials/file"
	resultadapter "github.com/kriju0726/HealiFy/internal/adapters/render/result"
	tomlrepo "github.com/kriju0726/HealiFy/internal/adapters/repo/toml"
	"github.com/kriju0726/HealiFy/internal/application"
	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/kriju0726/HealiFy/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	sessions        *application.SessionStore
	guard           *application.RouteGuard
	workflow        *application.Workflow
	remote          ports.RemoteService
	resultRenderer  func(application.ResultReport, resultadapter.RenderOptions) (string, error)
	historyRenderer func(application.HistoryReport, resultadapter.RenderOptions) (string, error)
	now             func() time.Time
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewSessionRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	creds := filecreds.NewStore(filepath.Join(homeDir, ".healify", "credentials"))

	remote := &api.Client{
		BaseURL:        envOrDefault("HEALIFY_API_URL", "http://localhost:8080"),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: 30 * time.Second,
	}

	clock := ports.SystemClock{}
	sessions := application.NewSessionStore(repo, creds, clock)

	return &app{
		sessions:        sessions,
		guard:           application.NewRouteGuard(sessions),
		workflow:        application.NewWorkflow(sessions, remote, clock),
		remote:          remote,
		resultRenderer:  resultadapter.Render,
		historyRenderer: resultadapter.RenderHistory,
		now:             time.Now,
	}, nil
}

// remoteFailure wraps a facade error. A rejected credential also signs
// the whole session out, so the guard stops rendering protected
// commands until the next login.
func (a *app) remoteFailure(ctx context.Context, action string, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		_ = a.sessions.Logout(ctx)
	}

	return fmt.Errorf("%s: %w", action, err)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
