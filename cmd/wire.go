package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/afyajamii/afya-cli/internal/adapters/backend"
	assessmentadapter "github.com/afyajamii/afya-cli/internal/adapters/render/assessment"
	historyadapter "github.com/afyajamii/afya-cli/internal/adapters/render/history"
	sessiontoml "github.com/afyajamii/afya-cli/internal/adapters/session/toml"
	"github.com/afyajamii/afya-cli/internal/application"
	"github.com/afyajamii/afya-cli/internal/domain"
	"github.com/afyajamii/afya-cli/internal/logging"
	"github.com/afyajamii/afya-cli/internal/ports"
)

const defaultBaseURL = "https://nonturbinated-latina-incongruently.ngrok-free.dev"

type app struct {
	service            *application.Service
	assessmentRenderer func(domain.VitalsResult) (string, error)
	historyRenderer    func(application.History) (string, error)
	logger             *slog.Logger
	now                func() time.Time
}

func wireApp() (*app, error) {
	logger := logging.New(os.Getenv("ENV"))

	sessions, err := sessiontoml.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	client := backend.New(envOrDefault("AFYA_API_BASE_URL", defaultBaseURL), http.DefaultClient, logger)

	return &app{
		service:            application.NewService(client, sessions, ports.SystemClock{}),
		assessmentRenderer: assessmentadapter.Render,
		historyRenderer:    historyadapter.Render,
		logger:             logger,
		now:                time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
