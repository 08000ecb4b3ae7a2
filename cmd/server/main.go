package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/mnovakovic/wp-appwrite-sync/internal/config"
	"github.com/mnovakovic/wp-appwrite-sync/internal/server"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store/factory"
	"github.com/mnovakovic/wp-appwrite-sync/internal/syncer"
	"github.com/mnovakovic/wp-appwrite-sync/internal/wordpress"
	pkgserver "github.com/mnovakovic/wp-appwrite-sync/pkg/server"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, pkgserver.NewOkHealthChecker())

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "wp-appwrite-sync is running")
	})
	s.Echo.POST("/v1/sync", handleSync)

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// handleSync runs one full sync pass. Configuration is evaluated per
// invocation, mirroring the function-runtime contract: missing required
// variables answer with the fixed failure body, not an HTTP error.
func handleSync(c echo.Context) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("sync rejected", "error", err)
		return c.JSON(http.StatusOK, syncer.NewFailure(config.MissingEnvMessage))
	}

	client := wordpress.NewClient(cfg.WordPressURL)
	docs := factory.NewDocumentStore(cfg)

	result := syncer.New(client, docs).Run(c.Request().Context())
	return c.JSON(http.StatusOK, result)
}
