package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storage-template/core/config"
	"storage-template/core/loader"
	"storage-template/core/logger"
	"storage-template/core/middleware/auth"
	"storage-template/core/middleware/rayid"
	"storage-template/core/template"
	_ "storage-template/docs/swagger"
	"storage-template/feature/buckets"
	"storage-template/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Storage Template API
// @version 1.0
// @description Bucket and object operations over an S3-compatible store.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the storage template server",
	Long:  `Starts the HTTP server and loads the storage features when an endpoint is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, tpl, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if tpl == nil {
			logg.Warn("Storage endpoint not configured, storage features disabled")
		} else {
			logg.Info("Storage configured", zap.String("endpoint", cfg.Storage.Endpoint))
		}

		app, err := newApp(cfg, logg, tpl)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(cfg.Server.Addr())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp wires middleware, documentation and the storage features into a fiber app.
func newApp(cfg *config.Config, logg *zap.Logger, tpl *template.Template) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	// 1. Initialize Feature Manager
	mgr := loader.NewManager(logg)
	mgr.Register(buckets.NewFeature(tpl, logg))
	mgr.Register(objects.NewFeature(tpl, logg))

	// 2. Middleware
	// RayID must be first to trace everything.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		// Log error if happened
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// 2.5 Health and Swagger Documentation (Public)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "storage": tpl != nil})
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	// 3. Auth (Protect API)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	// 4. Load Features
	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
