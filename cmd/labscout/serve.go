package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/pkg/adapters/httpapi"
	"github.com/aretw0/labscout/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the intake API as a JSON-over-HTTP server, with prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := prometheus.NewRegistry()
		metrics := observability.New(registry)

		consultant, cfg, logger, err := setup(cmd, labscout.WithMetrics(metrics))
		if err != nil {
			return err
		}

		listen, _ := cmd.Flags().GetString("listen")
		if listen == "" {
			listen = cfg.Listen
		}

		// Fail fast on a broken API document rather than serving it.
		if _, err := httpapi.Swagger(); err != nil {
			return err
		}

		handler := httpapi.NewHandler(consultant, newSessionManager(cfg, logger),
			httpapi.WithLogger(logger),
			httpapi.WithMetricsRegistry(registry))

		srv := &http.Server{
			Addr:    listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting labscout server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
			fmt.Println("Labscout server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "Listen address (overrides the config file)")
}
