package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoscope/internal/metrics"
	"github.com/katalvlaran/algoscope/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON HTTP API",
	Long: `Serves the catalog over HTTP: algorithm cards, demo inputs and step
generation under /v1, plus /healthz and Prometheus metrics on /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc := cfg.Server
		if cmd.Flags().Changed("host") {
			sc.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			sc.Port = servePort
		}

		handler := server.NewHandler(
			server.WithLogger(logger),
			server.WithMetrics(metrics.New()),
			server.WithRunTimeout(sc.WriteTimeout),
		)
		srv := &http.Server{
			Addr:         sc.Addr(),
			Handler:      handler,
			ReadTimeout:  sc.ReadTimeout,
			WriteTimeout: sc.WriteTimeout,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String(), "timeout", sc.ShutdownTimeout)

			ctx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if cerr := srv.Close(); cerr != nil {
					logger.Error("close server", "error", cerr)
				}
				return err
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
}
