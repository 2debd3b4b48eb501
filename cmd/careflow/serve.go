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

	"github.com/resultflow/careflow/internal/cli"
	"github.com/resultflow/careflow/internal/logging"
	"github.com/resultflow/careflow/pkg/adapters/httpapi"
	"github.com/resultflow/careflow/pkg/adapters/memory"
	redisstore "github.com/resultflow/careflow/pkg/adapters/redis"
	"github.com/resultflow/careflow/pkg/observability"
	"github.com/resultflow/careflow/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP session server",
	Long:  `Exposes widget sessions as a JSON API: create a session, post intents, read state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		storeKind, _ := cmd.Flags().GetString("store")
		redisAddr, _ := cmd.Flags().GetString("redis-addr")
		redisTTL, _ := cmd.Flags().GetDuration("redis-ttl")
		catalogPath, _ := cmd.Flags().GetString("catalog")
		levelFlag, _ := cmd.Flags().GetString("log-level")

		logger := logging.New(cli.ParseLogLevel(levelFlag))

		cat, err := cli.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}

		var store ports.SessionStore
		switch storeKind {
		case "memory":
			store = memory.NewStore()
		case "redis":
			store = redisstore.New(redisAddr, "", 0, redisstore.WithTTL(redisTTL))
		default:
			return fmt.Errorf("unknown store %q (expected memory or redis)", storeKind)
		}

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		server := httpapi.NewServer(cat, store,
			httpapi.WithLogger(logger),
			httpapi.WithMetrics(metrics),
		)

		srv := &http.Server{
			Addr:    addr,
			Handler: server.Handler(),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting careflow server", "addr", srv.Addr, "store", storeKind)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("store", "memory", "Session store backend: memory or redis")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address (store=redis)")
	serveCmd.Flags().Duration("redis-ttl", 30*time.Minute, "Session TTL in redis (store=redis)")
	rootCmd.AddCommand(serveCmd)
}
