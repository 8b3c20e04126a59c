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

	"github.com/MasWag/hyppau-fixtures/internal/adapters/httpapi"
	"github.com/MasWag/hyppau-fixtures/internal/adapters/redis"
	"github.com/MasWag/hyppau-fixtures/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fixture generation HTTP server",
	Long: `Starts an HTTP server exposing the generators as a JSON API, with
Prometheus metrics on /metrics. With --redis, generated documents are
cached so identical requests return byte-identical responses without
regenerating.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisDB, _ := cmd.Flags().GetInt("redis-db")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
		levelName, _ := cmd.Flags().GetString("log-level")

		level, err := logging.ParseLevel(levelName)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		log := logging.New(level)

		var cache *redis.Cache
		if redisAddr != "" {
			cache = redis.New(redisAddr, redisDB, redis.WithTTL(cacheTTL))
			defer cache.Close()
			log.Info("document cache enabled", "addr", redisAddr, "db", redisDB, "ttl", cacheTTL)
		}

		handler := httpapi.NewHandler(log, cache, prometheus.NewRegistry())
		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			log.Info("starting fixture server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			log.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Warn("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					log.Error("error killing server", "error", err)
				}
			}
			log.Info("fixture server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the document cache (disabled if empty)")
	serveCmd.Flags().Int("redis-db", 0, "Redis database for the document cache")
	serveCmd.Flags().Duration("cache-ttl", 0, "Expiration for cached documents (0 keeps them forever)")
	serveCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
