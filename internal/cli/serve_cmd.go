package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	httpadapter "svw.info/brainbreak/internal/adapters/http"
	"svw.info/brainbreak/internal/generator"
	"svw.info/brainbreak/internal/hint"
	"svw.info/brainbreak/internal/infrastructure/storage"
	"svw.info/brainbreak/internal/observability"
	"svw.info/brainbreak/internal/platform/logger"
	"svw.info/brainbreak/internal/solver"
	"svw.info/brainbreak/internal/usecase"
	"svw.info/brainbreak/internal/validator"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		dataDir string
		logMode string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the puzzle HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logMode)
			if err != nil {
				return err
			}
			defer log.Sync()

			st, err := storage.NewBadger(dataDir)
			if err != nil {
				return err
			}
			defer st.Close()

			registry := prometheus.NewRegistry()
			registry.MustRegister(collectors.NewGoCollector())
			metrics := observability.NewMetrics(registry)

			s := solver.NewBacktrackingSolver()
			uc := usecase.NewService(
				s,
				generator.NewDiagonalGenerator(s),
				validator.New(),
				hint.NewSingles(),
				st,
				metrics,
			)

			router := httpadapter.NewRouter(httpadapter.RouterConfig{
				Handler:  httpadapter.New(uc),
				Log:      log,
				Registry: registry,
			})

			srv := &http.Server{
				Addr:              addr,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("listening", "addr", addr, "data", dataDir)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
				log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data-dir", "./data", "puzzle archive directory")
	cmd.Flags().StringVar(&logMode, "log-mode", "dev", "dev|prod")

	return cmd
}
