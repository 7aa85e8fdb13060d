package cmd

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cso-genova/casa-listing-explorer/internal/listing"
	"github.com/cso-genova/casa-listing-explorer/internal/log"
	"github.com/cso-genova/casa-listing-explorer/internal/server"
	"github.com/cso-genova/casa-listing-explorer/internal/util"
)

func Run(ctx context.Context, connection *sql.DB, config *util.Config) error {
	var addr string
	flag.StringVar(&addr, "addr", config.ListenAddr.Value, "listen address override")
	flag.Parse()
	config.ListenAddr.Value = addr

	logger := log.GetLogger()

	loader := listing.NewLoader(connection)
	srv := server.New(config, loader)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("Addr", srv.Addr).Info("dashboard listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
