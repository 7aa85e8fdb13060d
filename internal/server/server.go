package server

import (
	"context"
	"net/http"

	"github.com/cso-genova/casa-listing-explorer/internal/listing"
	"github.com/cso-genova/casa-listing-explorer/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ListingLoader is what the handlers need from the loader.
type ListingLoader interface {
	Load(ctx context.Context, database string, token string) (listing.Table, error)
}

// New builds the dashboard HTTP server.
func New(config *util.Config, loader ListingLoader) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestLogger, middleware.Recoverer)

	h := &handler{
		config: config,
		loader: loader,
	}

	r.Get("/", h.dashboard)
	r.Get("/listings.csv", h.exportCSV)

	return &http.Server{
		Addr:    config.ListenAddr.Value,
		Handler: r,
	}
}
