package server

import (
	"net/http"
	"time"

	"github.com/cso-genova/casa-listing-explorer/internal/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.GetLogger().WithFields(logrus.Fields{
			"Method":   r.Method,
			"Path":     r.URL.Path,
			"Status":   ww.Status(),
			"Duration": time.Since(start).String(),
		}).Debug("handled request")
	})
}
