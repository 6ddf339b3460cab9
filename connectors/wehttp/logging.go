package wehttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func withLogging(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		logFn := func(rw http.ResponseWriter, r *http.Request) {
			start := time.Now()

			uri := r.RequestURI
			method := r.Method
			ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
			h.ServeHTTP(ww, r)

			duration := time.Since(start)

			log.WithFields(logrus.Fields{
				"uri":      uri,
				"method":   method,
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": duration,
			}).Info("request")
		}

		return http.HandlerFunc(logFn)
	}
}
