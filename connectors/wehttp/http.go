package wehttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/weegigs/wee-starter/counter"
	"github.com/weegigs/wee-starter/we"
)

// CounterService is the part of the counter store the HTTP surface depends on.
type CounterService interface {
	Snapshot() counter.Snapshot
	Execute(command we.Command) (counter.Snapshot, error)
	Watch(watcher func(counter.Snapshot)) we.Unsubscribe
}

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

func AccessLog(log *logrus.Logger) HandlerOption {
	return func(service *httpService) {
		service.access = log
	}
}

func TracerProvider(provider trace.TracerProvider) HandlerOption {
	return func(service *httpService) {
		service.tracer = provider
	}
}

type httpService struct {
	log      *zerolog.Logger
	access   *logrus.Logger
	tracer   trace.TracerProvider
	counters CounterService
}

func NewHandler(counters CounterService, options ...HandlerOption) http.Handler {
	service := &httpService{counters: counters}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}
	if service.access == nil {
		service.access = logrus.StandardLogger()
	}

	r := chi.NewRouter()
	r.Use(withLogging(service.access))

	r.Route("/health", func(r chi.Router) {
		health := Health()
		r.Get("/", health)
		r.Head("/", health)
	})

	r.Route("/counter", func(r chi.Router) {
		r.Get("/", service.getCounter())
		r.Post("/increment", service.executeCommand(counter.Increment{}))
		r.Post("/reset", service.executeCommand(counter.Reset{}))
		r.Get("/events", service.streamCounter())
	})

	return WithTelemetry(r, "wee-starter-http", service.tracer)
}
