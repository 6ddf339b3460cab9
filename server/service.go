package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-starter/connectors/wehttp"
	"github.com/weegigs/wee-starter/counter"
	"github.com/weegigs/wee-starter/stores/mongodb"
	"github.com/weegigs/wee-starter/support"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	server   *http.Server
	log      *zerolog.Logger
	database *mongo.Client
	counters *counter.Store
}

// NewApplication takes the database client so that the bootstrap has to succeed
// before an application, and therefore a listener, can exist.
func NewApplication(config support.Config, handler http.Handler, database *mongo.Client, counters *counter.Store, logger *zerolog.Logger) *Application {
	return &Application{
		server: &http.Server{
			Addr:              config.Address(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log:      logger,
		database: database,
		counters: counters,
	}
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (a *Application) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return err
	}

	return a.serve(ctx, listener)
}

func (a *Application) serve(ctx context.Context, listener net.Listener) error {
	a.server.BaseContext = func(net.Listener) context.Context { return ctx }

	errs := make(chan error, 1)
	go func() {
		errs <- a.server.Serve(listener)
	}()

	a.log.Info().Str("address", listener.Addr().String()).Msg("backend listening")

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	a.log.Info().Int("count", a.counters.Value()).Msg("shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdown); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func mongoSettings(config support.Config) mongodb.Settings {
	return mongodb.Settings{URI: config.MongoURI, ConnectTimeout: config.MongoConnectTimeout}
}

func newCounterStore() *counter.Store {
	return counter.NewStore()
}

func newHandler(counters *counter.Store, logger *zerolog.Logger, access *logrus.Logger, provider *trace.TracerProvider) http.Handler {
	return wehttp.NewHandler(
		counters,
		wehttp.Logger(logger),
		wehttp.AccessLog(access),
		wehttp.TracerProvider(provider),
	)
}

var Live = wire.NewSet(
	support.TracerProvider,
	support.AccessLogger,
	mongoSettings,
	mongodb.Connect,
	newCounterStore,
	newHandler,
	NewApplication,
)
