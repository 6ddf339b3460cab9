package mongodb

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

const (
	tracerName        = "mongodb"
	disconnectTimeout = 5 * time.Second
)

type Settings struct {
	URI string
	// ConnectTimeout bounds the connect and the initial ping. Zero waits for ctx alone.
	ConnectTimeout time.Duration
}

// Connect opens a client and pings the primary once. It does not retry; any failure
// is returned as a *ConnectionError. The cleanup disconnects the client.
func Connect(ctx context.Context, settings Settings) (*mongo.Client, func(), error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "mongodb connect")
	defer span.End()

	if settings.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.ConnectTimeout)
		defer cancel()
	}

	log.Debug().Dur("timeout", settings.ConnectTimeout).Msg("connecting to MongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(settings.URI))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "connect failed")
		return nil, nil, Connection(err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ping failed")
		disconnect(client)
		return nil, nil, Connection(err)
	}

	log.Info().Msg("MongoDB connected successfully")

	return client, func() { disconnect(client) }, nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to disconnect from MongoDB")
	}
}
