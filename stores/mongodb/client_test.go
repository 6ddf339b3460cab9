package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func TestConnectionError(t *testing.T) {
	cause := errors.New("server selection timeout")
	err := Connection(cause)

	assert.Equal(t, "failed to connect to MongoDB: server selection timeout", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Same(t, cause, pkgerrors.Cause(err))
}

func TestConnect(t *testing.T) {
	t.Run("fails on an invalid connection string", func(t *testing.T) {
		client, cleanup, err := Connect(context.Background(), Settings{URI: "mysql://localhost"})

		var connection *ConnectionError
		require.ErrorAs(t, err, &connection)
		assert.Nil(t, client)
		assert.Nil(t, cleanup)
	})

	t.Run("fails within the timeout on an unreachable server", func(t *testing.T) {
		started := time.Now()
		_, _, err := Connect(context.Background(), Settings{
			URI:            "mongodb://127.0.0.1:1/?directConnection=true",
			ConnectTimeout: 300 * time.Millisecond,
		})

		var connection *ConnectionError
		require.ErrorAs(t, err, &connection)
		assert.NotNil(t, connection.Cause())
		assert.Less(t, time.Since(started), 5*time.Second)
	})

	t.Run("connects to a running server", func(t *testing.T) {
		if testing.Short() {
			t.Skip("requires docker")
		}

		ctx := context.Background()
		uri, teardown, err := NewTestURI(ctx)
		if err != nil {
			t.Logf("failed to start test database: %+v", err)
			t.FailNow()
		}
		defer teardown()

		client, cleanup, err := Connect(ctx, Settings{URI: uri, ConnectTimeout: 30 * time.Second})
		require.NoError(t, err)
		defer cleanup()

		assert.NoError(t, client.Ping(ctx, readpref.Primary()))
	})
}
