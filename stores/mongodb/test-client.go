package mongodb

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewTestURI starts a throwaway mongo container and returns its connection string.
func NewTestURI(ctx context.Context) (string, func(), error) {
	db, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mongo:6",
				ExposedPorts: []string{"27017/tcp"},
				WaitingFor:   wait.ForListeningPort("27017"),
			},
			Started: true,
		},
	)
	if err != nil {
		return "", nil, err
	}

	teardown := func() {
		if err := db.Terminate(ctx); err != nil {
			panic(err)
		}
	}

	host, err := db.Host(ctx)
	if err != nil {
		teardown()
		return "", nil, err
	}

	port, err := db.MappedPort(ctx, "27017")
	if err != nil {
		teardown()
		return "", nil, err
	}

	return fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, port.Port()), teardown, nil
}
