//go:build integration

package containers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	platformmongo "realestate/internal/platform/mongodb"
)

// MongoContainer wraps a testcontainers MongoDB instance.
type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
	Client    *platformmongo.Client
}

var (
	mongoOnce   sync.Once
	mongoShared *MongoContainer
	mongoErr    error
)

// GetMongo returns a MongoDB container shared by every suite in the test binary.
// Ryuk removes it when the process exits.
func GetMongo(t *testing.T) *MongoContainer {
	t.Helper()
	mongoOnce.Do(func() {
		mongoShared, mongoErr = startMongo()
	})
	if mongoErr != nil {
		t.Fatalf("failed to start mongo container: %v", mongoErr)
	}
	return mongoShared
}

func startMongo() (*MongoContainer, error) {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7",
		testcontainers.WithLabels(map[string]string{"project": "realestate"}),
	)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, err
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, err
	}

	client, err := platformmongo.Connect(ctx, platformmongo.Config{
		URI:      uri,
		Database: "realestate_test",
		Timeout:  10 * time.Second,
	})
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, err
	}

	return &MongoContainer{Container: container, URI: uri, Client: client}, nil
}

// Reset drops the test database. Use between tests to ensure isolation.
func (m *MongoContainer) Reset(ctx context.Context) error {
	return m.Client.DropDatabase(ctx)
}
