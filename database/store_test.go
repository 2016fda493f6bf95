package database

import (
	"context"
	"testing"

	"github.com/jobify-dev/jobs-api/config"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreMemory(t *testing.T) {
	store, err := OpenStore(context.Background(), &config.Config{StoreDriver: config.DriverMemory})
	require.NoError(t, err)
	defer store.Close(context.Background())

	assert.IsType(t, &repository.MemoryStore{}, store)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StoreDriver: "sqlite"})
	assert.ErrorContains(t, err, "unknown store driver")
}
