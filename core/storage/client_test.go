package storage_test

import (
	"testing"

	"storage-template/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("BareEndpoint", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "http", client.EndpointURL().Scheme)
		assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000/",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "http", client.EndpointURL().Scheme)
		assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https", client.EndpointURL().Scheme)
	})

	t.Run("UseSSLOnBareEndpoint", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{Endpoint: "play.min.io", UseSSL: true})
		require.NoError(t, err)
		assert.Equal(t, "https", client.EndpointURL().Scheme)
	})

	t.Run("MissingEndpoint", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{AccessKey: "testkey"})
		assert.Nil(t, client)
		assert.Equal(t, storage.KindConfig, storage.KindOf(err))
	})

	t.Run("MalformedEndpoint", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{Endpoint: "http://localhost:9000/some/path"})
		assert.Nil(t, client)
		assert.Equal(t, storage.KindConfig, storage.KindOf(err))
	})
}
