package objects

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"storage-template/core/storage"
	"storage-template/core/storage/mocks"
	"storage-template/core/template"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	mockClient := new(mocks.Client)
	tpl := template.New(storage.Config{Endpoint: "localhost:9000", ReuseClient: true},
		template.WithClientFactory(func(storage.Config) (storage.Client, error) { return mockClient, nil }))

	app := fiber.New()
	require.NoError(t, NewFeature(tpl, zap.NewNop()).Load(app))
	return app, mockClient
}

type listBody struct {
	Objects []template.Object `json:"objects"`
}

func TestHandleList(t *testing.T) {
	entries := []minio.ObjectInfo{
		{Key: "docs/a.txt", Size: 5},
		{Err: errors.New("entry failed")},
		{Key: "docs/b.txt", Size: 3},
	}

	t.Run("PrefixAndRecursive", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("ListObjects", mock.Anything, "demo", minio.ListObjectsOptions{Prefix: "docs/", Recursive: true}).
			Return(mocks.Objects(entries[0], entries[2]))

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/demo/objects?prefix=docs/&recursive=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body listBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Objects, 2)
		assert.Equal(t, "docs/a.txt", body.Objects[0].Name)
	})

	t.Run("EntryErrorFails", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("ListObjects", mock.Anything, "demo", mock.Anything).Return(mocks.Objects(entries...))

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/demo/objects", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})

	t.Run("LegacySkipErrorsStillFails", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("ListObjects", mock.Anything, "nope", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: http.StatusNotFound}}))

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/nope/objects?skip_errors=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("AccessDenied", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("ListObjects", mock.Anything, "demo", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}}))

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/demo/objects", nil))
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("ListObjects", mock.Anything, "nope", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: minio.ErrorResponse{Code: "NoSuchBucket"}}))

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/nope/objects", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandlePut(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("PutObject", mock.Anything, "demo", "docs/a.txt", mock.Anything, int64(5),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "text/plain" })).
		Return(minio.UploadInfo{Bucket: "demo", Key: "docs/a.txt", Size: 5, ETag: "etag"}, nil)

	req := httptest.NewRequest("PUT", "/buckets/demo/objects/docs/a.txt", strings.NewReader("hello"))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var obj template.Object
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&obj))
	assert.Equal(t, int64(5), obj.Length)
	assert.Equal(t, "text/plain", obj.ContentType)
	mockClient.AssertExpectations(t)
}

func TestHandleStat(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("StatObject", mock.Anything, "demo", "docs/a b.txt", mock.Anything).
		Return(minio.ObjectInfo{Key: "docs/a b.txt", Size: 5, ETag: "etag", ContentType: "text/plain"}, nil)
	mockClient.On("StatObject", mock.Anything, "demo", "gone.txt", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound})
	mockClient.On("GetObject", mock.Anything, "demo", "docs/a b.txt", mock.Anything).
		Return(io.NopCloser(strings.NewReader("hello")), nil)

	t.Run("Metadata", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/demo/objects/docs/a%20b.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var obj template.Object
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&obj))
		assert.Equal(t, "demo", obj.BucketName)
		assert.Equal(t, "text/plain", obj.ContentType)
	})

	t.Run("Download", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/demo/objects/docs/a%20b.txt?download=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/demo/objects/gone.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleRemove(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("RemoveObject", mock.Anything, "demo", "a.txt", mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/buckets/demo/objects/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandleURL(t *testing.T) {
	app, mockClient := setupTestApp(t)
	endpoint, _ := url.Parse("http://localhost:9000")
	signed, _ := url.Parse("http://localhost:9000/demo/a.txt?X-Amz-Expires=3600")
	mockClient.On("EndpointURL").Return(endpoint)
	mockClient.On("PresignedGetObject", mock.Anything, "demo", "a.txt", time.Hour, mock.Anything).Return(signed, nil)
	mockClient.On("PresignedGetObject", mock.Anything, "demo", "a.txt", template.DefaultExpiry, mock.Anything).Return(signed, nil)

	tests := []struct {
		name    string
		target  string
		url     string
		expires float64
	}{
		{"Direct", "/buckets/demo/url/a.txt", "http://localhost:9000/demo/a.txt", 0},
		{"Presigned", "/buckets/demo/url/a.txt?presign=true&expires=3600", signed.String(), 3600},
		{"PresignedDefault", "/buckets/demo/url/a.txt?presign=true", signed.String(), 604800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.url, body["url"])
			if tt.expires > 0 {
				assert.Equal(t, tt.expires, body["expires_in"])
			}
		})
	}
}
