package template

import (
	"context"
	"io"
	"iter"
	"sync"
	"time"

	"storage-template/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/s3utils"
	"go.uber.org/zap"
)

// DefaultExpiry is used for presigned URLs when no expiry is given.
const DefaultExpiry = 7 * 24 * time.Hour

// ClientFactory builds a storage client from connection settings.
type ClientFactory func(cfg storage.Config) (storage.Client, error)

// Template forwards typed calls to a storage client built from fixed settings.
// It is safe for concurrent use.
type Template struct {
	cfg           storage.Config
	factory       ClientFactory
	logger        *zap.Logger
	defaultExpiry time.Duration

	mu     sync.Mutex
	shared storage.Client
}

// Option configures a Template.
type Option func(*Template)

// WithLogger sets the logger used for operation traces.
func WithLogger(l *zap.Logger) Option {
	return func(t *Template) { t.logger = l }
}

// WithClientFactory replaces storage.NewClient as the way handles are built.
func WithClientFactory(f ClientFactory) Option {
	return func(t *Template) { t.factory = f }
}

// WithDefaultExpiry overrides DefaultExpiry for presigned URLs.
func WithDefaultExpiry(d time.Duration) Option {
	return func(t *Template) { t.defaultExpiry = d }
}

// New creates a template over the given settings. No connection is made.
func New(cfg storage.Config, opts ...Option) *Template {
	t := &Template{
		cfg:           cfg,
		factory:       storage.NewClient,
		logger:        zap.NewNop(),
		defaultExpiry: DefaultExpiry,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Config returns a copy of the connection settings.
func (t *Template) Config() storage.Config {
	return t.cfg
}

// Client returns the handle used for the next operation. With ReuseClient
// disabled a fresh handle is built on every call.
func (t *Template) Client() (storage.Client, error) {
	if !t.cfg.ReuseClient {
		c, err := t.factory(t.cfg)
		return c, storage.Wrap("create client", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.shared == nil {
		c, err := t.factory(t.cfg)
		if err != nil {
			return nil, storage.Wrap("create client", err)
		}
		t.shared = c
	}
	return t.shared, nil
}

// CreateBucket creates bucketName unless it already exists.
func (t *Template) CreateBucket(ctx context.Context, bucketName string) error {
	client, err := t.Client()
	if err != nil {
		return err
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return storage.Wrap("check bucket", err)
	}
	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: t.cfg.Region}); err != nil {
		return storage.Wrap("make bucket", err)
	}
	t.logger.Debug("Created bucket", zap.String("bucket", bucketName))
	return nil
}

// ListBuckets returns all buckets in the order the service reports them.
func (t *Template) ListBuckets(ctx context.Context) ([]Bucket, error) {
	client, err := t.Client()
	if err != nil {
		return nil, err
	}

	infos, err := client.ListBuckets(ctx)
	if err != nil {
		return nil, storage.Wrap("list buckets", err)
	}

	buckets := make([]Bucket, 0, len(infos))
	for _, info := range infos {
		buckets = append(buckets, bucketFromInfo(info))
	}
	return buckets, nil
}

// GetBucket returns the first bucket named bucketName.
func (t *Template) GetBucket(ctx context.Context, bucketName string) (Bucket, error) {
	buckets, err := t.ListBuckets(ctx)
	if err != nil {
		return Bucket{}, err
	}
	for _, b := range buckets {
		if b.Name == bucketName {
			return b, nil
		}
	}
	return Bucket{}, &storage.Error{Kind: storage.KindNotFound, Message: "bucket " + bucketName + " does not exist"}
}

// RemoveBucket deletes an empty bucket. Objects are never removed implicitly.
func (t *Template) RemoveBucket(ctx context.Context, bucketName string) error {
	client, err := t.Client()
	if err != nil {
		return err
	}
	if err := client.RemoveBucket(ctx, bucketName); err != nil {
		return storage.Wrap("remove bucket", err)
	}
	t.logger.Debug("Removed bucket", zap.String("bucket", bucketName))
	return nil
}

// ListObjects lazily lists the objects under prefix. The client reports
// failures (missing bucket, denied access, broken transport) as a single
// errored entry and then closes the listing, so the first error is yielded
// and ends the sequence. Ranging over the sequence again issues a new listing.
func (t *Template) ListObjects(ctx context.Context, bucketName, prefix string, recursive bool) iter.Seq2[Object, error] {
	return func(yield func(Object, error) bool) {
		client, err := t.Client()
		if err != nil {
			yield(Object{}, err)
			return
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		opts := minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: recursive,
		}
		for info := range client.ListObjects(ctx, bucketName, opts) {
			if info.Err != nil {
				yield(Object{}, storage.Wrap("list objects", info.Err))
				return
			}
			if !yield(ObjectFromInfo(bucketName, info), nil) {
				return
			}
		}
	}
}

// Collect drains a listing. On error the objects read so far are returned
// together with it.
func Collect(seq iter.Seq2[Object, error]) ([]Object, error) {
	var objects []Object
	for obj, err := range seq {
		if err != nil {
			return objects, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// PresignedGetURL returns a URL that allows downloading the object without
// credentials until expiry elapses. A non-positive expiry means DefaultExpiry.
func (t *Template) PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	client, err := t.Client()
	if err != nil {
		return "", err
	}

	u, err := client.PresignedGetObject(ctx, bucketName, objectName, t.Expiry(expiry), nil)
	if err != nil {
		return "", storage.Wrap("presign object", err)
	}
	return u.String(), nil
}

// Expiry resolves the lifetime of a presigned URL: d when positive, the
// template default otherwise.
func (t *Template) Expiry(d time.Duration) time.Duration {
	if d <= 0 {
		return t.defaultExpiry
	}
	return d
}

// ObjectURL returns the unsigned URL of the object. It only resolves if the
// bucket policy allows anonymous reads.
func (t *Template) ObjectURL(_ context.Context, bucketName, objectName string) (string, error) {
	client, err := t.Client()
	if err != nil {
		return "", err
	}

	base := client.EndpointURL()
	if base == nil {
		return "", &storage.Error{Kind: storage.KindConfig, Message: "client has no endpoint"}
	}

	// Keys are literal: "//" and ".." segments must survive.
	u := *base
	u.Path = "/" + bucketName + "/" + objectName
	u.RawPath = s3utils.EncodePath(u.Path)
	return u.String(), nil
}

// PutObject uploads size bytes from r. Uploads above the part size are sent
// as multipart by the client, which also aborts failed sessions.
func (t *Template) PutObject(ctx context.Context, bucketName, objectName string, r io.Reader, size int64, contentType string) (Object, error) {
	client, err := t.Client()
	if err != nil {
		return Object{}, err
	}

	info, err := client.PutObject(ctx, bucketName, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
		PartSize:    t.cfg.PartSize,
	})
	if err != nil {
		return Object{}, storage.Wrap("put object", err)
	}

	t.logger.Debug("Uploaded object",
		zap.String("bucket", bucketName),
		zap.String("object", objectName),
		zap.Int64("size", info.Size))

	return Object{
		BucketName:  bucketName,
		Name:        objectName,
		CreatedTime: info.LastModified,
		Length:      info.Size,
		ETag:        info.ETag,
		ContentType: contentType,
	}, nil
}

// StatObject returns the metadata of an object.
func (t *Template) StatObject(ctx context.Context, bucketName, objectName string) (Object, error) {
	client, err := t.Client()
	if err != nil {
		return Object{}, err
	}

	info, err := client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return Object{}, storage.Wrap("stat object", err)
	}
	return ObjectFromInfo(bucketName, info), nil
}

// GetObject opens the object for reading. The caller closes the stream.
func (t *Template) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	client, err := t.Client()
	if err != nil {
		return nil, err
	}

	rc, err := client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, storage.Wrap("get object", err)
	}
	return rc, nil
}

// RemoveObject deletes a single object without checking that it exists.
func (t *Template) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	client, err := t.Client()
	if err != nil {
		return err
	}
	if err := client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return storage.Wrap("remove object", err)
	}
	return nil
}
