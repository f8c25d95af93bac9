// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the template and the
// HTTP features can be tested against core/storage/mocks. Both AWS S3 and self-hosted
// MinIO endpoints are supported.
//
// # Errors
//
// Every failure coming out of the client library is classified into a single *Error
// carrying a Kind (not found, bucket not empty, access denied, invalid argument,
// transport, config). The original error stays reachable through errors.Unwrap.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	exists, err := client.BucketExists(ctx, "assets")
//	if storage.IsNotFound(err) { ... }
package storage
