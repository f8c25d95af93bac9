// Package buckets exposes the bucket operations of the storage template over HTTP.
//
// # HTTP Endpoints
//
//   - GET    /buckets          : list buckets in service order
//   - GET    /buckets/:bucket  : get one bucket by name (404 if absent)
//   - PUT    /buckets/:bucket  : create a bucket, no-op when it exists
//   - DELETE /buckets/:bucket  : remove an empty bucket (409 when not empty)
package buckets
