// Package objects exposes the object operations of the storage template over HTTP.
//
// Object names may contain slashes; they are taken from the wildcard part of the path
// and may be percent-encoded.
//
// # HTTP Endpoints
//
//   - GET    /buckets/:bucket/objects    : list by ?prefix= and ?recursive=; a missing bucket
//     or a denied listing fails the whole request
//   - PUT    /buckets/:bucket/objects/*  : upload the request body with its Content-Type
//   - GET    /buckets/:bucket/objects/*  : object metadata, ?download=true streams the content
//   - DELETE /buckets/:bucket/objects/*  : remove the object
//   - GET    /buckets/:bucket/url/*      : direct URL, or presigned with ?presign=true&expires=<seconds>
package objects
