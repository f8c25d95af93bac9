package storage

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/minio/minio-go/v7"
)

// Kind classifies a storage failure.
type Kind string

const (
	KindUnknown         Kind = "unknown"
	KindNotFound        Kind = "not_found"
	KindBucketNotEmpty  Kind = "bucket_not_empty"
	KindAccessDenied    Kind = "access_denied"
	KindInvalidArgument Kind = "invalid_argument"
	KindTransport       Kind = "transport"
	KindConfig          Kind = "config"
)

// Error is the single error type returned by storage operations.
// Cause holds the original error from the client library.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("storage %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("storage %s: %s: %v", e.Kind, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Wrap classifies err and attaches the operation that produced it.
// A nil err yields nil and an existing *Error is returned unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Kind: classify(err), Message: op, Cause: err}
}

// KindOf returns the kind of err, or KindUnknown when it is not a storage error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err means the bucket or object does not exist.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func classify(err error) Kind {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "" {
		errors.As(err, &resp)
	}
	switch resp.Code {
	case "NoSuchBucket", "NoSuchKey", "NotFound":
		return KindNotFound
	case "BucketNotEmpty":
		return KindBucketNotEmpty
	case "AccessDenied", "SignatureDoesNotMatch", "InvalidAccessKeyId", "ExpiredToken":
		return KindAccessDenied
	case "InvalidBucketName", "InvalidArgument", "InvalidObjectName", "XMinioInvalidObjectName", "InvalidRange":
		return KindInvalidArgument
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		return KindAccessDenied
	case http.StatusBadRequest:
		return KindInvalidArgument
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return KindTransport
	}
	return KindUnknown
}
