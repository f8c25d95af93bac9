package template

import (
	"time"

	"github.com/minio/minio-go/v7"
)

// matDescHeader carries the client-side encryption material description.
const matDescHeader = "X-Amz-Meta-X-Amz-Matdesc"

// Object is a point-in-time snapshot of an object's metadata.
type Object struct {
	BucketName  string    `json:"bucket_name"`
	Name        string    `json:"name"`
	CreatedTime time.Time `json:"created_time"`
	Length      int64     `json:"length"`
	ETag        string    `json:"etag"`
	ContentType string    `json:"content_type"`
	MatDesc     string    `json:"mat_desc,omitempty"`
}

// ObjectFromInfo copies the fields of a client response into an Object.
func ObjectFromInfo(bucketName string, info minio.ObjectInfo) Object {
	obj := Object{
		BucketName:  bucketName,
		Name:        info.Key,
		CreatedTime: info.LastModified,
		Length:      info.Size,
		ETag:        info.ETag,
		ContentType: info.ContentType,
	}
	if info.Metadata != nil {
		obj.MatDesc = info.Metadata.Get(matDescHeader)
	}
	return obj
}

// Bucket describes a bucket as returned by the service.
type Bucket struct {
	Name        string    `json:"name"`
	CreatedTime time.Time `json:"created_time"`
}

func bucketFromInfo(info minio.BucketInfo) Bucket {
	return Bucket{Name: info.Name, CreatedTime: info.CreationDate}
}
