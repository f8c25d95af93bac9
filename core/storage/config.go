package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service. The storage component stays
	// inactive while it is empty.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL forces SSL/TLS for endpoints given without a scheme.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region is the location of the buckets (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PartSize is the multipart part size in bytes. Zero lets the client pick.
	PartSize uint64 `mapstructure:"part_size" default:"0"`
	// ReuseClient shares one client handle across calls instead of building one per call.
	ReuseClient bool `mapstructure:"reuse_client" default:"true"`
}

// IsConfigured reports whether an endpoint has been set.
func (c Config) IsConfigured() bool {
	return c.Endpoint != ""
}
