package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxUploadMB caps request bodies accepted by the upload endpoint.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"512"`
}

// BodyLimit returns the maximum request body size in bytes.
func (c Config) BodyLimit() int {
	if c.MaxUploadMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.MaxUploadMB * 1024 * 1024
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}
