// Package config provides configuration management for the storage template service.
//
// It loads a .env file through godotenv and then resolves every setting with Viper from
// environment variables. Defaults come from the `default` struct tags of the partial
// configurations.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and upload limit
//   - Storage: endpoint, access key, secret key and transport options
//   - Log: logging level and format
//
// Storage has no default endpoint: leaving STORAGE_ENDPOINT unset keeps the storage
// template and its features switched off.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
