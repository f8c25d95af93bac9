// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports whether it is enabled
// and registers its routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager keeps the registry of features. Register() adds one and LoadAll() loads
// the enabled ones in registration order. The storage features report themselves as
// disabled when no storage endpoint is configured.
package loader
