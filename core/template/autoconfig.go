package template

import "storage-template/core/storage"

// Configure returns the template the process should share. A template already
// supplied by the embedding application wins; otherwise one is built from cfg,
// but only when an endpoint is set. The boolean reports whether storage is active.
//
// Settings are not validated here. Bad endpoints or credentials surface on the
// first operation.
func Configure(cfg storage.Config, supplied *Template, opts ...Option) (*Template, bool) {
	if supplied != nil {
		return supplied, true
	}
	if !cfg.IsConfigured() {
		return nil, false
	}
	return New(cfg, opts...), true
}
