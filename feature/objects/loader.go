package objects

import (
	"storage-template/core/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	tpl     *template.Template
	handler *Handler
}

// NewFeature creates a new objects feature. A nil template disables it.
func NewFeature(tpl *template.Template, logger *zap.Logger) *Feature {
	return &Feature{tpl: tpl, handler: NewHandler(tpl, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "objects"
}

// IsEnabled reports whether storage is configured.
func (f *Feature) IsEnabled() bool {
	return f.tpl != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
