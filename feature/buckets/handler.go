package buckets

import (
	"storage-template/core/logger"
	"storage-template/core/server"
	"storage-template/core/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bucket operations.
type Handler struct {
	tpl    *template.Template
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(tpl *template.Template, logger *zap.Logger) *Handler {
	return &Handler{tpl: tpl, logger: logger}
}

// RegisterRoutes registers the bucket routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets")
	group.Get("/", h.HandleList)
	group.Get("/:bucket", h.HandleGet)
	group.Put("/:bucket", h.HandleCreate)
	group.Delete("/:bucket", h.HandleRemove)
}

// HandleList lists all buckets.
// @Summary List Buckets
// @Description Lists every bucket in the order returned by the storage service.
// @Tags buckets
// @Produce json
// @Success 200 {object} map[string]interface{} "Buckets"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	buckets, err := h.tpl.ListBuckets(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List buckets failed", zap.Error(err))
		return server.SendError(c, err)
	}
	return c.JSON(fiber.Map{"buckets": buckets})
}

// HandleGet returns a single bucket.
// @Summary Get Bucket
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} template.Bucket
// @Failure 404 {object} map[string]string "Not Found"
// @Router /buckets/{bucket} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	bucket, err := h.tpl.GetBucket(c.Context(), c.Params("bucket"))
	if err != nil {
		return server.SendError(c, err)
	}
	return c.JSON(bucket)
}

// HandleCreate creates a bucket if it does not exist yet.
// @Summary Create Bucket
// @Description Creates the bucket. Creating an existing bucket is a no-op.
// @Tags buckets
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]string "Created"
// @Failure 400 {object} map[string]string "Invalid bucket name"
// @Router /buckets/{bucket} [put]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := c.Params("bucket")

	if err := h.tpl.CreateBucket(c.Context(), name); err != nil {
		l.Error("Create bucket failed", zap.String("bucket", name), zap.Error(err))
		return server.SendError(c, err)
	}
	l.Info("Bucket ensured", zap.String("bucket", name))
	return c.JSON(fiber.Map{"status": "created", "bucket": name})
}

// HandleRemove deletes an empty bucket.
// @Summary Remove Bucket
// @Description Deletes an empty bucket. Non-empty buckets are rejected with 409.
// @Tags buckets
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]string "Removed"
// @Failure 409 {object} map[string]string "Bucket not empty"
// @Router /buckets/{bucket} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := c.Params("bucket")

	if err := h.tpl.RemoveBucket(c.Context(), name); err != nil {
		l.Warn("Remove bucket failed", zap.String("bucket", name), zap.Error(err))
		return server.SendError(c, err)
	}
	l.Info("Bucket removed", zap.String("bucket", name))
	return c.JSON(fiber.Map{"status": "removed", "bucket": name})
}
