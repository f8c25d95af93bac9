package objects

import (
	"bytes"
	"net/url"
	"time"

	"storage-template/core/logger"
	"storage-template/core/server"
	"storage-template/core/storage"
	"storage-template/core/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultContentType = "application/octet-stream"

// Handler handles HTTP requests for object operations.
type Handler struct {
	tpl    *template.Template
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(tpl *template.Template, logger *zap.Logger) *Handler {
	return &Handler{tpl: tpl, logger: logger}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets/:bucket")
	group.Get("/objects", h.HandleList)
	group.Get("/objects/*", h.HandleStat)
	group.Put("/objects/*", h.HandlePut)
	group.Delete("/objects/*", h.HandleRemove)
	group.Get("/url/*", h.HandleURL)
}

// objectName returns the unescaped wildcard part of the route.
func objectName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return "", &storage.Error{Kind: storage.KindInvalidArgument, Message: "malformed object name", Cause: err}
	}
	if name == "" {
		return "", &storage.Error{Kind: storage.KindInvalidArgument, Message: "object name is required"}
	}
	return name, nil
}

// HandleList lists objects under a prefix.
// @Summary List Objects
// @Description Lists objects by prefix. A missing bucket or a denied listing fails the request.
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param prefix query string false "Key prefix"
// @Param recursive query boolean false "Descend into nested prefixes"
// @Success 200 {object} map[string]interface{} "Objects"
// @Failure 404 {object} map[string]string "Bucket not found"
// @Router /buckets/{bucket}/objects [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	bucket := c.Params("bucket")

	seq := h.tpl.ListObjects(c.Context(), bucket, c.Query("prefix"), c.QueryBool("recursive", false))
	objects, err := template.Collect(seq)
	if err != nil {
		l.Error("List objects failed", zap.String("bucket", bucket), zap.Error(err))
		return server.SendError(c, err)
	}

	if objects == nil {
		objects = []template.Object{}
	}
	return c.JSON(fiber.Map{
		"objects": objects,
	})
}

// HandleStat returns object metadata, or the content when download=true.
// @Summary Stat or Download Object
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param object path string true "Object name"
// @Param download query boolean false "Stream the object content"
// @Success 200 {object} template.Object
// @Failure 404 {object} map[string]string "Not Found"
// @Router /buckets/{bucket}/objects/{object} [get]
func (h *Handler) HandleStat(c *fiber.Ctx) error {
	if c.Params("*") == "" {
		return h.HandleList(c)
	}
	name, err := objectName(c)
	if err != nil {
		return server.SendError(c, err)
	}
	bucket := c.Params("bucket")

	obj, err := h.tpl.StatObject(c.Context(), bucket, name)
	if err != nil {
		return server.SendError(c, err)
	}
	if !c.QueryBool("download", false) {
		return c.JSON(obj)
	}

	rc, err := h.tpl.GetObject(c.Context(), bucket, name)
	if err != nil {
		return server.SendError(c, err)
	}
	if obj.ContentType != "" {
		c.Set(fiber.HeaderContentType, obj.ContentType)
	}
	c.Set(fiber.HeaderETag, obj.ETag)
	return c.SendStream(rc, int(obj.Length))
}

// HandlePut uploads the request body as an object.
// @Summary Upload Object
// @Description Uploads the request body. The Content-Type header is stored with the object.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param object path string true "Object name"
// @Success 200 {object} template.Object
// @Failure 404 {object} map[string]string "Bucket not found"
// @Router /buckets/{bucket}/objects/{object} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name, err := objectName(c)
	if err != nil {
		return server.SendError(c, err)
	}
	bucket := c.Params("bucket")

	contentType := c.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	body := c.Body()
	obj, err := h.tpl.PutObject(c.Context(), bucket, name, bytes.NewReader(body), int64(len(body)), contentType)
	if err != nil {
		l.Error("Upload failed", zap.String("bucket", bucket), zap.String("object", name), zap.Error(err))
		return server.SendError(c, err)
	}
	l.Info("Object uploaded", zap.String("bucket", bucket), zap.String("object", name), zap.Int64("size", obj.Length))
	return c.JSON(obj)
}

// HandleRemove deletes an object.
// @Summary Remove Object
// @Tags objects
// @Param bucket path string true "Bucket name"
// @Param object path string true "Object name"
// @Success 200 {object} map[string]string "Removed"
// @Router /buckets/{bucket}/objects/{object} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	name, err := objectName(c)
	if err != nil {
		return server.SendError(c, err)
	}
	bucket := c.Params("bucket")

	if err := h.tpl.RemoveObject(c.Context(), bucket, name); err != nil {
		return server.SendError(c, err)
	}
	logger.WithRayID(h.logger, c).Info("Object removed", zap.String("bucket", bucket), zap.String("object", name))
	return c.JSON(fiber.Map{"status": "removed", "bucket": bucket, "object": name})
}

// HandleURL returns a direct or presigned URL for an object.
// @Summary Object URL
// @Description Returns the unsigned object URL, or a presigned GET URL when presign=true (expires in seconds, default 7 days).
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param object path string true "Object name"
// @Param presign query boolean false "Sign the URL"
// @Param expires query int false "Expiry in seconds"
// @Success 200 {object} map[string]string "URL"
// @Router /buckets/{bucket}/url/{object} [get]
func (h *Handler) HandleURL(c *fiber.Ctx) error {
	name, err := objectName(c)
	if err != nil {
		return server.SendError(c, err)
	}
	bucket := c.Params("bucket")

	if !c.QueryBool("presign", false) {
		u, err := h.tpl.ObjectURL(c.Context(), bucket, name)
		if err != nil {
			return server.SendError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}

	expiry := time.Duration(c.QueryInt("expires", 0)) * time.Second
	u, err := h.tpl.PresignedGetURL(c.Context(), bucket, name, expiry)
	if err != nil {
		return server.SendError(c, err)
	}
	return c.JSON(fiber.Map{
		"url":        u,
		"expires_in": int64(h.tpl.Expiry(expiry) / time.Second),
	})
}
