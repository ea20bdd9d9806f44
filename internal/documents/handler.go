package documents

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"paperqa-backend/internal/shared/server/respond"
	"paperqa-backend/internal/shared/storage/object"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	// MaxUploadBytes caps a request body; zero leaves uploads unlimited.
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.POST("/documents/batch", h.uploadBatch)
	rg.GET("/documents", h.list)
	rg.GET("/documents/stats", h.stats)
	rg.GET("/documents/:id", h.get)
	rg.GET("/documents/:id/file", h.download)
	rg.DELETE("/documents/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	if !h.limitBody(c) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.formError(c, err)
		return
	}

	doc, err := h.save(c, fileHeader)
	if err != nil {
		h.uploadError(c, err)
		return
	}

	c.Set("documentId", doc.ID)
	respond.Created(c, ToResponse(doc))
}

func (h *Handler) uploadBatch(c *gin.Context) {
	if !h.limitBody(c) {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.formError(c, err)
		return
	}
	headers := slices.Concat(form.File["files"], form.File["file"])
	if len(headers) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no file provided", nil)
		return
	}

	created := make([]Document, 0, len(headers))
	for _, fh := range headers {
		doc, err := h.save(c, fh)
		if err != nil {
			h.uploadError(c, err)
			return
		}
		created = append(created, doc)
	}

	respond.Created(c, toResponses(created))
}

func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.ProcessingFailed(c, err)
		return
	}
	respond.OK(c, toResponses(docs))
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respond.ProcessingFailed(c, err)
		return
	}
	respond.OK(c, toStatsResponse(stats))
}

func (h *Handler) get(c *gin.Context) {
	id, ok := ParseID(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
		return
	}
	c.Set("documentId", id)

	doc, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
			return
		}
		respond.ProcessingFailed(c, err)
		return
	}
	respond.OK(c, ToResponse(doc))
}

func (h *Handler) download(c *gin.Context) {
	id, ok := ParseID(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
		return
	}
	c.Set("documentId", id)

	doc, rc, err := h.Svc.OpenFile(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
		return
	case errors.Is(err, object.ErrNotStored):
		respond.Error(c, http.StatusNotFound, "not_found", "file not stored", nil)
		return
	case err != nil:
		respond.ProcessingFailed(c, err)
		return
	}
	defer rc.Close()

	mimeType := doc.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, doc.SizeBytes, mimeType, rc, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}),
	})
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := ParseID(c.Param("id"))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.Set("documentId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respond.ProcessingFailed(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) save(c *gin.Context, fh *multipart.FileHeader) (Document, error) {
	file, err := fh.Open()
	if err != nil {
		return Document{}, err
	}
	defer file.Close()
	return h.Svc.Upload(c.Request.Context(), fh.Filename, file)
}

// limitBody enforces MaxUploadBytes. Declared lengths are rejected up front;
// chunked bodies are cut off while reading.
func (h *Handler) limitBody(c *gin.Context) bool {
	if h.MaxUploadBytes <= 0 {
		return true
	}
	if c.Request.ContentLength > h.MaxUploadBytes {
		h.tooLarge(c)
		return false
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	return true
}

func (h *Handler) tooLarge(c *gin.Context) {
	respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file too large", gin.H{"maxBytes": h.MaxUploadBytes})
}

func (h *Handler) formError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.tooLarge(c)
		return
	}
	respond.Error(c, http.StatusBadRequest, "validation_error", "no file provided", nil)
}

func (h *Handler) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "no file provided", nil)
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.tooLarge(c)
			return
		}
		respond.ProcessingFailed(c, err)
	}
}
