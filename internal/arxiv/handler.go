package arxiv

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paperqa-backend/internal/documents"
	"paperqa-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches arxiv routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/arxiv/search", h.search)
	rg.POST("/arxiv/papers/:id/import", h.importPaper)
}

func (h *Handler) search(c *gin.Context) {
	papers, err := h.Svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "query is required", nil)
			return
		}
		respond.ProcessingFailed(c, err)
		return
	}
	respond.OK(c, papers)
}

func (h *Handler) importPaper(c *gin.Context) {
	doc, err := h.Svc.Import(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "paper id is required", nil)
			return
		}
		respond.ProcessingFailed(c, err)
		return
	}
	c.Set("documentId", doc.ID)
	respond.Created(c, documents.ToResponse(doc))
}
