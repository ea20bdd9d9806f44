package questions

import (
	"errors"
	"net/http"
	"strings"

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

// RegisterRoutes attaches question and agent routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/questions", h.ask)
	rg.POST("/agent", h.agent)
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.DocumentID) == "" || strings.TrimSpace(req.Question) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "documentId and question are required", nil)
		return
	}

	id, ok := documents.ParseID(strings.TrimSpace(req.DocumentID))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", documents.ErrNotFound.Error(), nil)
		return
	}
	c.Set("documentId", id)

	res, err := h.Svc.Ask(c.Request.Context(), Request{
		DocumentID: id,
		Question:   req.Question,
		Context:    req.Context,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "documentId and question are required", nil)
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", documents.ErrNotFound.Error(), nil)
		default:
			respond.ProcessingFailed(c, err)
		}
		return
	}

	c.Set("queryType", string(res.QueryType))
	respond.OK(c, toAskResponse(res))
}

func (h *Handler) agent(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required parameters", nil)
		return
	}

	resp, err := h.Svc.Agent(c.Request.Context(), req.DocumentID, req.Question)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required parameters", nil)
			return
		}
		respond.ProcessingFailed(c, err)
		return
	}
	respond.OK(c, resp)
}
