package directory

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oldoaktown/backend/internal/models"
	"github.com/oldoaktown/backend/pkg/response"
)

// Handler serves the public directory.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a directory handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /api/businesses. Returns every approved listing; the
// directory page filters client-side.
func (h *Handler) List(c *gin.Context) {
	listings, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("load directory failed", zap.Error(err))
		response.Internal(c, "failed to load directory")
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	response.OK(c, gin.H{"businesses": listings})
}
