package submissions

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oldoaktown/backend/internal/models"
	"github.com/oldoaktown/backend/pkg/response"
)

// Notifier sends submission notification emails. Implementations must not
// block the request path.
type Notifier interface {
	SubmissionReceived(sub *models.Submission)
}

// SubmitRequest is the body for POST /api/business-submit.
type SubmitRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	LogoURL      string `json:"logoUrl"`
	Package      string `json:"package"`
	Frequency    string `json:"frequency"`
}

// Handler handles submission intake.
type Handler struct {
	repo     *Repository
	notifier Notifier
	logger   *zap.Logger
}

// NewHandler creates a submissions handler. notifier may be nil.
func NewHandler(repo *Repository, notifier Notifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, notifier: notifier, logger: logger}
}

// Submit handles POST /api/business-submit. Creates a submission in
// awaiting_payment with all payment and approval fields null.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "missing required fields: email and businessName are required")
		return
	}

	sub := &models.Submission{
		ID:           newSubmissionID(),
		Status:       models.StatusAwaitingPayment,
		BusinessName: req.BusinessName,
		Category:     req.Category,
		Description:  req.Description,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		Address:      req.Address,
		LogoURL:      req.LogoURL,
		Package:      req.Package,
		Frequency:    req.Frequency,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := h.repo.Create(c.Request.Context(), sub); err != nil {
		h.logger.Error("save submission failed", zap.Error(err), zap.String("business", sub.BusinessName))
		response.Internal(c, "failed to save submission")
		return
	}

	h.logger.Info("submission saved",
		zap.String("submission_id", sub.ID),
		zap.String("business", sub.BusinessName),
		zap.String("email", sub.Email),
	)
	if h.notifier != nil {
		h.notifier.SubmissionReceived(sub)
	}

	response.OK(c, gin.H{"submissionId": sub.ID})
}

// newSubmissionID builds an id from the current time plus a random suffix,
// e.g. sub_1718000000000_9f1c3a8b7.
func newSubmissionID() string {
	b := make([]byte, 5)
	_, _ = rand.Read(b)
	return fmt.Sprintf("sub_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(b)[:9])
}
