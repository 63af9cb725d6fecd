package admin

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oldoaktown/backend/internal/directory"
	"github.com/oldoaktown/backend/internal/models"
	"github.com/oldoaktown/backend/internal/submissions"
	"github.com/oldoaktown/backend/pkg/response"
)

// Notifier sends approval notification emails. Implementations must not
// block the request path.
type Notifier interface {
	ListingApproved(sub *models.Submission)
}

// ApproveRequest is the body for POST /api/approve-listing.
type ApproveRequest struct {
	SubmissionID string `json:"submissionId"`
	Password     string `json:"password"`
}

// Handler serves the admin dashboard and the approval action.
type Handler struct {
	subRepo  *submissions.Repository
	dirRepo  *directory.Repository
	password string
	notifier Notifier
	logger   *zap.Logger
}

// NewHandler creates an admin handler. notifier may be nil.
func NewHandler(subRepo *submissions.Repository, dirRepo *directory.Repository, password string, notifier Notifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{subRepo: subRepo, dirRepo: dirRepo, password: password, notifier: notifier, logger: logger}
}

func (h *Handler) checkPassword(given string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(h.password)) == 1
}

// Approve handles POST /api/approve-listing. Requires the shared secret
// and a submission in paid status; flips it to approved and appends the
// directory projection. The two store writes are not transactional: a
// failure after the first leaves an approved submission with no directory
// entry, to be reconciled manually.
func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !h.checkPassword(req.Password) {
		response.Unauthorized(c, "unauthorized")
		return
	}
	if req.SubmissionID == "" {
		response.BadRequest(c, "missing submissionId")
		return
	}

	sub, err := h.subRepo.Approve(c.Request.Context(), req.SubmissionID)
	if err != nil {
		var stateErr *submissions.StateError
		switch {
		case errors.Is(err, submissions.ErrNotFound):
			response.NotFound(c, "submission not found")
		case errors.As(err, &stateErr):
			response.StateConflict(c, "can only approve paid submissions", stateErr.Current)
		default:
			h.logger.Error("approve submission failed", zap.Error(err), zap.String("submission_id", req.SubmissionID))
			response.Internal(c, "failed to approve listing")
		}
		return
	}

	listing := models.ListingFromSubmission(sub)
	if err := h.dirRepo.Append(c.Request.Context(), listing); err != nil {
		h.logger.Error("directory write failed after approval; manual reconciliation needed",
			zap.Error(err),
			zap.String("submission_id", sub.ID),
			zap.String("business", sub.BusinessName),
		)
		response.Internal(c, "listing approved but directory update failed")
		return
	}

	h.logger.Info("listing approved",
		zap.String("submission_id", sub.ID),
		zap.String("business", sub.BusinessName),
		zap.String("email", sub.Email),
	)
	if h.notifier != nil {
		h.notifier.ListingApproved(sub)
	}

	response.OK(c, gin.H{"business": listing})
}

// Dashboard handles GET /api/get-pending. A wrong or missing password
// renders the login form with 401; otherwise the three status buckets.
func (h *Handler) Dashboard(c *gin.Context) {
	password := c.Query("password")
	if !h.checkPassword(password) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusUnauthorized)
		if err := pageTemplates.ExecuteTemplate(c.Writer, "login.html.tmpl", nil); err != nil {
			h.logger.Error("render login failed", zap.Error(err))
		}
		return
	}

	subs, err := h.subRepo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("load submissions failed", zap.Error(err))
		response.Internal(c, "failed to load submissions")
		return
	}

	var data dashboardData
	data.Password = password
	for _, s := range subs {
		switch s.Status {
		case models.StatusAwaitingPayment:
			data.Awaiting = append(data.Awaiting, s)
		case models.StatusPaid:
			data.Paid = append(data.Paid, s)
		case models.StatusApproved:
			data.Approved = append(data.Approved, s)
		}
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pageTemplates.ExecuteTemplate(c.Writer, "dashboard.html.tmpl", data); err != nil {
		h.logger.Error("render dashboard failed", zap.Error(err))
	}
}

type dashboardData struct {
	Password string
	Awaiting []models.Submission
	Paid     []models.Submission
	Approved []models.Submission
}
