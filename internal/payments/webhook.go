package payments

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"

	"github.com/oldoaktown/backend/internal/submissions"
	"github.com/oldoaktown/backend/pkg/response"
)

// maxWebhookBody caps the raw payload read for signature verification.
const maxWebhookBody = 65536

// WebhookHandler processes payment-completion events from Stripe.
type WebhookHandler struct {
	repo   *submissions.Repository
	secret string
	logger *zap.Logger
}

// NewWebhookHandler creates a Stripe webhook handler. An empty signing
// secret disables verification; the raw body is trusted as-is, which is
// only acceptable in development.
func NewWebhookHandler(repo *submissions.Repository, signingSecret string, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{repo: repo, secret: signingSecret, logger: logger}
}

// HandleEvent handles POST /api/stripe-webhook. Once the signature check
// passes, the event is always acknowledged with {received:true} so Stripe
// does not retry, even when no submission matches.
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		response.BadRequest(c, "failed to read request body")
		return
	}

	var event stripe.Event
	if h.secret != "" {
		event, err = webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.secret)
		if err != nil {
			h.logger.Error("webhook signature verification failed", zap.Error(err))
			response.BadRequest(c, "webhook signature verification failed")
			return
		}
	} else {
		h.logger.Warn("webhook signature verification is disabled; set STRIPE_WEBHOOK_SECRET in production")
		if err := json.Unmarshal(payload, &event); err != nil {
			response.BadRequest(c, "invalid webhook payload")
			return
		}
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		h.handleCheckoutCompleted(c.Request.Context(), event.Data.Raw)
	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		h.logger.Info("subscription event", zap.String("type", string(event.Type)), zap.String("event_id", event.ID))
	default:
		h.logger.Info("unhandled event type", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// handleCheckoutCompleted matches the payment to a pending submission and
// flips it to paid. Every failure path here is logged but swallowed: the
// webhook contract requires acknowledgment regardless.
func (h *WebhookHandler) handleCheckoutCompleted(ctx context.Context, raw json.RawMessage) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		h.logger.Error("parse checkout session failed", zap.Error(err))
		return
	}

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}
	if email == "" {
		h.logger.Error("no customer email in checkout session", zap.String("session_id", session.ID))
		return
	}
	customerID := ""
	if session.Customer != nil {
		customerID = session.Customer.ID
	}

	sub, err := h.repo.MarkPaid(ctx, email, session.ID, customerID)
	if err != nil {
		h.logger.Error("mark paid failed", zap.Error(err), zap.String("email", email))
		return
	}
	if sub == nil {
		// Could be an upgrade from an existing customer; surfaced as a
		// warning so integration problems are not silently masked.
		h.logger.Warn("payments.webhook.no_match",
			zap.String("email", email),
			zap.String("session_id", session.ID),
		)
		return
	}

	h.logger.Info("payment confirmed",
		zap.String("submission_id", sub.ID),
		zap.String("business", sub.BusinessName),
		zap.String("email", email),
		zap.Int64("amount_total", session.AmountTotal),
	)
}
