package payments

import (
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"

	"github.com/oldoaktown/backend/config"
	"github.com/oldoaktown/backend/pkg/response"
)

// CheckoutRequest is the body for POST /api/checkout-session.
type CheckoutRequest struct {
	Package   string `json:"package" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

// CheckoutHandler creates hosted checkout sessions for listing packages so
// the secret key never reaches the browser.
type CheckoutHandler struct {
	cfg    config.StripeConfig
	logger *zap.Logger
}

// NewCheckoutHandler creates a checkout handler and sets the global Stripe
// key.
func NewCheckoutHandler(cfg config.StripeConfig, logger *zap.Logger) *CheckoutHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	stripe.Key = cfg.SecretKey
	return &CheckoutHandler{cfg: cfg, logger: logger}
}

// CreateSession handles POST /api/checkout-session. Returns the hosted
// checkout URL for the requested package/frequency.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "package, frequency and email are required")
		return
	}
	priceID, ok := h.cfg.PriceID(req.Package, req.Frequency)
	if !ok {
		response.BadRequest(c, "unknown package or frequency")
		return
	}
	if h.cfg.SecretKey == "" {
		h.logger.Error("checkout requested but STRIPE_SECRET_KEY is not set")
		response.Internal(c, "payments are not configured")
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(req.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(h.cfg.SuccessURL),
		CancelURL:  stripe.String(h.cfg.CancelURL),
	}
	s, err := session.New(params)
	if err != nil {
		h.logger.Error("create checkout session failed", zap.Error(err), zap.String("price_id", priceID))
		response.Internal(c, "failed to create checkout session")
		return
	}

	h.logger.Info("checkout session created",
		zap.String("session_id", s.ID),
		zap.String("package", req.Package),
		zap.String("frequency", req.Frequency),
	)
	response.OK(c, gin.H{"sessionId": s.ID, "url": s.URL})
}
