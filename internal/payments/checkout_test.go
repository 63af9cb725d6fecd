package payments

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oldoaktown/backend/config"
)

func newCheckoutRouter(cfg config.StripeConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/checkout-session", NewCheckoutHandler(cfg, nil).CreateSession)
	return router
}

func TestCreateSessionValidation(t *testing.T) {
	cfg := config.StripeConfig{PriceIDs: config.PriceTable{
		"featured": {"monthly": "price_fm"},
	}}
	router := newCheckoutRouter(cfg)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing email", `{"package":"featured","frequency":"monthly"}`, http.StatusBadRequest},
		{"missing package", `{"frequency":"monthly","email":"joe@x.com"}`, http.StatusBadRequest},
		{"unknown package", `{"package":"platinum","frequency":"monthly","email":"joe@x.com"}`, http.StatusBadRequest},
		{"unknown frequency", `{"package":"featured","frequency":"weekly","email":"joe@x.com"}`, http.StatusBadRequest},
		{"not json", `not json`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/checkout-session", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCreateSessionNoSecretKey(t *testing.T) {
	cfg := config.StripeConfig{PriceIDs: config.PriceTable{
		"featured": {"monthly": "price_fm"},
	}}
	router := newCheckoutRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout-session",
		strings.NewReader(`{"package":"featured","frequency":"monthly","email":"joe@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "payments are not configured")
}
