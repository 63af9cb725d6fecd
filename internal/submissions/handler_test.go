package submissions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldoaktown/backend/internal/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := NewRepository(filepath.Join(t.TempDir(), "pending-listings.json"))
	handler := NewHandler(repo, nil, nil)
	router := gin.New()
	router.POST("/api/business-submit", handler.Submit)
	return router, repo
}

func TestSubmit(t *testing.T) {
	router, repo := newTestRouter(t)

	body := `{"businessName":"Joe's Cafe","email":"joe@x.com","package":"featured","frequency":"monthly","phone":"020 1234 5678"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business-submit", strings.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			SubmissionID string `json:"submissionId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Data.SubmissionID, "sub_"))

	sub, err := repo.GetByID(context.Background(), resp.Data.SubmissionID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, models.StatusAwaitingPayment, sub.Status)
	assert.Equal(t, "Joe's Cafe", sub.BusinessName)
	assert.False(t, sub.SubmittedAt.IsZero())
	assert.Nil(t, sub.PaymentConfirmedAt)
	assert.Nil(t, sub.ApprovedAt)
	assert.Nil(t, sub.StripeSessionID)
	assert.Nil(t, sub.StripeCustomerID)
}

func TestSubmitMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"businessName":"Joe's Cafe"}`},
		{"missing businessName", `{"email":"joe@x.com"}`},
		{"empty body", `{}`},
		{"not json", `boom`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newTestRouter(t)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/business-submit", strings.NewReader(tt.body))
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			list, err := repo.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestSubmissionIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newSubmissionID()
		assert.True(t, strings.HasPrefix(id, "sub_"))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
