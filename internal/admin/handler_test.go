package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldoaktown/backend/internal/directory"
	"github.com/oldoaktown/backend/internal/models"
	"github.com/oldoaktown/backend/internal/payments"
	"github.com/oldoaktown/backend/internal/submissions"
)

const testPassword = "oldoak2024"

type testEnv struct {
	router  *gin.Engine
	subRepo *submissions.Repository
	dirRepo *directory.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	subRepo := submissions.NewRepository(filepath.Join(dir, "pending-listings.json"))
	dirRepo := directory.NewRepository(filepath.Join(dir, "approved-listings.json"))
	handler := NewHandler(subRepo, dirRepo, testPassword, nil, nil)

	router := gin.New()
	router.POST("/api/approve-listing", handler.Approve)
	router.GET("/api/get-pending", handler.Dashboard)
	return &testEnv{router: router, subRepo: subRepo, dirRepo: dirRepo}
}

func (e *testEnv) seed(t *testing.T, sub models.Submission) {
	t.Helper()
	require.NoError(t, e.subRepo.Create(context.Background(), &sub))
}

func (e *testEnv) approve(t *testing.T, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/approve-listing", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w
}

func paidSubmission(id string) models.Submission {
	now := time.Now().UTC()
	sessionID := "cs_test_123"
	return models.Submission{
		ID:                 id,
		Status:             models.StatusPaid,
		BusinessName:       "Joe's Cafe",
		Email:              "joe@x.com",
		Package:            models.PackagePremium,
		SubmittedAt:        now.Add(-time.Hour),
		PaymentConfirmedAt: &now,
		StripeSessionID:    &sessionID,
	}
}

func TestApproveWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, paidSubmission("sub_1"))

	w := env.approve(t, map[string]string{"submissionId": "sub_1", "password": "letmein"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	sub, err := env.subRepo.GetByID(context.Background(), "sub_1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, sub.Status)
}

func TestApproveMissingSubmissionID(t *testing.T) {
	env := newTestEnv(t)
	w := env.approve(t, map[string]string{"password": testPassword})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing submissionId")
}

func TestApproveUnknownSubmission(t *testing.T) {
	env := newTestEnv(t)
	w := env.approve(t, map[string]string{"submissionId": "sub_nope", "password": testPassword})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveRefusesWrongStatus(t *testing.T) {
	cases := []struct {
		name   string
		status string
	}{
		{"awaiting payment", models.StatusAwaitingPayment},
		{"already approved", models.StatusApproved},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			sub := paidSubmission("sub_1")
			sub.Status = tc.status
			env.seed(t, sub)

			w := env.approve(t, map[string]string{"submissionId": "sub_1", "password": testPassword})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp struct {
				Success       bool   `json:"success"`
				Error         string `json:"error"`
				CurrentStatus string `json:"currentStatus"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tc.status, resp.CurrentStatus)

			listings, err := env.dirRepo.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, listings)
		})
	}
}

func TestApprovePaidSubmission(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, paidSubmission("sub_1"))

	w := env.approve(t, map[string]string{"submissionId": "sub_1", "password": testPassword})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success  bool `json:"success"`
		Data     struct {
			Business models.Listing `json:"business"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Joe's Cafe", resp.Data.Business.Name)
	assert.True(t, resp.Data.Business.Featured, "premium package should be featured")

	sub, err := env.subRepo.GetByID(context.Background(), "sub_1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, sub.Status)
	require.NotNil(t, sub.ApprovedAt)

	listings, err := env.dirRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "sub_1", listings[0].ID)
}

// Exercises the whole funnel: visitor submits, Stripe confirms payment,
// admin approves, and the business appears in the public directory.
func TestSubmissionToDirectoryFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	subRepo := submissions.NewRepository(filepath.Join(dir, "pending-listings.json"))
	dirRepo := directory.NewRepository(filepath.Join(dir, "approved-listings.json"))

	router := gin.New()
	router.POST("/api/business-submit", submissions.NewHandler(subRepo, nil, nil).Submit)
	router.POST("/api/stripe-webhook", payments.NewWebhookHandler(subRepo, "", nil).HandleEvent)
	router.POST("/api/approve-listing", NewHandler(subRepo, dirRepo, testPassword, nil, nil).Approve)
	router.GET("/api/businesses", directory.NewHandler(dirRepo, nil).List)

	// Intake.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/business-submit",
		strings.NewReader(`{"businessName":"Joe's Cafe","email":"joe@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var submitResp struct {
		Data struct {
			SubmissionID string `json:"submissionId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitResp))
	subID := submitResp.Data.SubmissionID
	require.NotEmpty(t, subID)

	// Payment confirmation.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/stripe-webhook", strings.NewReader(
		`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1","customer_email":"joe@x.com"}}}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Approval.
	w = httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{"submissionId": subID, "password": testPassword})
	req = httptest.NewRequest(http.MethodPost, "/api/approve-listing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Public directory.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/businesses", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data struct {
			Businesses []models.Listing `json:"businesses"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data.Businesses, 1)
	assert.Equal(t, "Joe's Cafe", listResp.Data.Businesses[0].Name)
	assert.False(t, listResp.Data.Businesses[0].Featured, "no package selected means not featured")
}

func TestDashboardRequiresPassword(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/get-pending", nil)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "password")
}

func TestDashboardRendersBuckets(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, models.Submission{ID: "sub_a", Status: models.StatusAwaitingPayment, BusinessName: "Waiting Co", Email: "w@x.com", SubmittedAt: time.Now().UTC()})
	env.seed(t, paidSubmission("sub_b"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/get-pending?password="+testPassword, nil)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Waiting Co")
	assert.Contains(t, body, "Joe&#39;s Cafe")
}
