package submissions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/oldoaktown/backend/internal/models"
	"github.com/oldoaktown/backend/pkg/jsonfile"
)

// ErrNotFound is returned when no submission has the requested id.
var ErrNotFound = errors.New("submission not found")

// StateError reports a refused lifecycle transition. Only paid submissions
// can be approved.
type StateError struct {
	Current string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("can only approve paid submissions (current status: %s)", e.Current)
}

// storeFile is the on-disk shape of the submissions store.
type storeFile struct {
	Submissions []models.Submission `json:"submissions"`
}

// Repository is the submission store: one JSON file holding every
// submission and its lifecycle status. The whole file is read, mutated in
// memory and rewritten on every change; the mutex serializes writers in
// this process.
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository creates a submissions repository backed by the file at path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) load() (*storeFile, error) {
	var store storeFile
	if err := jsonfile.Read(r.path, &store); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &storeFile{}, nil
		}
		return nil, err
	}
	return &store, nil
}

// List returns all submissions in store order.
func (r *Repository) List(ctx context.Context) ([]models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, err := r.load()
	if err != nil {
		return nil, err
	}
	return store.Submissions, nil
}

// GetByID returns the submission with the given id, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range store.Submissions {
		if store.Submissions[i].ID == id {
			sub := store.Submissions[i]
			return &sub, nil
		}
	}
	return nil, nil
}

// Create appends a new submission and rewrites the store.
func (r *Repository) Create(ctx context.Context, sub *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, err := r.load()
	if err != nil {
		return err
	}
	store.Submissions = append(store.Submissions, *sub)
	return jsonfile.Write(r.path, store)
}

// MarkPaid finds the first submission in store order whose email matches
// case-insensitively and whose status is still awaiting_payment, flips it
// to paid and records the processor identifiers. Returns nil when no
// submission matches; the store is left untouched in that case.
func (r *Repository) MarkPaid(ctx context.Context, email, sessionID, customerID string) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range store.Submissions {
		s := &store.Submissions[i]
		if !strings.EqualFold(s.Email, email) || s.Status != models.StatusAwaitingPayment {
			continue
		}
		now := time.Now().UTC()
		s.Status = models.StatusPaid
		s.PaymentConfirmedAt = &now
		s.StripeSessionID = &sessionID
		s.StripeCustomerID = &customerID
		if err := jsonfile.Write(r.path, store); err != nil {
			return nil, err
		}
		paid := *s
		return &paid, nil
	}
	return nil, nil
}

// Approve flips a paid submission to approved and stamps approvedAt.
// Returns ErrNotFound for an unknown id and *StateError when the submission
// is not exactly paid; the store is unchanged on any error.
func (r *Repository) Approve(ctx context.Context, id string) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range store.Submissions {
		s := &store.Submissions[i]
		if s.ID != id {
			continue
		}
		if s.Status != models.StatusPaid {
			return nil, &StateError{Current: s.Status}
		}
		now := time.Now().UTC()
		s.Status = models.StatusApproved
		s.ApprovedAt = &now
		if err := jsonfile.Write(r.path, store); err != nil {
			return nil, err
		}
		approved := *s
		return &approved, nil
	}
	return nil, ErrNotFound
}
