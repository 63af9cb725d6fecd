package directory

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/oldoaktown/backend/internal/models"
	"github.com/oldoaktown/backend/pkg/jsonfile"
)

// storeFile is the on-disk shape of the approved-listings store.
type storeFile struct {
	Businesses []models.Listing `json:"businesses"`
}

// Repository is the directory store: an append-only projection of approved
// submissions, rewritten wholesale on every append.
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository creates a directory repository backed by the file at path.
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

// List returns all published listings in store order.
func (r *Repository) List(ctx context.Context) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, err := r.load()
	if err != nil {
		return nil, err
	}
	return store.Businesses, nil
}

// Append adds a listing and rewrites the store. Listings are never mutated
// or deleted afterwards.
func (r *Repository) Append(ctx context.Context, listing models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, err := r.load()
	if err != nil {
		return err
	}
	store.Businesses = append(store.Businesses, listing)
	return jsonfile.Write(r.path, store)
}
