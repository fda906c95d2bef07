package repository

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

// BlobRepository holds uploaded content in memory until it is released.
type BlobRepository struct {
	mu    sync.Mutex
	blobs map[uuid.UUID]entity.Blob
}

func NewBlobRepository() *BlobRepository {
	return &BlobRepository{
		blobs: make(map[uuid.UUID]entity.Blob),
	}
}

func (r *BlobRepository) SaveBlob(_ context.Context, blob entity.Blob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blobs[blob.FileID] = blob

	return nil
}

func (r *BlobRepository) BlobByFileID(_ context.Context, fileID uuid.UUID) (entity.Blob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.blobs[fileID]
	if !ok {
		return entity.Blob{}, entity.ErrBlobNotFound
	}

	return b, nil
}

func (r *BlobRepository) DeleteBlob(_ context.Context, fileID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.blobs, fileID)

	return nil
}

// DeleteBlobsOlderThan drops every blob created before the cutoff and
// returns how many were dropped.
func (r *BlobRepository) DeleteBlobsOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0

	for id, b := range r.blobs {
		if b.CreatedAt.Before(cutoff) {
			delete(r.blobs, id)
			n++
		}
	}

	return n, nil
}
