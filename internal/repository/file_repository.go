package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

// SeedFiles returns the sample records the dashboard starts with.
func SeedFiles() []entity.FileRecord {
	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	return []entity.FileRecord{
		{
			ID:         uuid.FromStringOrNil("6f1c1d8e-1f6b-4c1e-9a43-000000000001"),
			Name:       "Laporan Penelitian Q1 2024.pdf",
			Type:       "pdf",
			Size:       2048576,
			UploadedAt: day(15),
			UploadedBy: "Dr. Ahmad Wijaya, M.T.",
			Role:       entity.RoleDosen,
			FolderID:   "penelitian",
			URL:        "/files/penelitian/laporan-q1-2024.pdf",
		},
		{
			ID:         uuid.FromStringOrNil("6f1c1d8e-1f6b-4c1e-9a43-000000000002"),
			Name:       "Materi Kuliah Algoritma.pptx",
			Type:       "pptx",
			Size:       15728640,
			UploadedAt: day(14),
			UploadedBy: "Dr. Ahmad Wijaya, M.T.",
			Role:       entity.RoleDosen,
			FolderID:   "materi-kuliah",
			URL:        "/files/materi/algoritma.pptx",
		},
		{
			ID:         uuid.FromStringOrNil("6f1c1d8e-1f6b-4c1e-9a43-000000000003"),
			Name:       "Laporan Keuangan Januari.xlsx",
			Type:       "xlsx",
			Size:       1048576,
			UploadedAt: day(13),
			UploadedBy: "Siti Nurhaliza, S.Kom.",
			Role:       entity.RoleTendik,
			FolderID:   "keuangan",
			URL:        "/files/keuangan/laporan-januari.xlsx",
		},
		{
			ID:         uuid.FromStringOrNil("6f1c1d8e-1f6b-4c1e-9a43-000000000004"),
			Name:       "Kurikulum 2024.pdf",
			Type:       "pdf",
			Size:       3145728,
			UploadedAt: day(12),
			UploadedBy: "Prof. Dr. Bambang Sutrisno, M.Sc.",
			Role:       entity.RoleWakilDekan1,
			FolderID:   "kurikulum",
			URL:        "/files/kurikulum/kurikulum-2024.pdf",
		},
		{
			ID:         uuid.FromStringOrNil("6f1c1d8e-1f6b-4c1e-9a43-000000000005"),
			Name:       "Data Alumni 2023.xlsx",
			Type:       "xlsx",
			Size:       2097152,
			UploadedAt: day(11),
			UploadedBy: "Dr. Rudi Hartono, M.Pd.",
			Role:       entity.RoleWakilDekan3,
			FolderID:   "alumni",
			URL:        "/files/alumni/data-2023.xlsx",
		},
	}
}

// FileRepository is the in-memory file registry. Insertion order is kept.
type FileRepository struct {
	mu    sync.RWMutex
	files []entity.FileRecord
}

func NewFileRepository(files ...entity.FileRecord) *FileRepository {
	return &FileRepository{
		files: slices.Clone(files),
	}
}

func (r *FileRepository) ListFiles(_ context.Context, role entity.Role) []entity.FileRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files := make([]entity.FileRecord, 0)

	for _, f := range r.files {
		if f.Role == role {
			files = append(files, f)
		}
	}

	return files
}

func (r *FileRepository) FileByID(_ context.Context, id uuid.UUID) (entity.FileRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return entity.FileRecord{}, entity.ErrFileNotFound
	}

	return r.files[i], nil
}

func (r *FileRepository) Insert(_ context.Context, file entity.FileRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.files = append(r.files, file)

	return nil
}

func (r *FileRepository) Remove(_ context.Context, id uuid.UUID) (entity.FileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entity.FileRecord{}, entity.ErrFileNotFound
	}

	removed := r.files[i]
	r.files = slices.Delete(r.files, i, i+1)

	return removed, nil
}

func (r *FileRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.files, func(f entity.FileRecord) bool {
		return f.ID == id
	})
}
