package service

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

const recentUploadsLimit = 3

type FileRepository interface {
	ListFiles(ctx context.Context, role entity.Role) []entity.FileRecord
	FileByID(ctx context.Context, id uuid.UUID) (entity.FileRecord, error)
	Insert(ctx context.Context, file entity.FileRecord) error
	Remove(ctx context.Context, id uuid.UUID) (entity.FileRecord, error)
}

type BlobRepository interface {
	SaveBlob(ctx context.Context, blob entity.Blob) error
	BlobByFileID(ctx context.Context, fileID uuid.UUID) (entity.Blob, error)
	DeleteBlob(ctx context.Context, fileID uuid.UUID) error
	DeleteBlobsOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type Events interface {
	FileUploaded(ctx context.Context, file entity.FileRecord)
	FileDeleted(ctx context.Context, file entity.FileRecord)
}

type Service struct {
	mu            sync.Mutex
	files         FileRepository
	blobs         BlobRepository
	events        Events
	uploadLatency time.Duration
	blobTTL       time.Duration
}

func New(
	files FileRepository,
	blobs BlobRepository,
	events Events,
	uploadLatency time.Duration,
	blobTTL time.Duration,
) *Service {
	return &Service{
		files:         files,
		blobs:         blobs,
		events:        events,
		uploadLatency: uploadLatency,
		blobTTL:       blobTTL,
	}
}

func (s *Service) RoleConfig(role entity.Role) entity.RoleConfig {
	return entity.GetRoleConfig(role)
}

// Folders lists the role's folders in declaration order with their file counts
// and total sizes.
func (s *Service) Folders(ctx context.Context, role entity.Role) []entity.FolderSummary {
	files := s.files.ListFiles(ctx, role)
	folders := entity.GetRoleConfig(role).ResolvedFolders()

	res := make([]entity.FolderSummary, 0, len(folders))

	for _, folder := range folders {
		summary := entity.FolderSummary{Folder: folder}

		for _, f := range FilesInFolder(files, folder) {
			summary.FileCount++
			summary.TotalSize += f.Size
		}

		res = append(res, summary)
	}

	return res
}

func (s *Service) ResolveFolder(role entity.Role, slug string) (entity.Folder, error) {
	return entity.GetRoleConfig(role).ResolveFolder(slug)
}

// ListFiles returns the role's files in insertion order.
func (s *Service) ListFiles(ctx context.Context, role entity.Role) []entity.FileRecord {
	return s.files.ListFiles(ctx, role)
}

// FolderFiles lists the folder's files, then applies the search and sort of filter.
func (s *Service) FolderFiles(ctx context.Context, folder entity.Folder, filter entity.FilesFilter) ([]entity.FileRecord, error) {
	if err := ValidateFilesFilter(filter); err != nil {
		return nil, err
	}

	files := FilesInFolder(s.files.ListFiles(ctx, folder.Role), folder)

	return ApplyFilesFilter(files, filter), nil
}

// FilesInFolder keeps the files whose folder id equals the folder's id.
func FilesInFolder(files []entity.FileRecord, folder entity.Folder) []entity.FileRecord {
	res := make([]entity.FileRecord, 0, len(files))

	for _, f := range files {
		if f.Role == folder.Role && f.FolderID == folder.ID {
			res = append(res, f)
		}
	}

	return res
}

func ApplyFilesFilter(files []entity.FileRecord, filter entity.FilesFilter) []entity.FileRecord {
	res := files

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		res = make([]entity.FileRecord, 0, len(files))

		for _, f := range files {
			if strings.Contains(strings.ToLower(f.Name), q) {
				res = append(res, f)
			}
		}
	} else {
		res = slices.Clone(res)
	}

	if filter.SortBy == "" {
		return res
	}

	slices.SortStableFunc(res, func(a, b entity.FileRecord) int {
		var c int

		switch filter.SortBy {
		case entity.SortByName:
			c = cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case entity.SortByUploadedAt:
			c = a.UploadedAt.Compare(b.UploadedAt)
		case entity.SortBySize:
			c = cmp.Compare(a.Size, b.Size)
		}

		if filter.OrderBy == entity.DESC {
			return -c
		}

		return c
	})

	return res
}

// Upload validates the candidate, waits the configured latency and only then
// commits the record. A cancelled context leaves the registry untouched.
func (s *Service) Upload(ctx context.Context, user entity.User, folder entity.Folder, c Candidate) (entity.FileRecord, error) {
	if user.Role != folder.Role {
		return entity.FileRecord{}, fmt.Errorf("%w: role %s cannot upload to %s", entity.ErrForbidden, user.Role, folder.Path)
	}

	if err := ValidateUpload(c, folder); err != nil {
		return entity.FileRecord{}, err
	}

	if err := wait(ctx, s.uploadLatency); err != nil {
		return entity.FileRecord{}, fmt.Errorf("upload cancelled: %w", err)
	}

	data, err := readContent(c, folder)
	if err != nil {
		return entity.FileRecord{}, err
	}

	size := c.Size
	if c.Content != nil {
		size = int64(len(data))
	}

	id, err := uuid.NewV4()
	if err != nil {
		return entity.FileRecord{}, fmt.Errorf("generate file id: %w", err)
	}

	now := time.Now()
	file := entity.FileRecord{
		ID:         id,
		Name:       c.Name,
		Type:       FileType(c.Name),
		Size:       size,
		UploadedAt: now,
		UploadedBy: user.Name,
		Role:       folder.Role,
		FolderID:   folder.ID,
		URL:        "blob:" + id.String(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return entity.FileRecord{}, fmt.Errorf("upload cancelled: %w", err)
	}

	if err := s.blobs.SaveBlob(ctx, entity.Blob{FileID: id, Name: c.Name, Data: data, CreatedAt: now}); err != nil {
		return entity.FileRecord{}, fmt.Errorf("save blob: %w", err)
	}

	if err := s.files.Insert(ctx, file); err != nil {
		_ = s.blobs.DeleteBlob(ctx, id)
		return entity.FileRecord{}, fmt.Errorf("insert file: %w", err)
	}

	s.events.FileUploaded(ctx, file)

	slog.InfoContext(ctx, fmt.Sprintf("file %s uploaded to %s (%s)", file.Name, folder.Path, FormatFileSize(file.Size)))

	return file, nil
}

func readContent(c Candidate, folder entity.Folder) ([]byte, error) {
	if c.Content == nil {
		return nil, nil
	}

	limit := folder.MaxFileSizeBytes()

	var buf bytes.Buffer

	n, err := io.Copy(&buf, io.LimitReader(c.Content, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read file content: %w", err)
	}

	if n > limit {
		return nil, fmt.Errorf("%w: max %dMB", entity.ErrTooLarge, folder.MaxFileSize)
	}

	return buf.Bytes(), nil
}

// Remove deletes a file of the folder. Files of other roles or folders are
// reported as not found.
func (s *Service) Remove(ctx context.Context, folder entity.Folder, id uuid.UUID) (entity.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.ownedFile(ctx, folder, id)
	if err != nil {
		return entity.FileRecord{}, err
	}

	removed, err := s.files.Remove(ctx, file.ID)
	if err != nil {
		return entity.FileRecord{}, err
	}

	if err := s.blobs.DeleteBlob(ctx, id); err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("delete blob %s: %s", id, err))
	}

	s.events.FileDeleted(ctx, removed)

	slog.InfoContext(ctx, fmt.Sprintf("file %s removed from %s", removed.Name, folder.Path))

	return removed, nil
}

// Content returns the stored bytes of an uploaded file of the folder.
func (s *Service) Content(ctx context.Context, folder entity.Folder, id uuid.UUID) (entity.Blob, error) {
	if _, err := s.ownedFile(ctx, folder, id); err != nil {
		return entity.Blob{}, err
	}

	return s.blobs.BlobByFileID(ctx, id)
}

func (s *Service) ownedFile(ctx context.Context, folder entity.Folder, id uuid.UUID) (entity.FileRecord, error) {
	file, err := s.files.FileByID(ctx, id)
	if err != nil {
		return entity.FileRecord{}, err
	}

	if file.Role != folder.Role || file.FolderID != folder.ID {
		return entity.FileRecord{}, fmt.Errorf("%w: %s in %s", entity.ErrFileNotFound, id, folder.Path)
	}

	return file, nil
}

// Dashboard computes the stats of the role from the current registry.
func (s *Service) Dashboard(ctx context.Context, role entity.Role) entity.DashboardStats {
	files := s.files.ListFiles(ctx, role)

	recent := slices.Clone(files)
	slices.SortStableFunc(recent, func(a, b entity.FileRecord) int {
		return b.UploadedAt.Compare(a.UploadedAt)
	})

	if len(recent) > recentUploadsLimit {
		recent = recent[:recentUploadsLimit]
	}

	return entity.DashboardStats{
		TotalFiles:    len(files),
		TotalFolders:  len(entity.GetRoleConfig(role).Folders),
		StorageUsedMB: StorageUsedMB(files),
		RecentUploads: recent,
	}
}

// ReleaseExpiredBlobs drops content older than the blob TTL. Records stay.
func (s *Service) ReleaseExpiredBlobs(ctx context.Context) error {
	n, err := s.blobs.DeleteBlobsOlderThan(ctx, time.Now().Add(-s.blobTTL))
	if err != nil {
		return fmt.Errorf("delete expired blobs: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, fmt.Sprintf("released %d expired blobs", n))
	}

	return nil
}
