package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/mocks"
	"github.com/samandr77/microservices/dashboard/internal/repository"
	"github.com/samandr77/microservices/dashboard/internal/service"
)

type TestService struct {
	files  *repository.FileRepository
	blobs  *repository.BlobRepository
	events *mocks.MockEvents
	s      *service.Service
}

func NewTestService(t *testing.T, latency time.Duration) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)
	events := mocks.NewMockEvents(ctrl)

	files := repository.NewFileRepository(repository.SeedFiles()...)
	blobs := repository.NewBlobRepository()

	return &TestService{
		files:  files,
		blobs:  blobs,
		events: events,
		s:      service.New(files, blobs, events, latency, time.Minute),
	}
}

var dosen = entity.User{
	ID:    "1",
	Name:  "Dr. Ahmad Wijaya, M.T.",
	Email: "dosen@fakultas.ac.id",
	Role:  entity.RoleDosen,
}

func TestService_UploadListRemove(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, 0)
	ctx := context.Background()

	folder, err := ts.s.ResolveFolder(entity.RoleDosen, "materi-kuliah")
	r.NoError(err)

	before, err := ts.s.FolderFiles(ctx, folder, entity.FilesFilter{})
	r.NoError(err)

	ts.events.EXPECT().FileUploaded(gomock.Any(), gomock.Any())

	file, err := ts.s.Upload(ctx, dosen, folder, service.Candidate{
		Name:    "slides.pptx",
		Size:    18 * entity.BytesPerMB,
		Content: bytes.NewReader([]byte("slides")),
	})
	r.NoError(err)
	r.NotEqual(uuid.Nil, file.ID)
	r.Equal("pptx", file.Type)
	r.Equal(entity.RoleDosen, file.Role)
	r.Equal("materi-kuliah", file.FolderID)
	r.Equal(dosen.Name, file.UploadedBy)
	r.Equal("blob:"+file.ID.String(), file.URL)

	after, err := ts.s.FolderFiles(ctx, folder, entity.FilesFilter{})
	r.NoError(err)
	r.Len(after, len(before)+1)
	r.Contains(after, file)

	blob, err := ts.s.Content(ctx, folder, file.ID)
	r.NoError(err)
	r.Equal([]byte("slides"), blob.Data)

	ts.events.EXPECT().FileDeleted(gomock.Any(), file)

	removed, err := ts.s.Remove(ctx, folder, file.ID)
	r.NoError(err)
	r.Equal(file, removed)

	after, err = ts.s.FolderFiles(ctx, folder, entity.FilesFilter{})
	r.NoError(err)
	r.Equal(before, after)

	_, err = ts.s.Content(ctx, folder, file.ID)
	r.ErrorIs(err, entity.ErrNotFound)

	_, err = ts.s.Remove(ctx, folder, file.ID)
	r.ErrorIs(err, entity.ErrFileNotFound)
}

func TestService_Upload_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate service.Candidate
		wantErr   error
	}{
		{
			name:      "too large",
			candidate: service.Candidate{Name: "slides.pptx", Size: 20*entity.BytesPerMB + 1},
			wantErr:   entity.ErrTooLarge,
		},
		{
			name:      "disallowed type",
			candidate: service.Candidate{Name: "song.mp3", Size: 10},
			wantErr:   entity.ErrDisallowedType,
		},
		{
			name: "content larger than declared",
			candidate: service.Candidate{
				Name:    "notes.pdf",
				Size:    1,
				Content: bytes.NewReader(make([]byte, 20*entity.BytesPerMB+1)),
			},
			wantErr: entity.ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t, 0)
			ctx := context.Background()

			folder, err := ts.s.ResolveFolder(entity.RoleDosen, "materi-kuliah")
			r.NoError(err)

			before := ts.s.ListFiles(ctx, entity.RoleDosen)

			_, err = ts.s.Upload(ctx, dosen, folder, tt.candidate)
			r.ErrorIs(err, tt.wantErr)
			r.Equal(before, ts.s.ListFiles(ctx, entity.RoleDosen))
		})
	}
}

func TestService_Upload_StoresReadSize(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, 0)
	ctx := context.Background()

	folder, err := ts.s.ResolveFolder(entity.RoleDosen, "materi-kuliah")
	r.NoError(err)

	ts.events.EXPECT().FileUploaded(gomock.Any(), gomock.Any())

	file, err := ts.s.Upload(ctx, dosen, folder, service.Candidate{
		Name:    "notes.pdf",
		Size:    entity.BytesPerMB,
		Content: bytes.NewReader([]byte("notes")),
	})
	r.NoError(err)
	r.Equal(int64(len("notes")), file.Size)

	_, err = ts.s.Upload(ctx, dosen, folder, service.Candidate{Name: "notes.pdf", Size: -5})
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)
}

func TestService_Folders(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, 0)
	ctx := context.Background()

	folders := ts.s.Folders(ctx, entity.RoleDosen)
	r.Len(folders, 4)
	r.Equal("penelitian", folders[0].ID)
	r.Equal(1, folders[0].FileCount)
	r.Equal(int64(2048576), folders[0].TotalSize)

	folder, err := ts.s.ResolveFolder(entity.RoleDosen, "tugas-akhir")
	r.NoError(err)
	r.Zero(folders[3].FileCount)

	ts.events.EXPECT().FileUploaded(gomock.Any(), gomock.Any()).Times(2)

	for _, size := range []int{100, 250} {
		_, err = ts.s.Upload(ctx, dosen, folder, service.Candidate{
			Name:    "bab.pdf",
			Size:    int64(size),
			Content: bytes.NewReader(make([]byte, size)),
		})
		r.NoError(err)
	}

	folders = ts.s.Folders(ctx, entity.RoleDosen)
	r.Equal(folder.ID, folders[3].ID)
	r.Equal(2, folders[3].FileCount)
	r.Equal(int64(350), folders[3].TotalSize)
	r.Equal(1, folders[0].FileCount)
}

func TestService_Upload_OtherRoleFolder(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, 0)

	folder, err := ts.s.ResolveFolder(entity.RoleTendik, "keuangan")
	r.NoError(err)

	_, err = ts.s.Upload(context.Background(), dosen, folder, service.Candidate{Name: "a.pdf", Size: 1})
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_Upload_CancelledBeforeCommit(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, time.Hour)

	folder, err := ts.s.ResolveFolder(entity.RoleDosen, "materi-kuliah")
	r.NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	before := ts.s.ListFiles(context.Background(), entity.RoleDosen)

	_, err = ts.s.Upload(ctx, dosen, folder, service.Candidate{Name: "slides.pptx", Size: 10})
	r.ErrorIs(err, context.DeadlineExceeded)
	r.Equal(before, ts.s.ListFiles(context.Background(), entity.RoleDosen))
}

func TestService_Remove_OtherFolder(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, 0)
	ctx := context.Background()

	folder, err := ts.s.ResolveFolder(entity.RoleDosen, "penelitian")
	r.NoError(err)

	files, err := ts.s.FolderFiles(ctx, folder, entity.FilesFilter{})
	r.NoError(err)
	r.NotEmpty(files)

	other, err := ts.s.ResolveFolder(entity.RoleDosen, "materi-kuliah")
	r.NoError(err)

	_, err = ts.s.Remove(ctx, other, files[0].ID)
	r.ErrorIs(err, entity.ErrFileNotFound)
	r.Contains(ts.s.ListFiles(ctx, entity.RoleDosen), files[0])
}

func TestService_FolderFiles_Filter(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ctx := context.Background()

	now := time.Now()
	folder := entity.GetRoleConfig(entity.RoleDosen).ResolvedFolders()[0]

	newFile := func(name string, size int64, age time.Duration) entity.FileRecord {
		return entity.FileRecord{
			ID:         uuid.Must(uuid.NewV4()),
			Name:       name,
			Size:       size,
			UploadedAt: now.Add(-age),
			Role:       folder.Role,
			FolderID:   folder.ID,
		}
	}

	a := newFile("Bab 1.pdf", 300, time.Hour)
	b := newFile("abstrak.docx", 100, 3*time.Hour)
	c := newFile("Bab 2.pdf", 200, 2*time.Hour)
	elsewhere := newFile("Bab 3.pdf", 1, 0)
	elsewhere.FolderID = "other"

	s := service.New(repository.NewFileRepository(a, b, c, elsewhere), repository.NewBlobRepository(), nil, 0, 0)

	tests := []struct {
		name    string
		filter  entity.FilesFilter
		want    []entity.FileRecord
		wantErr error
	}{
		{name: "insertion order", filter: entity.FilesFilter{}, want: []entity.FileRecord{a, b, c}},
		{name: "search", filter: entity.FilesFilter{Query: " bab "}, want: []entity.FileRecord{a, c}},
		{
			name:   "by name",
			filter: entity.FilesFilter{SortBy: entity.SortByName, OrderBy: entity.ASC},
			want:   []entity.FileRecord{b, a, c},
		},
		{
			name:   "by size desc",
			filter: entity.FilesFilter{SortBy: entity.SortBySize, OrderBy: entity.DESC},
			want:   []entity.FileRecord{a, c, b},
		},
		{
			name:   "by upload time",
			filter: entity.FilesFilter{SortBy: entity.SortByUploadedAt, OrderBy: entity.ASC},
			want:   []entity.FileRecord{b, c, a},
		},
		{
			name:   "order without sort",
			filter: entity.FilesFilter{OrderBy: entity.DESC},
			want:   []entity.FileRecord{a, b, c},
		},
		{
			name:    "invalid order without sort",
			filter:  entity.FilesFilter{OrderBy: "sideways"},
			wantErr: entity.ErrIncorrectRequestBody,
		},
		{
			name:    "invalid sort",
			filter:  entity.FilesFilter{SortBy: "owner", OrderBy: entity.ASC},
			wantErr: entity.ErrIncorrectRequestBody,
		},
	}

	for _, tt := range tests {
		got, err := s.FolderFiles(ctx, folder, tt.filter)
		if tt.wantErr != nil {
			r.ErrorIs(err, tt.wantErr, tt.name)
			continue
		}

		r.NoError(err, tt.name)
		r.Equal(tt.want, got, tt.name)
	}
}

func TestService_Dashboard(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ctx := context.Background()

	now := time.Now()
	files := make([]entity.FileRecord, 0, 4)

	for i := range 4 {
		files = append(files, entity.FileRecord{
			ID:         uuid.Must(uuid.NewV4()),
			Name:       "f.pdf",
			Size:       entity.BytesPerMB,
			UploadedAt: now.Add(time.Duration(i) * time.Minute),
			Role:       entity.RoleTendik,
			FolderID:   "keuangan",
		})
	}

	s := service.New(repository.NewFileRepository(files...), repository.NewBlobRepository(), nil, 0, 0)

	stats := s.Dashboard(ctx, entity.RoleTendik)
	r.Equal(4, stats.TotalFiles)
	r.Equal(len(entity.GetRoleConfig(entity.RoleTendik).Folders), stats.TotalFolders)
	r.Equal("4", stats.StorageUsedMB.String())
	r.Equal([]entity.FileRecord{files[3], files[2], files[1]}, stats.RecentUploads)

	empty := s.Dashboard(ctx, entity.RoleDosen)
	r.Zero(empty.TotalFiles)
	r.Empty(empty.RecentUploads)
	r.True(empty.StorageUsedMB.IsZero())
}

func TestService_ReleaseExpiredBlobs(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ctx := context.Background()

	blobs := repository.NewBlobRepository()
	old := entity.Blob{FileID: uuid.Must(uuid.NewV4()), CreatedAt: time.Now().Add(-time.Hour)}
	fresh := entity.Blob{FileID: uuid.Must(uuid.NewV4()), CreatedAt: time.Now()}

	r.NoError(blobs.SaveBlob(ctx, old))
	r.NoError(blobs.SaveBlob(ctx, fresh))

	s := service.New(repository.NewFileRepository(), blobs, nil, 0, time.Minute)
	r.NoError(s.ReleaseExpiredBlobs(ctx))

	_, err := blobs.BlobByFileID(ctx, old.FileID)
	r.ErrorIs(err, entity.ErrBlobNotFound)

	_, err = blobs.BlobByFileID(ctx, fresh.FileID)
	r.NoError(err)
}

func TestService_ReleaseExpiredBlobs_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	blobs := mocks.NewMockBlobRepository(ctrl)
	blobs.EXPECT().DeleteBlobsOlderThan(gomock.Any(), gomock.Any()).Return(0, errors.New("boom"))

	s := service.New(repository.NewFileRepository(), blobs, nil, 0, time.Minute)
	require.Error(t, s.ReleaseExpiredBlobs(context.Background()))
}
