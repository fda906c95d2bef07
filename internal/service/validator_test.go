package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/service"
)

func TestValidateUpload(t *testing.T) {
	t.Parallel()

	folder := entity.Folder{
		ID:               "laporan",
		AllowedFileTypes: []string{".pdf", ".xlsx"},
		MaxFileSize:      10,
	}

	tests := []struct {
		name      string
		candidate service.Candidate
		wantErr   error
	}{
		{name: "exactly at limit", candidate: service.Candidate{Name: "a.pdf", Size: 10 * entity.BytesPerMB}},
		{name: "one byte over", candidate: service.Candidate{Name: "a.pdf", Size: 10*entity.BytesPerMB + 1}, wantErr: entity.ErrTooLarge},
		{name: "upper case extension", candidate: service.Candidate{Name: "report.PDF", Size: 1}},
		{name: "no extension", candidate: service.Candidate{Name: "report", Size: 1}, wantErr: entity.ErrDisallowedType},
		{name: "trailing dot", candidate: service.Candidate{Name: "report.", Size: 1}, wantErr: entity.ErrDisallowedType},
		{name: "disallowed", candidate: service.Candidate{Name: "a.exe", Size: 1}, wantErr: entity.ErrDisallowedType},
		{name: "size wins over type", candidate: service.Candidate{Name: "a.exe", Size: 11 * entity.BytesPerMB}, wantErr: entity.ErrTooLarge},
		{name: "empty file", candidate: service.Candidate{Name: "empty.xlsx"}},
		{name: "negative size", candidate: service.Candidate{Name: "a.pdf", Size: -1}, wantErr: entity.ErrIncorrectRequestBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateUpload(tt.candidate, folder)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateUpload_Messages(t *testing.T) {
	t.Parallel()

	folder := entity.Folder{AllowedFileTypes: []string{".pdf", ".docx"}, MaxFileSize: 5}

	err := service.ValidateUpload(service.Candidate{Name: "a.pdf", Size: 6 * entity.BytesPerMB}, folder)
	require.ErrorContains(t, err, "5MB")

	err = service.ValidateUpload(service.Candidate{Name: "a.png", Size: 1}, folder)
	require.ErrorContains(t, err, ".pdf, .docx")
}

func TestFileExtension(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"slides.pptx":       ".pptx",
		"report.PDF":        ".pdf",
		"archive.tar.gz":    ".gz",
		"report":            ".report",
		"report.":           ".",
		".env":              ".env",
		"Materi Kuliah.Doc": ".doc",
	}

	for name, want := range tests {
		require.Equal(t, want, service.FileExtension(name), name)
	}
}

func TestFileType(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pdf", service.FileType("report.PDF"))
	require.Equal(t, "unknown", service.FileType("report"))
	require.Equal(t, "unknown", service.FileType("report."))
}

func TestFormatFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{500, "500 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2048576, "1.95 MB"},
		{15728640, "15 MB"},
		{18 * entity.BytesPerMB, "18 MB"},
		{3 * 1024 * entity.BytesPerMB, "3 GB"},
		{2048 * 1024 * entity.BytesPerMB, "2048 GB"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, service.FormatFileSize(tt.bytes))
	}
}
