package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

const BytesPerMB = 1_048_576

// FileRecord is owned by the file registry. Role and FolderID are set once at
// creation and are the only ownership links; UploadedBy is for display.
type FileRecord struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
	Role       Role      `json:"role"`
	FolderID   string    `json:"folderId"`
	URL        string    `json:"url,omitempty"`
}

func (f FileRecord) Icon() Icon {
	return FileTypeIcon(f.Type)
}

// Blob is the transient content kept for an uploaded file.
type Blob struct {
	FileID    uuid.UUID
	Name      string
	Data      []byte
	CreatedAt time.Time
}

type FilesSortBy string

func (s FilesSortBy) String() string {
	return string(s)
}

func (s FilesSortBy) IsValid() bool {
	switch s {
	case SortByName, SortByUploadedAt, SortBySize:
		return true
	default:
		return false
	}
}

const (
	SortByName       FilesSortBy = "name"
	SortByUploadedAt FilesSortBy = "uploaded_at"
	SortBySize       FilesSortBy = "size"
)

type OrderBy string

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	default:
		return false
	}
}

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)

// FilesFilter narrows a folder listing. The zero value keeps insertion order.
type FilesFilter struct {
	Query   string
	SortBy  FilesSortBy
	OrderBy OrderBy
}
