package entity

import (
	"fmt"
	"strings"
)

// Folder is a FolderTemplate bound to its owning role. It is never stored.
type Folder struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Path             string   `json:"path"`
	Role             Role     `json:"role"`
	AllowedFileTypes []string `json:"allowedFileTypes"`
	MaxFileSize      int      `json:"maxFileSize"`
	Description      string   `json:"description"`
	Icon             Icon     `json:"icon"`
}

// FolderSummary is a folder with the count and total size of its current files.
type FolderSummary struct {
	Folder
	FileCount int   `json:"fileCount"`
	TotalSize int64 `json:"totalSize"`
}

// MaxFileSizeBytes is the inclusive upload ceiling.
func (f Folder) MaxFileSizeBytes() int64 {
	return int64(f.MaxFileSize) * BytesPerMB
}

// FolderID lower-cases the name and joins whitespace-separated words with hyphens.
func FolderID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (t FolderTemplate) Resolve(role Role) Folder {
	id := FolderID(t.Name)

	return Folder{
		ID:               id,
		Name:             t.Name,
		Path:             fmt.Sprintf("%s/%s", role.FoldersPath(), id),
		Role:             role,
		AllowedFileTypes: t.AllowedFileTypes,
		MaxFileSize:      t.MaxFileSize,
		Description:      t.Description,
		Icon:             t.Icon,
	}
}

func (c RoleConfig) ResolvedFolders() []Folder {
	folders := make([]Folder, 0, len(c.Folders))

	for _, t := range c.Folders {
		folders = append(folders, t.Resolve(c.Role))
	}

	return folders
}

// ResolveFolder finds the first folder whose case-folded name equals the slug
// with hyphens read as spaces.
func (c RoleConfig) ResolveFolder(slug string) (Folder, error) {
	name := strings.ToLower(strings.ReplaceAll(slug, "-", " "))

	for _, t := range c.Folders {
		if strings.ToLower(t.Name) == name {
			return t.Resolve(c.Role), nil
		}
	}

	return Folder{}, fmt.Errorf("%w: %s/%s", ErrFolderNotFound, c.Role, slug)
}
