package service

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

const unknownFileType = "unknown"

// Candidate describes a file offered for upload. Content is never inspected.
type Candidate struct {
	Name    string
	Size    int64
	Content io.Reader
}

// FileExtension returns the dot-prefixed, lower-cased text after the final dot.
// A name without a dot is treated as all extension, as in ".report".
func FileExtension(name string) string {
	return "." + strings.ToLower(name[strings.LastIndex(name, ".")+1:])
}

// FileType is the extension without its dot, or "unknown" when the name has none.
func FileType(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return unknownFileType
	}

	return strings.ToLower(name[i+1:])
}

// ValidateUpload checks the size ceiling first and the extension allow-list second.
func ValidateUpload(c Candidate, folder entity.Folder) error {
	if c.Size < 0 {
		return fmt.Errorf("%w: negative file size %d", entity.ErrIncorrectRequestBody, c.Size)
	}

	if c.Size > folder.MaxFileSizeBytes() {
		return fmt.Errorf("%w: max %dMB", entity.ErrTooLarge, folder.MaxFileSize)
	}

	if !slices.Contains(folder.AllowedFileTypes, FileExtension(c.Name)) {
		return fmt.Errorf("%w: only %s", entity.ErrDisallowedType, strings.Join(folder.AllowedFileTypes, ", "))
	}

	return nil
}

// ValidateFilesFilter accepts an empty filter. An order without a sort field is
// ignored but must still be a known direction.
func ValidateFilesFilter(filter entity.FilesFilter) error {
	if filter.OrderBy != "" && !filter.OrderBy.IsValid() {
		return fmt.Errorf("%w: invalid orderBy param: %s", entity.ErrIncorrectRequestBody, filter.OrderBy)
	}

	if filter.SortBy == "" {
		return nil
	}

	if !filter.SortBy.IsValid() {
		return fmt.Errorf("%w: invalid sortBy param: %s", entity.ErrIncorrectRequestBody, filter.SortBy)
	}

	if !filter.OrderBy.IsValid() {
		return fmt.Errorf("%w: invalid orderBy param: %s", entity.ErrIncorrectRequestBody, filter.OrderBy)
	}

	return nil
}
