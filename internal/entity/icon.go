package entity

import "strings"

type Icon string

const (
	IconSearch          Icon = "search"
	IconBookOpen        Icon = "book-open"
	IconGraduationCap   Icon = "graduation-cap"
	IconFileText        Icon = "file-text"
	IconClipboard       Icon = "clipboard"
	IconBarChart        Icon = "bar-chart"
	IconMail            Icon = "mail"
	IconDollarSign      Icon = "dollar-sign"
	IconCalendar        Icon = "calendar"
	IconTrendingUp      Icon = "trending-up"
	IconShield          Icon = "shield"
	IconBuilding        Icon = "building"
	IconPackage         Icon = "package"
	IconShoppingCart    Icon = "shopping-cart"
	IconUsers           Icon = "users"
	IconUserCheck       Icon = "user-check"
	IconHeart           Icon = "heart"
	IconHandshake       Icon = "handshake"
	IconFileSpreadsheet Icon = "file-spreadsheet"
	IconPresentation    Icon = "presentation"
	IconImage           Icon = "image"
	IconArchive         Icon = "archive"
	IconFile            Icon = "file"
)

var fileTypeIcons = map[string]Icon{
	"pdf":  IconFileText,
	"doc":  IconFileText,
	"docx": IconFileText,
	"xlsx": IconFileSpreadsheet,
	"xls":  IconFileSpreadsheet,
	"ppt":  IconPresentation,
	"pptx": IconPresentation,
	"jpg":  IconImage,
	"jpeg": IconImage,
	"png":  IconImage,
	"gif":  IconImage,
	"zip":  IconArchive,
	"rar":  IconArchive,
}

// FileTypeIcon returns the icon of a file type given without the leading dot.
func FileTypeIcon(fileType string) Icon {
	icon, ok := fileTypeIcons[strings.ToLower(fileType)]
	if !ok {
		return IconFile
	}

	return icon
}
