package service

import (
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count in base-1024 units with at most two decimals.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := 0
	div := int64(1)

	for bytes >= div*1024 && i < len(sizeUnits)-1 {
		div *= 1024
		i++
	}

	return decimal.NewFromInt(bytes).Div(decimal.NewFromInt(div)).Round(2).String() + " " + sizeUnits[i]
}

// StorageUsedMB sums the sizes in megabytes, rounded to one decimal.
func StorageUsedMB(files []entity.FileRecord) decimal.Decimal {
	var total int64

	for _, f := range files {
		total += f.Size
	}

	return decimal.NewFromInt(total).Div(decimal.NewFromInt(entity.BytesPerMB)).Round(1)
}
