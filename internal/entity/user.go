package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

type User struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        Role    `json:"role"`
	Avatar      string  `json:"avatar,omitempty"`
	Permissions []Grant `json:"permissions"`
}

func (u User) Can(resource string, p Permission) bool {
	for _, g := range u.Permissions {
		if g.Resource == resource && slices.Contains(g.Actions, p) {
			return true
		}
	}

	return false
}

type DashboardStats struct {
	TotalFiles    int             `json:"totalFiles"`
	TotalFolders  int             `json:"totalFolders"`
	StorageUsedMB decimal.Decimal `json:"storageUsed"`
	RecentUploads []FileRecord    `json:"recentUploads"`
}
