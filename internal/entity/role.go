package entity

type Role string

const (
	RoleDosen       Role = "dosen"
	RoleTendik      Role = "tendik"
	RoleWakilDekan1 Role = "wakil-dekan-1"
	RoleWakilDekan2 Role = "wakil-dekan-2"
	RoleWakilDekan3 Role = "wakil-dekan-3"
)

const (
	DefaultRole       = RoleDosen
	RoutePrefixFolder = "dokumen"
)

// Roles lists every role in declaration order.
var Roles = []Role{RoleDosen, RoleTendik, RoleWakilDekan1, RoleWakilDekan2, RoleWakilDekan3}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDosen, RoleTendik, RoleWakilDekan1, RoleWakilDekan2, RoleWakilDekan3:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}

func (r Role) DisplayName() string {
	switch r {
	case RoleDosen:
		return "Dosen"
	case RoleTendik:
		return "Tenaga Kependidikan"
	case RoleWakilDekan1:
		return "Wakil Dekan Bidang Akademik"
	case RoleWakilDekan2:
		return "Wakil Dekan Bidang Umum & Keuangan"
	case RoleWakilDekan3:
		return "Wakil Dekan Bidang Kemahasiswaan & Alumni"
	default:
		return string(r)
	}
}

// HomePath is the dashboard route of the role.
func (r Role) HomePath() string {
	return "/" + string(r)
}

// FoldersPath is the folder listing route of the role.
func (r Role) FoldersPath() string {
	return r.HomePath() + "/" + RoutePrefixFolder
}

type Permission string

const (
	PermissionRead   Permission = "read"
	PermissionWrite  Permission = "write"
	PermissionUpload Permission = "upload"
	PermissionDelete Permission = "delete"
)

type Grant struct {
	Resource string       `json:"resource"`
	Actions  []Permission `json:"actions"`
}
