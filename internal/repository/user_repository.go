package repository

import (
	"context"
	"slices"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

const resourceFiles = "files"

var seedUsers = []entity.User{
	{
		ID:     "1",
		Name:   "Dr. Ahmad Wijaya, M.T.",
		Email:  "ahmad.wijaya@university.ac.id",
		Role:   entity.RoleDosen,
		Avatar: "/avatars/dosen-1.jpg",
		Permissions: []entity.Grant{{
			Resource: resourceFiles,
			Actions:  []entity.Permission{entity.PermissionRead, entity.PermissionWrite, entity.PermissionUpload},
		}},
	},
	{
		ID:     "2",
		Name:   "Siti Nurhaliza, S.Kom.",
		Email:  "siti.nurhaliza@university.ac.id",
		Role:   entity.RoleTendik,
		Avatar: "/avatars/tendik-1.jpg",
		Permissions: []entity.Grant{{
			Resource: resourceFiles,
			Actions:  []entity.Permission{entity.PermissionRead, entity.PermissionWrite, entity.PermissionUpload},
		}},
	},
	{
		ID:     "3",
		Name:   "Prof. Dr. Bambang Sutrisno, M.Sc.",
		Email:  "bambang.sutrisno@university.ac.id",
		Role:   entity.RoleWakilDekan1,
		Avatar: "/avatars/wadek-1.jpg",
		Permissions: []entity.Grant{{
			Resource: resourceFiles,
			Actions:  []entity.Permission{entity.PermissionRead, entity.PermissionWrite, entity.PermissionUpload, entity.PermissionDelete},
		}},
	},
	{
		ID:     "4",
		Name:   "Dr. Indah Sari, M.M.",
		Email:  "indah.sari@university.ac.id",
		Role:   entity.RoleWakilDekan2,
		Avatar: "/avatars/wadek-2.jpg",
		Permissions: []entity.Grant{{
			Resource: resourceFiles,
			Actions:  []entity.Permission{entity.PermissionRead, entity.PermissionWrite, entity.PermissionUpload, entity.PermissionDelete},
		}},
	},
	{
		ID:     "5",
		Name:   "Dr. Rudi Hartono, M.Pd.",
		Email:  "rudi.hartono@university.ac.id",
		Role:   entity.RoleWakilDekan3,
		Avatar: "/avatars/wadek-3.jpg",
		Permissions: []entity.Grant{{
			Resource: resourceFiles,
			Actions:  []entity.Permission{entity.PermissionRead, entity.PermissionWrite, entity.PermissionUpload, entity.PermissionDelete},
		}},
	},
}

// UserRepository is the fixed set of known accounts. It is read-only.
type UserRepository struct {
	users []entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: seedUsers,
	}
}

// UserByEmail matches the email exactly.
func (r *UserRepository) UserByEmail(_ context.Context, email string) (entity.User, error) {
	i := slices.IndexFunc(r.users, func(u entity.User) bool {
		return u.Email == email
	})
	if i < 0 {
		return entity.User{}, entity.ErrNotFound
	}

	return cloneUser(r.users[i]), nil
}

func (r *UserRepository) UserByRole(_ context.Context, role entity.Role) (entity.User, error) {
	i := slices.IndexFunc(r.users, func(u entity.User) bool {
		return u.Role == role
	})
	if i < 0 {
		return entity.User{}, entity.ErrNotFound
	}

	return cloneUser(r.users[i]), nil
}

func (r *UserRepository) Users(_ context.Context) []entity.User {
	users := make([]entity.User, 0, len(r.users))

	for _, u := range r.users {
		users = append(users, cloneUser(u))
	}

	return users
}

func cloneUser(u entity.User) entity.User {
	grants := make([]entity.Grant, len(u.Permissions))

	for i, g := range u.Permissions {
		g.Actions = slices.Clone(g.Actions)
		grants[i] = g
	}

	u.Permissions = grants

	return u
}
