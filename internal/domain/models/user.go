package models

import "time"

// Role values form a closed set; anything else is rejected at
// validation time.
const (
	RoleAdmin      = "admin"
	RoleProducer   = "producer"
	RoleSupervisor = "supervisor"
	RoleArtist     = "artist"
	RoleIT         = "it"
	RoleLead       = "lead"
)

// Roles lists every valid role.
var Roles = []string{RoleAdmin, RoleProducer, RoleSupervisor, RoleArtist, RoleIT, RoleLead}

// ValidRole reports whether role is one of the closed set.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID          string    `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	PwdHash     string    `json:"-" db:"pwd_hash"`
	Role        string    `json:"role" db:"role"`
	DisplayName string    `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CanManageProjects reports whether the user may create, edit or
// delete projects.
func (u *User) CanManageProjects() bool {
	return u.Role == RoleAdmin || u.Role == RoleProducer
}

// CanManageShots reports whether the user may create, edit, delete or
// import shots and run pipeline operations.
func (u *User) CanManageShots() bool {
	return u.Role == RoleAdmin || u.Role == RoleProducer || u.Role == RoleSupervisor
}
