package entity

// Role ids are fixed by the seed so tokens can carry them without a lookup.
const (
	RoleIDAdmin   = 1
	RoleIDDoctor  = 2
	RoleIDPatient = 3
	RoleIDStaff   = 4
)

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleStaff   = "staff"
)

type Role struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// IsDoctor reports whether the user may manage a doctor schedule and profile.
func (u *User) IsDoctor() bool {
	return u.RoleID == RoleIDDoctor
}
