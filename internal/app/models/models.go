package models

// Role defines the user role
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleAdmin     Role = "admin"
	RoleAssistant Role = "assistant"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin, RoleAssistant:
		return true
	}
	return false
}

// IsStaff reports whether r may use the admin API
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleTeacher
}

// StaffRoles lists the roles allowed on /admin routes
var StaffRoles = []Role{RoleAdmin, RoleTeacher}

// Gender of a registered user
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether g is male or female
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}
