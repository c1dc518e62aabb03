package user

import "slices"

type Role string

const (
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

var roleLevels = map[Role]int{
	RoleStaff:      1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// AtLeast reports whether r carries at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	want, okMin := roleLevels[min]
	return ok && okMin && have >= want
}

// Permission names one back-office capability. The admin panel uses them to decide
// which screens to show; the router enforces the same split with role gates.
type Permission string

const (
	PermBookingsRead   Permission = "bookings:read"
	PermBookingsStatus Permission = "bookings:status"
	PermBookingsWrite  Permission = "bookings:write"
	PermVillasWrite    Permission = "villas:write"
	PermGalleryWrite   Permission = "gallery:write"
	PermUploads        Permission = "uploads"
)

var staffPermissions = []Permission{PermBookingsRead, PermBookingsStatus}

var managerPermissions = append(slices.Clone(staffPermissions),
	PermBookingsWrite, PermVillasWrite, PermGalleryWrite, PermUploads)

// Permissions lists what r may do; an unknown role may do nothing.
func (r Role) Permissions() []Permission {
	switch {
	case r.AtLeast(RoleAdmin):
		return slices.Clone(managerPermissions)
	case r.AtLeast(RoleStaff):
		return slices.Clone(staffPermissions)
	default:
		return nil
	}
}
