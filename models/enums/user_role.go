package enums

// UserRole 表示网关透传的调用者角色。
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// IsValid 校验角色是否为已知取值。
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}
