package entity

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleEmpleado  = "empleado"
	RoleDeveloper = "developer"
)

// User usuario de sesión. Para el rol empleado, ID coincide con Employee.ID.
type User struct {
	ID           string
	Usuario      string // nombre de acceso
	PasswordHash string // bcrypt hash, nunca en claro después de sembrar
	Role         string
}

// ValidRole informa si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmpleado, RoleDeveloper:
		return true
	}
	return false
}
