// Package authz decide qué puede hacer cada rol sobre cada recurso.
// Es una función pura: no consulta storage ni tiene side effects.
package authz

import "strings"

type Role string

const (
	RoleAdmin     Role = "Admin"
	RolePersonnel Role = "Personnel"
	RoleClient    Role = "Client"
)

// ParseRole acepta el nombre del rol sin distinguir mayúsculas.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, true
	case "personnel":
		return RolePersonnel, true
	case "client":
		return RoleClient, true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePersonnel, RoleClient:
		return true
	default:
		return false
	}
}

type Operation string

const (
	OpList   Operation = "list"
	OpRead   Operation = "read"
	OpAdd    Operation = "add"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Grant describe quién puede ejecutar una operación.
type Grant struct {
	Anyone    bool // cualquier usuario autenticado
	Roles     []Role
	AllowSelf bool // el usuario sobre sí mismo
}

type Rule map[Operation]Grant

// Principal es la identidad del usuario que hace el request.
// Se pasa explícito a cada operación de servicio.
type Principal struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

func (p Principal) Authenticated() bool {
	return strings.TrimSpace(p.ID) != "" && p.Role.Valid()
}

// CanPerform es la tabla de autorización. Un rol inválido nunca pasa.
func CanPerform(rule Rule, role Role, op Operation, isSelf bool) bool {
	if !role.Valid() {
		return false
	}
	g, ok := rule[op]
	if !ok {
		return false
	}
	if g.Anyone {
		return true
	}
	if isSelf && g.AllowSelf {
		return true
	}
	for _, r := range g.Roles {
		if r == role {
			return true
		}
	}
	return false
}

var staff = []Role{RoleAdmin, RolePersonnel}

// StaffManaged: empleados, profesiones, especies, animales, perfiles y asignaciones.
var StaffManaged = Rule{
	OpList:   {Anyone: true},
	OpRead:   {Anyone: true},
	OpAdd:    {Roles: staff},
	OpUpdate: {Roles: staff},
	OpDelete: {Roles: []Role{RoleAdmin}},
}

// UserAccounts: Client solo se ve/modifica/borra a sí mismo.
var UserAccounts = Rule{
	OpList:   {Roles: staff},
	OpRead:   {Roles: staff, AllowSelf: true},
	OpAdd:    {Roles: []Role{RoleAdmin}},
	OpUpdate: {Roles: []Role{RoleAdmin}, AllowSelf: true},
	OpDelete: {Roles: []Role{RoleAdmin}, AllowSelf: true},
}
