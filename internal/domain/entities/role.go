package entities

import "strings"

// Role representa o papel de um usuário na plataforma
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
)

// DefaultRole é usado quando o provedor de identidade não informa papel algum
const DefaultRole = RolePlayer

// Permission representa uma permissão específica
type Permission string

const (
	// Player permissions
	PermissionPlayerRead  Permission = "players.read"
	PermissionPlayerWrite Permission = "players.write"

	// Coach permissions
	PermissionCoachWrite       Permission = "coaches.write"
	PermissionSavedPlayerWrite Permission = "saved_players.write"
	PermissionNoteWrite        Permission = "notes.write"

	// Catalog permissions (programs e tournaments)
	PermissionCatalogWrite Permission = "catalog.write"

	// Billing permissions
	PermissionBillingManage Permission = "billing.manage"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionPlayerRead,
		PermissionCatalogWrite,
		PermissionBillingManage,
	},
	RolePlayer: {
		PermissionPlayerRead,
		PermissionPlayerWrite,
		PermissionBillingManage,
	},
	RoleCoach: {
		PermissionPlayerRead,
		PermissionCoachWrite,
		PermissionSavedPlayerWrite,
		PermissionNoteWrite,
		PermissionBillingManage,
	},
}

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}

// ParseRole converte uma string em Role, retornando false para valores desconhecidos
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if !role.IsValid() {
		return "", false
	}
	return role, true
}

// RoleFromMetadata resolve o papel a partir dos metadados do provedor de identidade.
// O campo "role" tem prioridade sobre o legado "userType"; sem nenhum dos dois vale DefaultRole.
func RoleFromMetadata(role, userType string) Role {
	if r, ok := ParseRole(role); ok {
		return r
	}
	// userType pode ser gravado pelo próprio usuário: nunca concede admin
	if r, ok := ParseRole(userType); ok && r != RoleAdmin {
		return r
	}
	return DefaultRole
}
