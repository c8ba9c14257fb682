package domain

// Role is one of the closed set of user roles.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// roleHierarchy maps each role to the roles it directly includes. The table
// is static and cycle-free; Satisfies walks it transitively, so a new role
// with several inherited roles only needs a new entry here.
var roleHierarchy = map[Role][]Role{
	RoleUser:  {},
	RoleAdmin: {RoleUser},
}

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r Role) bool {
	_, ok := roleHierarchy[r]
	return ok
}

// Satisfies reports whether holding held grants the privileges of required,
// either directly or through the inheritance table.
func Satisfies(held, required Role) bool {
	if held == required {
		return true
	}
	seen := map[Role]bool{held: true}
	queue := append([]Role(nil), roleHierarchy[held]...)
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		if r == required {
			return true
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		queue = append(queue, roleHierarchy[r]...)
	}
	return false
}

// AnySatisfies applies OR semantics across a user's role set.
func AnySatisfies(held []Role, required Role) bool {
	for _, r := range held {
		if Satisfies(r, required) {
			return true
		}
	}
	return false
}
