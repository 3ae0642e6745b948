package auth

// RoleUser is the role granted to accounts with no explicit role set.
const RoleUser = "ROLE_USER"

// NormalizeRoles flattens the dynamic role claim into an ordered set of role
// strings. The claim is either a single role string or a list of objects
// carrying an "authority" key; any other shape yields an empty set, never an
// error.
func NormalizeRoles(claim any) []string {
	switch v := claim.(type) {
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	case []any:
		roles := make([]string, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			authority, ok := obj["authority"].(string)
			if !ok || authority == "" {
				continue
			}
			roles = append(roles, authority)
		}
		return roles
	default:
		return []string{}
	}
}

// PrimaryRole returns the first role of the set, defaulting to ROLE_USER for
// accounts with no roles.
func PrimaryRole(roles []string) string {
	if len(roles) == 0 {
		return RoleUser
	}
	return roles[0]
}
