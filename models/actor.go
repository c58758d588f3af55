package models

// Actor is the authenticated principal on whose behalf a core operation runs.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) Is(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
