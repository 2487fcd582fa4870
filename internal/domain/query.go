package domain

import "fmt"

// Scope selects whether the listed account is an organization or a user.
type Scope string

const (
	ScopeOrg  Scope = "org"
	ScopeUser Scope = "user"
)

// MaxPerPage is the largest page size the listing endpoint honours.
const MaxPerPage = 100

// Valid reports whether s is a supported scope.
func (s Scope) Valid() bool {
	return s == ScopeOrg || s == ScopeUser
}

// Plural returns the path segment of the listing endpoint for s.
func (s Scope) Plural() string {
	switch s {
	case ScopeOrg:
		return "orgs"
	case ScopeUser:
		return "users"
	}
	return ""
}

// ParseScope converts a raw command-line value into a Scope.
func ParseScope(raw string) (Scope, error) {
	s := Scope(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRequestType, raw)
	}
	return s, nil
}

// Sort values accepted by the listing endpoint.
var Sorts = []string{"created", "updated", "pushed", "full_name"}

// Direction values accepted by the listing endpoint.
var Directions = []string{"asc", "desc"}

// Query describes one listing request against an account.
// Sort and Direction are sent upstream as-is; ordering is never enforced locally.
type Query struct {
	Scope     Scope
	Identity  string
	Sort      string
	Direction string
	PerPage   int
}
