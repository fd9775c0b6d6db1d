package roleset

import (
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A RoleSet is a set of role identifiers. The checker builds one fresh
// from the subject's role snapshot on every check and discards it
// afterwards; nothing is persisted. Membership tests are O(1).
type RoleSet map[string]struct{}

// NewRoleSet builds a [RoleSet] from the given roles, dropping duplicates.
func NewRoleSet(roles ...string) RoleSet {
	s := make(RoleSet, len(roles))
	s.Add(roles...)
	return s
}

// Add inserts the given roles into the set.
func (s RoleSet) Add(roles ...string) {
	for _, role := range roles {
		s[role] = struct{}{}
	}
}

// Has reports whether role is a member of the set.
func (s RoleSet) Has(role string) bool {
	_, ok := s[role]
	return ok
}

// HasAll reports whether every required role is a member of the set.
// It is vacuously true for an empty required list.
func (s RoleSet) HasAll(required ...string) bool {
	for _, role := range required {
		if !s.Has(role) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the candidates is a member of
// the set. It is false for an empty candidate list.
func (s RoleSet) HasAny(candidates ...string) bool {
	for _, role := range candidates {
		if s.Has(role) {
			return true
		}
	}
	return false
}

// Missing returns the required roles that are not members of the set,
// deduplicated and sorted.
func (s RoleSet) Missing(required ...string) []string {
	missing := lo.Filter(lo.Uniq(required), func(role string, _ int) bool {
		return !s.Has(role)
	})
	slices.Sort(missing)
	return missing
}

// Slice returns the members of the set, sorted.
func (s RoleSet) Slice() []string {
	roles := maps.Keys(s)
	slices.Sort(roles)
	return roles
}

func (s RoleSet) Len() int {
	return len(s)
}
