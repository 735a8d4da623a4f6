// Package catalog holds the static reference data the matching engine scores
// against: role archetypes, salary-boost skills, and skill alias groups.
// A Store is immutable after construction and safe for concurrent readers.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"talentmatch-workers/internal/match/skills"
	"talentmatch-workers/internal/models"
)

type Store struct {
	roles       []models.RoleArchetype
	rolesByName map[string]models.RoleArchetype
	boosts      []models.SalaryBoostSkill
	aliases     []models.SkillAliasGroup
	dict        *skills.Dictionary
}

// NewStore builds an immutable store from raw catalog data. Role names must
// be unique (case-insensitive); alias-group duplicates resolve first-wins
// inside the dictionary.
func NewStore(roles []models.RoleArchetype, boosts []models.SalaryBoostSkill, aliases []models.SkillAliasGroup) (*Store, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("catalog requires at least one role archetype")
	}

	byName := make(map[string]models.RoleArchetype, len(roles))
	for _, r := range roles {
		if r.Name == "" {
			return nil, fmt.Errorf("role archetype with empty name")
		}
		if len(r.RequiredSkills) == 0 {
			return nil, fmt.Errorf("role archetype %q has no required skills", r.Name)
		}
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if _, dup := byName[key]; dup {
			return nil, fmt.Errorf("duplicate role archetype %q", r.Name)
		}
		byName[key] = r
	}

	var dict *skills.Dictionary
	if len(aliases) > 0 {
		dict = skills.NewDictionary(aliases)
	} else {
		dict = skills.Default()
	}

	sorted := make([]models.RoleArchetype, len(roles))
	copy(sorted, roles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	return &Store{
		roles:       sorted,
		rolesByName: byName,
		boosts:      boosts,
		aliases:     aliases,
		dict:        dict,
	}, nil
}

// Builtin returns a store backed by the compiled-in catalog data.
func Builtin() *Store {
	s, err := NewStore(DefaultRoleArchetypes(), DefaultSalaryBoosts(), skills.DefaultAliasGroups())
	if err != nil {
		// Compiled-in data is validated by tests; failing here means the
		// binary itself is broken.
		panic(fmt.Sprintf("builtin catalog invalid: %v", err))
	}
	return s
}

// Roles returns every role archetype sorted by name.
func (s *Store) Roles() []models.RoleArchetype {
	out := make([]models.RoleArchetype, len(s.roles))
	copy(out, s.roles)
	return out
}

// RoleByName looks up one archetype case-insensitively.
func (s *Store) RoleByName(name string) (models.RoleArchetype, bool) {
	r, ok := s.rolesByName[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// SalaryBoosts returns the salary-boost reference table.
func (s *Store) SalaryBoosts() []models.SalaryBoostSkill {
	out := make([]models.SalaryBoostSkill, len(s.boosts))
	copy(out, s.boosts)
	return out
}

// Dictionary returns the skill dictionary derived from the loaded alias
// groups. Never nil.
func (s *Store) Dictionary() *skills.Dictionary {
	return s.dict
}

// AliasGroups returns the raw alias groups the dictionary was built from.
func (s *Store) AliasGroups() []models.SkillAliasGroup {
	out := make([]models.SkillAliasGroup, len(s.aliases))
	copy(out, s.aliases)
	return out
}
