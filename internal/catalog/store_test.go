// internal/catalog/store_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch-workers/internal/models"
)

func TestBuiltinCatalogIsValid(t *testing.T) {
	s := Builtin()

	roles := s.Roles()
	require.NotEmpty(t, roles)
	for _, r := range roles {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.RequiredSkills, "role %s", r.Name)
		assert.GreaterOrEqual(t, r.Experience.MaxYears, r.Experience.MinYears, "role %s", r.Name)
	}

	// Sorted by name for reproducible iteration.
	for i := 1; i < len(roles); i++ {
		assert.Less(t, roles[i-1].Name, roles[i].Name)
	}

	require.NotEmpty(t, s.SalaryBoosts())
	require.NotNil(t, s.Dictionary())
}

func TestRoleByName_CaseInsensitive(t *testing.T) {
	s := Builtin()

	r, ok := s.RoleByName("full stack developer")
	require.True(t, ok)
	assert.Equal(t, "Full Stack Developer", r.Name)

	r, ok = s.RoleByName("  DevOps Engineer  ")
	require.True(t, ok)
	assert.Equal(t, "DevOps Engineer", r.Name)

	_, ok = s.RoleByName("Astronaut")
	assert.False(t, ok)
}

func TestNewStore_Validation(t *testing.T) {
	valid := models.RoleArchetype{
		Name:           "Backend Developer",
		RequiredSkills: []string{"Node.js"},
	}

	tests := []struct {
		name    string
		roles   []models.RoleArchetype
		wantErr string
	}{
		{"no roles", nil, "at least one role"},
		{"empty name", []models.RoleArchetype{{RequiredSkills: []string{"Go"}}}, "empty name"},
		{"no required skills", []models.RoleArchetype{{Name: "Backend Developer"}}, "no required skills"},
		{"duplicate name", []models.RoleArchetype{valid, {Name: "backend developer", RequiredSkills: []string{"Go"}}}, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.roles, nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStoreAccessorsReturnCopies(t *testing.T) {
	s := Builtin()

	roles := s.Roles()
	roles[0].Name = "Mutated"

	again := s.Roles()
	assert.NotEqual(t, "Mutated", again[0].Name)

	boosts := s.SalaryBoosts()
	boosts[0].Skill = "Mutated"
	assert.NotEqual(t, "Mutated", s.SalaryBoosts()[0].Skill)
}

func TestNewStore_FallsBackToDefaultDictionary(t *testing.T) {
	s, err := NewStore([]models.RoleArchetype{{
		Name:           "Backend Developer",
		RequiredSkills: []string{"Node.js"},
	}}, nil, nil)
	require.NoError(t, err)

	// No alias groups supplied, so the default dictionary applies.
	assert.Equal(t, "javascript", s.Dictionary().Canonicalize("JS"))
}
