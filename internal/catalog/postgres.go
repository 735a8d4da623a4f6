// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"talentmatch-workers/internal/models"
)

// Raw catalog rows loaded from Postgres before Store construction.
type rawCatalog struct {
	Roles        []models.RoleArchetype  `json:"roles"`
	SalaryBoosts []models.SalaryBoostSkill `json:"salaryBoosts"`
	AliasGroups  []models.SkillAliasGroup  `json:"aliasGroups"`
}

const (
	roleArchetypesQuery = `
		SELECT name, category, required_skills, preferred_skills,
		       min_years, max_years, salaries, demand_score
		FROM role_archetypes
		ORDER BY name`

	salaryBoostsQuery = `
		SELECT skill, percent_min, percent_max, usd_min, usd_max, category, demand_level
		FROM salary_boost_skills
		ORDER BY skill`

	aliasGroupsQuery = `
		SELECT canonical, synonyms
		FROM skill_alias_groups
		ORDER BY canonical`
)

// loadFromPostgres reads the three catalog tables. Skill lists are text[]
// columns; salaries are a jsonb map keyed by currency.
func loadFromPostgres(ctx context.Context, db *sql.DB) (*rawCatalog, error) {
	raw := &rawCatalog{}

	rows, err := db.QueryContext(ctx, roleArchetypesQuery)
	if err != nil {
		return nil, fmt.Errorf("query role_archetypes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r            models.RoleArchetype
			required     pq.StringArray
			preferred    pq.StringArray
			salariesJSON []byte
		)
		if err := rows.Scan(
			&r.Name, &r.Category, &required, &preferred,
			&r.Experience.MinYears, &r.Experience.MaxYears,
			&salariesJSON, &r.DemandScore,
		); err != nil {
			return nil, fmt.Errorf("scan role_archetypes: %w", err)
		}
		r.RequiredSkills = []string(required)
		r.PreferredSkills = []string(preferred)
		if len(salariesJSON) > 0 {
			if err := json.Unmarshal(salariesJSON, &r.Salaries); err != nil {
				return nil, fmt.Errorf("decode salaries for role %q: %w", r.Name, err)
			}
		}
		raw.Roles = append(raw.Roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role_archetypes: %w", err)
	}

	boostRows, err := db.QueryContext(ctx, salaryBoostsQuery)
	if err != nil {
		return nil, fmt.Errorf("query salary_boost_skills: %w", err)
	}
	defer boostRows.Close()

	for boostRows.Next() {
		var b models.SalaryBoostSkill
		if err := boostRows.Scan(
			&b.Skill, &b.PercentMin, &b.PercentMax,
			&b.USDMin, &b.USDMax, &b.Category, &b.DemandLevel,
		); err != nil {
			return nil, fmt.Errorf("scan salary_boost_skills: %w", err)
		}
		raw.SalaryBoosts = append(raw.SalaryBoosts, b)
	}
	if err := boostRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate salary_boost_skills: %w", err)
	}

	aliasRows, err := db.QueryContext(ctx, aliasGroupsQuery)
	if err != nil {
		return nil, fmt.Errorf("query skill_alias_groups: %w", err)
	}
	defer aliasRows.Close()

	for aliasRows.Next() {
		var (
			g        models.SkillAliasGroup
			synonyms pq.StringArray
		)
		if err := aliasRows.Scan(&g.Canonical, &synonyms); err != nil {
			return nil, fmt.Errorf("scan skill_alias_groups: %w", err)
		}
		g.Synonyms = []string(synonyms)
		raw.AliasGroups = append(raw.AliasGroups, g)
	}
	if err := aliasRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skill_alias_groups: %w", err)
	}

	return raw, nil
}
