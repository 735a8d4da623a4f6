// cmd/tools/catalog-loader/main.go
//
// Validates catalog JSON files against their schemas and upserts them into
// the Postgres catalog tables used by the worker manager at startup.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	"github.com/xeipuuv/gojsonschema"

	"talentmatch-workers/internal/models"
)

var roleSchema = map[string]interface{}{
	"type": "array",
	"items": map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"name", "category", "requiredSkills", "experience"},
		"properties": map[string]interface{}{
			"name":            map[string]interface{}{"type": "string", "minLength": 1},
			"category":        map[string]interface{}{"type": "string", "minLength": 1},
			"requiredSkills":  map[string]interface{}{"type": "array", "minItems": 1, "items": map[string]interface{}{"type": "string"}},
			"preferredSkills": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
			"experience": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"minYears"},
				"properties": map[string]interface{}{
					"minYears": map[string]interface{}{"type": "number", "minimum": 0},
					"maxYears": map[string]interface{}{"type": "number", "minimum": 0},
				},
			},
			"salaries":    map[string]interface{}{"type": "object"},
			"demandScore": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 100},
		},
	},
}

var boostSchema = map[string]interface{}{
	"type": "array",
	"items": map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"skill", "percentMin", "percentMax"},
		"properties": map[string]interface{}{
			"skill":       map[string]interface{}{"type": "string", "minLength": 1},
			"percentMin":  map[string]interface{}{"type": "number", "minimum": 0},
			"percentMax":  map[string]interface{}{"type": "number", "minimum": 0},
			"usdMin":      map[string]interface{}{"type": "integer", "minimum": 0},
			"usdMax":      map[string]interface{}{"type": "integer", "minimum": 0},
			"category":    map[string]interface{}{"type": "string"},
			"demandLevel": map[string]interface{}{"type": "string"},
		},
	},
}

var aliasSchema = map[string]interface{}{
	"type": "array",
	"items": map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"canonical", "synonyms"},
		"properties": map[string]interface{}{
			"canonical": map[string]interface{}{"type": "string", "minLength": 1},
			"synonyms":  map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		},
	},
}

func main() {
	rolesPath := flag.String("roles", "", "Path to role archetypes JSON file")
	boostsPath := flag.String("boosts", "", "Path to salary boost skills JSON file")
	aliasesPath := flag.String("aliases", "", "Path to skill alias groups JSON file")
	dsn := flag.String("dsn", os.Getenv("CATALOG_DATABASE_URL"), "Postgres connection string")
	validateOnly := flag.Bool("validate-only", false, "Validate files without writing to the database")
	flag.Parse()

	if *rolesPath == "" && *boostsPath == "" && *aliasesPath == "" {
		fmt.Println("Nothing to do: pass at least one of -roles, -boosts, -aliases.")
		flag.Usage()
		os.Exit(1)
	}

	var (
		roles   []models.RoleArchetype
		boosts  []models.SalaryBoostSkill
		aliases []models.SkillAliasGroup
	)

	if *rolesPath != "" {
		if err := loadAndValidate(*rolesPath, roleSchema, &roles); err != nil {
			fail("roles file %s: %v", *rolesPath, err)
		}
		fmt.Printf("Validated %d role archetypes\n", len(roles))
	}
	if *boostsPath != "" {
		if err := loadAndValidate(*boostsPath, boostSchema, &boosts); err != nil {
			fail("boosts file %s: %v", *boostsPath, err)
		}
		fmt.Printf("Validated %d salary boost skills\n", len(boosts))
	}
	if *aliasesPath != "" {
		if err := loadAndValidate(*aliasesPath, aliasSchema, &aliases); err != nil {
			fail("aliases file %s: %v", *aliasesPath, err)
		}
		fmt.Printf("Validated %d alias groups\n", len(aliases))
	}

	if *validateOnly {
		fmt.Println("Validation passed.")
		return
	}

	if *dsn == "" {
		fail("no -dsn given and CATALOG_DATABASE_URL is unset")
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		fail("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		fail("ping database: %v", err)
	}

	if len(roles) > 0 {
		if err := upsertRoles(ctx, db, roles); err != nil {
			fail("upsert roles: %v", err)
		}
		fmt.Printf("Upserted %d role archetypes\n", len(roles))
	}
	if len(boosts) > 0 {
		if err := upsertBoosts(ctx, db, boosts); err != nil {
			fail("upsert boosts: %v", err)
		}
		fmt.Printf("Upserted %d salary boost skills\n", len(boosts))
	}
	if len(aliases) > 0 {
		if err := upsertAliases(ctx, db, aliases); err != nil {
			fail("upsert aliases: %v", err)
		}
		fmt.Printf("Upserted %d alias groups\n", len(aliases))
	}
}

func loadAndValidate(path string, schema map[string]interface{}, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		for _, desc := range result.Errors() {
			fmt.Printf("  - %s\n", desc)
		}
		return fmt.Errorf("%d schema violations", len(result.Errors()))
	}

	return json.Unmarshal(data, out)
}

func upsertRoles(ctx context.Context, db *sql.DB, roles []models.RoleArchetype) error {
	const query = `
		INSERT INTO role_archetypes
			(name, category, required_skills, preferred_skills, min_years, max_years, salaries, demand_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO UPDATE SET
			category = EXCLUDED.category,
			required_skills = EXCLUDED.required_skills,
			preferred_skills = EXCLUDED.preferred_skills,
			min_years = EXCLUDED.min_years,
			max_years = EXCLUDED.max_years,
			salaries = EXCLUDED.salaries,
			demand_score = EXCLUDED.demand_score`

	for _, r := range roles {
		salaries, err := json.Marshal(r.Salaries)
		if err != nil {
			return fmt.Errorf("marshal salaries for %q: %w", r.Name, err)
		}
		_, err = db.ExecContext(ctx, query,
			r.Name, r.Category,
			pq.Array(r.RequiredSkills), pq.Array(r.PreferredSkills),
			r.Experience.MinYears, r.Experience.MaxYears,
			salaries, r.DemandScore,
		)
		if err != nil {
			return fmt.Errorf("role %q: %w", r.Name, err)
		}
	}
	return nil
}

func upsertBoosts(ctx context.Context, db *sql.DB, boosts []models.SalaryBoostSkill) error {
	const query = `
		INSERT INTO salary_boost_skills
			(skill, percent_min, percent_max, usd_min, usd_max, category, demand_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (skill) DO UPDATE SET
			percent_min = EXCLUDED.percent_min,
			percent_max = EXCLUDED.percent_max,
			usd_min = EXCLUDED.usd_min,
			usd_max = EXCLUDED.usd_max,
			category = EXCLUDED.category,
			demand_level = EXCLUDED.demand_level`

	for _, b := range boosts {
		_, err := db.ExecContext(ctx, query,
			b.Skill, b.PercentMin, b.PercentMax,
			b.USDMin, b.USDMax, b.Category, b.DemandLevel,
		)
		if err != nil {
			return fmt.Errorf("boost %q: %w", b.Skill, err)
		}
	}
	return nil
}

func upsertAliases(ctx context.Context, db *sql.DB, aliases []models.SkillAliasGroup) error {
	const query = `
		INSERT INTO skill_alias_groups (canonical, synonyms)
		VALUES ($1, $2)
		ON CONFLICT (canonical) DO UPDATE SET
			synonyms = EXCLUDED.synonyms`

	for _, g := range aliases {
		if _, err := db.ExecContext(ctx, query, g.Canonical, pq.Array(g.Synonyms)); err != nil {
			return fmt.Errorf("alias group %q: %w", g.Canonical, err)
		}
	}
	return nil
}

func fail(format string, args ...interface{}) {
	fmt.Printf("Error: "+format+"\n", args...)
	os.Exit(1)
}
