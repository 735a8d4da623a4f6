// internal/catalog/defaults.go
package catalog

import "talentmatch-workers/internal/models"

// DefaultRoleArchetypes is the compiled-in role catalog used when no
// Postgres source is configured. Salary bands are indicative market figures,
// not offers.
func DefaultRoleArchetypes() []models.RoleArchetype {
	return []models.RoleArchetype{
		{
			Name:            "Full Stack Developer",
			Category:        "Engineering",
			RequiredSkills:  []string{"JavaScript", "React", "Node.js", "SQL", "REST API", "Git"},
			PreferredSkills: []string{"TypeScript", "Docker", "AWS", "GraphQL"},
			Experience:      models.ExperienceRange{MinYears: 1, MaxYears: 6},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 70000, Max: 140000},
				"INR": {Currency: "INR", Min: 800000, Max: 3200000},
			},
			DemandScore: 92,
		},
		{
			Name:            "Frontend Developer",
			Category:        "Engineering",
			RequiredSkills:  []string{"JavaScript", "HTML", "CSS", "React"},
			PreferredSkills: []string{"TypeScript", "Next.js", "Redux", "Figma"},
			Experience:      models.ExperienceRange{MinYears: 0, MaxYears: 5},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 60000, Max: 120000},
			},
			DemandScore: 85,
		},
		{
			Name:            "Backend Developer",
			Category:        "Engineering",
			RequiredSkills:  []string{"Node.js", "SQL", "REST API", "Git"},
			PreferredSkills: []string{"PostgreSQL", "Redis", "Docker", "Microservices"},
			Experience:      models.ExperienceRange{MinYears: 1, MaxYears: 7},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 75000, Max: 145000},
			},
			DemandScore: 88,
		},
		{
			Name:            "Data Scientist",
			Category:        "Data",
			RequiredSkills:  []string{"Python", "Machine Learning", "SQL", "Statistics"},
			PreferredSkills: []string{"TensorFlow", "PyTorch", "Pandas", "Deep Learning"},
			Experience:      models.ExperienceRange{MinYears: 2, MaxYears: 8},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 90000, Max: 165000},
			},
			DemandScore: 90,
		},
		{
			Name:            "Data Analyst",
			Category:        "Data",
			RequiredSkills:  []string{"SQL", "Excel", "Data Visualization"},
			PreferredSkills: []string{"Python", "Tableau", "Power BI"},
			Experience:      models.ExperienceRange{MinYears: 0, MaxYears: 4},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 55000, Max: 95000},
			},
			DemandScore: 78,
		},
		{
			Name:            "DevOps Engineer",
			Category:        "Infrastructure",
			RequiredSkills:  []string{"Linux", "Docker", "Kubernetes", "CI/CD"},
			PreferredSkills: []string{"AWS", "Terraform", "Ansible", "Prometheus"},
			Experience:      models.ExperienceRange{MinYears: 2, MaxYears: 9},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 95000, Max: 160000},
			},
			DemandScore: 89,
		},
		{
			Name:            "Machine Learning Engineer",
			Category:        "Data",
			RequiredSkills:  []string{"Python", "Machine Learning", "Deep Learning", "SQL"},
			PreferredSkills: []string{"TensorFlow", "PyTorch", "Kubernetes", "MLOps"},
			Experience:      models.ExperienceRange{MinYears: 2, MaxYears: 10},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 110000, Max: 185000},
			},
			DemandScore: 93,
		},
		{
			Name:            "Mobile Developer",
			Category:        "Engineering",
			RequiredSkills:  []string{"Java", "Kotlin", "Android"},
			PreferredSkills: []string{"Flutter", "React Native", "Firebase"},
			Experience:      models.ExperienceRange{MinYears: 1, MaxYears: 6},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 70000, Max: 130000},
			},
			DemandScore: 75,
		},
		{
			Name:            "QA Engineer",
			Category:        "Engineering",
			RequiredSkills:  []string{"Testing", "Selenium", "Test Automation"},
			PreferredSkills: []string{"Java", "Python", "CI/CD", "API Testing"},
			Experience:      models.ExperienceRange{MinYears: 0, MaxYears: 5},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 55000, Max: 100000},
			},
			DemandScore: 70,
		},
		{
			Name:            "Cloud Architect",
			Category:        "Infrastructure",
			RequiredSkills:  []string{"AWS", "System Design", "Networking", "Security"},
			PreferredSkills: []string{"Azure", "GCP", "Terraform", "Kubernetes"},
			Experience:      models.ExperienceRange{MinYears: 5, MaxYears: 15},
			Salaries: map[string]models.SalaryRange{
				"USD": {Currency: "USD", Min: 130000, Max: 210000},
			},
			DemandScore: 86,
		},
	}
}

// DefaultSalaryBoosts is the compiled-in salary-impact reference table used
// by the gap analyzer when a missing skill has known market data.
func DefaultSalaryBoosts() []models.SalaryBoostSkill {
	return []models.SalaryBoostSkill{
		{Skill: "Kubernetes", PercentMin: 20, PercentMax: 35, USDMin: 20000, USDMax: 40000, Category: "Infrastructure", DemandLevel: "very high"},
		{Skill: "AWS", PercentMin: 18, PercentMax: 32, USDMin: 18000, USDMax: 35000, Category: "Cloud", DemandLevel: "very high"},
		{Skill: "Machine Learning", PercentMin: 22, PercentMax: 40, USDMin: 25000, USDMax: 45000, Category: "Data", DemandLevel: "very high"},
		{Skill: "TypeScript", PercentMin: 10, PercentMax: 20, USDMin: 10000, USDMax: 20000, Category: "Language", DemandLevel: "high"},
		{Skill: "React", PercentMin: 12, PercentMax: 22, USDMin: 12000, USDMax: 22000, Category: "Frontend", DemandLevel: "high"},
		{Skill: "Node.js", PercentMin: 12, PercentMax: 20, USDMin: 12000, USDMax: 20000, Category: "Backend", DemandLevel: "high"},
		{Skill: "Docker", PercentMin: 10, PercentMax: 18, USDMin: 10000, USDMax: 18000, Category: "Infrastructure", DemandLevel: "high"},
		{Skill: "Terraform", PercentMin: 15, PercentMax: 25, USDMin: 15000, USDMax: 25000, Category: "Infrastructure", DemandLevel: "high"},
		{Skill: "GraphQL", PercentMin: 8, PercentMax: 15, USDMin: 8000, USDMax: 15000, Category: "Backend", DemandLevel: "medium"},
		{Skill: "PostgreSQL", PercentMin: 8, PercentMax: 16, USDMin: 8000, USDMax: 16000, Category: "Database", DemandLevel: "high"},
		{Skill: "Python", PercentMin: 12, PercentMax: 24, USDMin: 12000, USDMax: 24000, Category: "Language", DemandLevel: "very high"},
		{Skill: "SQL", PercentMin: 8, PercentMax: 15, USDMin: 8000, USDMax: 15000, Category: "Database", DemandLevel: "high"},
		{Skill: "Deep Learning", PercentMin: 20, PercentMax: 38, USDMin: 22000, USDMax: 42000, Category: "Data", DemandLevel: "very high"},
		{Skill: "CI/CD", PercentMin: 10, PercentMax: 18, USDMin: 10000, USDMax: 18000, Category: "Infrastructure", DemandLevel: "high"},
		{Skill: "System Design", PercentMin: 15, PercentMax: 28, USDMin: 16000, USDMax: 30000, Category: "Architecture", DemandLevel: "high"},
	}
}
