// internal/match/skills/aliases.go
package skills

import "talentmatch-workers/internal/models"

// DefaultAliasGroups is the compiled-in skill vocabulary. The catalog store
// can replace it with rows from skill_alias_groups; the shape and tie-break
// rules are identical either way.
func DefaultAliasGroups() []models.SkillAliasGroup {
	return []models.SkillAliasGroup{
		{Canonical: "javascript", Synonyms: []string{"js", "ecmascript", "es6", "vanilla js"}},
		{Canonical: "typescript", Synonyms: []string{"ts"}},
		{Canonical: "python", Synonyms: []string{"py", "python3"}},
		{Canonical: "golang", Synonyms: []string{"go", "go lang"}},
		{Canonical: "java", Synonyms: []string{"core java", "java se"}},
		{Canonical: "c++", Synonyms: []string{"cpp", "cplusplus"}},
		{Canonical: "c#", Synonyms: []string{"csharp", "c sharp"}},
		{Canonical: "ruby", Synonyms: []string{"ruby on rails", "rails", "ror"}},
		{Canonical: "php", Synonyms: []string{"php7", "php8"}},
		{Canonical: "react", Synonyms: []string{"reactjs", "react.js"}},
		{Canonical: "angular", Synonyms: []string{"angularjs", "angular.js", "angular2+"}},
		{Canonical: "vue", Synonyms: []string{"vuejs", "vue.js"}},
		{Canonical: "node.js", Synonyms: []string{"nodejs", "node"}},
		{Canonical: "express", Synonyms: []string{"expressjs", "express.js"}},
		{Canonical: "next.js", Synonyms: []string{"nextjs"}},
		{Canonical: "django", Synonyms: []string{"django rest framework", "drf"}},
		{Canonical: "flask", Synonyms: []string{}},
		{Canonical: "spring", Synonyms: []string{"spring boot", "springboot"}},
		{Canonical: "sql", Synonyms: []string{"structured query language"}},
		{Canonical: "postgresql", Synonyms: []string{"postgres", "psql", "pgsql"}},
		{Canonical: "mysql", Synonyms: []string{"my sql", "mariadb"}},
		{Canonical: "mongodb", Synonyms: []string{"mongo", "mongo db"}},
		{Canonical: "redis", Synonyms: []string{"redis cache"}},
		{Canonical: "elasticsearch", Synonyms: []string{"elastic search", "elastic"}},
		{Canonical: "kafka", Synonyms: []string{"apache kafka"}},
		{Canonical: "rabbitmq", Synonyms: []string{"rabbit mq", "amqp"}},
		{Canonical: "graphql", Synonyms: []string{"graph ql"}},
		{Canonical: "rest api", Synonyms: []string{"rest", "restful", "restful api", "rest apis"}},
		{Canonical: "grpc", Synonyms: []string{"grpc-go"}},
		{Canonical: "html", Synonyms: []string{"html5"}},
		{Canonical: "css", Synonyms: []string{"css3", "scss", "sass"}},
		{Canonical: "tailwind", Synonyms: []string{"tailwindcss", "tailwind css"}},
		{Canonical: "docker", Synonyms: []string{"docker compose", "containers", "container platform"}},
		{Canonical: "kubernetes", Synonyms: []string{"k8s", "kube", "container orchestration"}},
		{Canonical: "terraform", Synonyms: []string{"iac", "infrastructure as code"}},
		{Canonical: "aws", Synonyms: []string{"amazon web services", "ec2", "s3", "lambda"}},
		{Canonical: "gcp", Synonyms: []string{"google cloud", "google cloud platform"}},
		{Canonical: "azure", Synonyms: []string{"microsoft azure"}},
		{Canonical: "linux", Synonyms: []string{"unix", "bash", "shell scripting"}},
		{Canonical: "git", Synonyms: []string{"github", "gitlab", "version control"}},
		{Canonical: "ci/cd", Synonyms: []string{"cicd", "jenkins", "github actions", "continuous integration"}},
		{Canonical: "machine learning", Synonyms: []string{"ml", "deep learning", "neural networks"}},
		{Canonical: "tensorflow", Synonyms: []string{"tf"}},
		{Canonical: "pytorch", Synonyms: []string{"torch"}},
		{Canonical: "pandas", Synonyms: []string{}},
		{Canonical: "numpy", Synonyms: []string{}},
		{Canonical: "data analysis", Synonyms: []string{"data analytics", "analytics"}},
		{Canonical: "nlp", Synonyms: []string{"natural language processing"}},
		{Canonical: "react native", Synonyms: []string{}},
		{Canonical: "flutter", Synonyms: []string{"dart"}},
		{Canonical: "swift", Synonyms: []string{"swiftui"}},
		{Canonical: "kotlin", Synonyms: []string{}},
		{Canonical: "android", Synonyms: []string{"android development"}},
		{Canonical: "ios", Synonyms: []string{"ios development"}},
		{Canonical: "figma", Synonyms: []string{}},
		{Canonical: "ui/ux", Synonyms: []string{"ui", "ux", "user experience", "user interface"}},
		{Canonical: "agile", Synonyms: []string{"scrum", "kanban"}},
		{Canonical: "testing", Synonyms: []string{"unit testing", "tdd", "test driven development"}},
		{Canonical: "selenium", Synonyms: []string{"selenium webdriver"}},
		{Canonical: "cypress", Synonyms: []string{}},
		{Canonical: "microservices", Synonyms: []string{"microservice architecture"}},
		{Canonical: "system design", Synonyms: []string{"distributed systems"}},
		{Canonical: "devops", Synonyms: []string{"site reliability", "sre"}},
		{Canonical: "prometheus", Synonyms: []string{"grafana", "monitoring"}},
		{Canonical: "excel", Synonyms: []string{"ms excel", "microsoft excel", "spreadsheets"}},
		{Canonical: "power bi", Synonyms: []string{"powerbi"}},
		{Canonical: "tableau", Synonyms: []string{}},
	}
}
