// pkg/registry/defaults.go
package registry

func objectSchema(required []string, props map[string]interface{}) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Default returns the registry for the matching task types as shipped. Tools
// write this out and workflows are authored against it.
func Default() *ActivityRegistry {
	return &ActivityRegistry{
		Version: "1.0.0",
		Activities: []Activity{
			{
				ID:                   "normalize-skills",
				DisplayName:          "Normalize Skills",
				Description:          "Canonicalizes and de-duplicates raw candidate skill records",
				Category:             "matching",
				Version:              "1.0.0",
				TaskType:             "normalize-skills",
				ImplementationStatus: "completed",
				InputSchema: objectSchema([]string{"skills"}, map[string]interface{}{
					"candidateId": map[string]interface{}{"type": "string"},
					"skills":      map[string]interface{}{"type": "array"},
				}),
				OutputSchema: objectSchema([]string{"normalizedSkills"}, map[string]interface{}{
					"normalizedSkills": map[string]interface{}{"type": "array"},
					"expansions":       map[string]interface{}{"type": "object"},
					"droppedCount":     map[string]interface{}{"type": "integer"},
				}),
				ErrorCodes: []string{"PARSE_ERROR", "INVALID_INPUT", "SCHEMA_VALIDATION_FAILED"},
				Timeout:    "10s",
				Retries:    0,
				Workflows:  []string{"candidate-ingestion"},
				Tags:       []string{"matching", "skills"},
			},
			{
				ID:                   "predict-role",
				DisplayName:          "Predict Role",
				Description:          "Scores a candidate against the role catalog and picks the best fits",
				Category:             "matching",
				Version:              "1.0.0",
				TaskType:             "predict-role",
				ImplementationStatus: "completed",
				InputSchema: objectSchema(nil, map[string]interface{}{
					"candidateId":      map[string]interface{}{"type": "string"},
					"candidateProfile": map[string]interface{}{"type": "object"},
					"suggestedRoles":   map[string]interface{}{"type": "array"},
				}),
				OutputSchema: objectSchema([]string{"primary"}, map[string]interface{}{
					"primary":           map[string]interface{}{"type": "object"},
					"alternatives":      map[string]interface{}{"type": "array"},
					"suggestionApplied": map[string]interface{}{"type": "boolean"},
				}),
				ErrorCodes: []string{"PARSE_ERROR", "INVALID_INPUT", "ROLE_NOT_FOUND", "PREDICTION_FAILED"},
				Timeout:    "15s",
				Retries:    2,
				Workflows:  []string{"candidate-ingestion", "career-guidance"},
				Tags:       []string{"matching", "roles"},
			},
			{
				ID:                   "analyze-skill-gaps",
				DisplayName:          "Analyze Skill Gaps",
				Description:          "Compares a candidate against a target role and prices the missing skills",
				Category:             "matching",
				Version:              "1.0.0",
				TaskType:             "analyze-skill-gaps",
				ImplementationStatus: "completed",
				InputSchema: objectSchema([]string{"targetRole"}, map[string]interface{}{
					"candidateId":      map[string]interface{}{"type": "string"},
					"candidateProfile": map[string]interface{}{"type": "object"},
					"targetRole":       map[string]interface{}{"type": "string"},
				}),
				OutputSchema: objectSchema([]string{"analysis"}, map[string]interface{}{
					"analysis": map[string]interface{}{"type": "object"},
				}),
				ErrorCodes: []string{"PARSE_ERROR", "INVALID_INPUT", "ROLE_NOT_FOUND", "GAP_ANALYSIS_FAILED"},
				Timeout:    "15s",
				Retries:    2,
				Workflows:  []string{"career-guidance"},
				Tags:       []string{"matching", "gaps"},
			},
			{
				ID:                   "rank-jobs",
				DisplayName:          "Rank Jobs",
				Description:          "Ranks a job pool for a candidate with the hybrid classical/embedding score",
				Category:             "matching",
				Version:              "1.0.0",
				TaskType:             "rank-jobs",
				ImplementationStatus: "completed",
				InputSchema: objectSchema(nil, map[string]interface{}{
					"candidateId":      map[string]interface{}{"type": "string"},
					"candidateProfile": map[string]interface{}{"type": "object"},
					"jobs":             map[string]interface{}{"type": "array"},
					"limit":            map[string]interface{}{"type": "integer"},
					"minMatchScore":    map[string]interface{}{"type": "number"},
					"preferences":      map[string]interface{}{"type": "object"},
				}),
				OutputSchema: objectSchema([]string{"matches"}, map[string]interface{}{
					"matches":       map[string]interface{}{"type": "array"},
					"poolSize":      map[string]interface{}{"type": "integer"},
					"embeddingUsed": map[string]interface{}{"type": "boolean"},
				}),
				ErrorCodes: []string{"PARSE_ERROR", "INVALID_INPUT", "SEARCH_QUERY_FAILED", "RANKING_FAILED"},
				Timeout:    "30s",
				Retries:    2,
				Workflows:  []string{"job-recommendation"},
				Tags:       []string{"matching", "ranking"},
			},
			{
				ID:                   "query-job-postings",
				DisplayName:          "Query Job Postings",
				Description:          "Fetches job postings from the search index with skill and preference filters",
				Category:             "data-access",
				Version:              "1.0.0",
				TaskType:             "query-job-postings",
				ImplementationStatus: "completed",
				InputSchema: objectSchema(nil, map[string]interface{}{
					"indexName":        map[string]interface{}{"type": "string"},
					"skills":           map[string]interface{}{"type": "array"},
					"keywords":         map[string]interface{}{"type": "string"},
					"employmentType":   map[string]interface{}{"type": "string"},
					"remoteOnly":       map[string]interface{}{"type": "boolean"},
					"minSalary":        map[string]interface{}{"type": "integer"},
					"postedWithinDays": map[string]interface{}{"type": "integer"},
					"pagination":       map[string]interface{}{"type": "object"},
				}),
				OutputSchema: objectSchema([]string{"jobs"}, map[string]interface{}{
					"jobs":      map[string]interface{}{"type": "array"},
					"totalHits": map[string]interface{}{"type": "integer"},
					"took":      map[string]interface{}{"type": "integer"},
				}),
				ErrorCodes: []string{"PARSE_ERROR", "SEARCH_QUERY_FAILED", "SEARCH_TIMEOUT", "INDEX_NOT_FOUND"},
				Timeout:    "30s",
				Retries:    3,
				Workflows:  []string{"job-recommendation"},
				Tags:       []string{"data-access", "search"},
			},
		},
	}
}
