// internal/match/ranking/portal.go
package ranking

import (
	"regexp"
	"strings"
)

// Aggregator platforms whose name at the front of a title marks a portal
// listing rather than a concrete opening.
var platformPrefixes = []string{
	"internshala",
	"naukri",
	"indeed",
	"linkedin",
	"monster",
	"glassdoor",
	"upwork",
	"freelancer",
	"shine",
	"timesjobs",
	"hirect",
	"wellfound",
	"angellist",
}

var genericTitleRe = regexp.MustCompile(`\b(careers?|jobs?|openings?|vacanc(?:y|ies)|hiring|recruitment|opportunit(?:y|ies)|walk-?in)\b`)

var roleNounRe = regexp.MustCompile(`\b(engineer|developer|programmer|manager|analyst|designer|scientist|architect|consultant|administrator|specialist|lead|intern|executive|officer|writer|tester|recruiter|accountant|marketer)\b`)

// IsPortalListing reports whether a job title looks like an aggregator-style
// portal entry ("Acme Careers", "Naukri - Software Jobs") instead of a
// substantive posting. The heuristic is deliberately blunt: a
// platform-prefixed title is flagged even when it names a role
// ("Internshala Program Manager"), a known false-positive risk that stays
// until an acceptable rate is agreed.
func IsPortalListing(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return false
	}

	for _, platform := range platformPrefixes {
		if strings.HasPrefix(t, platform) {
			return true
		}
	}

	if genericTitleRe.MatchString(t) && !roleNounRe.MatchString(t) {
		return true
	}

	return false
}
