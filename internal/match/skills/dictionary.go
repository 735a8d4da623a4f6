// internal/match/skills/dictionary.go
package skills

import (
	"strings"
	"sync"

	"talentmatch-workers/internal/models"
)

// Dictionary resolves raw skill spellings to canonical names via alias
// groups. It is immutable after construction and safe for concurrent use.
type Dictionary struct {
	byAlias  map[string]string   // lowered alias -> canonical
	synonyms map[string][]string // canonical -> lowered synonyms (canonical excluded)
}

// NewDictionary builds a dictionary from alias groups. Canonical names are
// unique; a synonym that appears under two groups stays with the
// first-registered group. Registration order is the tie-break.
func NewDictionary(groups []models.SkillAliasGroup) *Dictionary {
	d := &Dictionary{
		byAlias:  make(map[string]string),
		synonyms: make(map[string][]string),
	}

	for _, g := range groups {
		canonical := normalize(g.Canonical)
		if canonical == "" {
			continue
		}
		if _, taken := d.byAlias[canonical]; taken {
			continue
		}
		d.byAlias[canonical] = canonical

		var kept []string
		for _, syn := range g.Synonyms {
			s := normalize(syn)
			if s == "" || s == canonical {
				continue
			}
			if _, taken := d.byAlias[s]; taken {
				continue
			}
			d.byAlias[s] = canonical
			kept = append(kept, s)
		}
		d.synonyms[canonical] = kept
	}

	return d
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the dictionary built from the compiled-in alias groups.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		defaultDict = NewDictionary(DefaultAliasGroups())
	})
	return defaultDict
}

// Canonicalize maps a raw skill string to its canonical name. Unknown skills
// are canonical under their own lowered, trimmed spelling. Empty input yields
// the empty string.
func (d *Dictionary) Canonicalize(raw string) string {
	s := normalize(raw)
	if s == "" {
		return ""
	}
	if canonical, ok := d.byAlias[s]; ok {
		return canonical
	}
	return s
}

// ExpandSynonyms returns the full token set for a raw skill: the canonical
// name first, then every synonym in its group. An unknown skill expands to
// just itself; empty input expands to nothing.
func (d *Dictionary) ExpandSynonyms(raw string) []string {
	s := normalize(raw)
	if s == "" {
		return nil
	}
	canonical := d.Canonicalize(s)
	syns, ok := d.synonyms[canonical]
	if !ok {
		return []string{canonical}
	}
	out := make([]string, 0, len(syns)+1)
	out = append(out, canonical)
	out = append(out, syns...)
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
