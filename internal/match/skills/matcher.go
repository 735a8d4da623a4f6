// internal/match/skills/matcher.go
package skills

import (
	"strings"
)

// Matches reports whether two skill strings denote the same competency.
// Checks run in precedence order and short-circuit on the first hit:
//
//  1. exact case-insensitive equality after trimming
//  2. canonical equality
//  3. synonym-set overlap
//  4. word-boundary substring in either direction
//
// The word-boundary check is load-bearing: plain substring containment made
// "java" match "javascript". Empty input never matches anything.
func (d *Dictionary) Matches(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	if d.Canonicalize(na) == d.Canonicalize(nb) {
		return true
	}

	if tokensOverlap(d.ExpandSynonyms(na), d.ExpandSynonyms(nb)) {
		return true
	}

	return ContainsWord(na, nb) || ContainsWord(nb, na)
}

func tokensOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// isTokenChar reports whether c can appear inside a skill token. Skill names
// carry punctuation a plain \w-style boundary misses ("node.js", "c++", "c#",
// "objective-c"), so those characters never act as boundaries: "js" is not a
// whole word inside "node.js" any more than "java" is inside "javascript".
func isTokenChar(c byte) bool {
	switch c {
	case '.', '+', '#', '-', '_':
		return true
	}
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// wordIndexes returns the start offsets of every whole-word occurrence of
// term in text. A hit counts only when neither flanking character is a token
// character.
func wordIndexes(text, term string) []int {
	var hits []int
	for from := 0; from+len(term) <= len(text); {
		i := strings.Index(text[from:], term)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(term)
		if (start == 0 || !isTokenChar(text[start-1])) &&
			(end == len(text) || !isTokenChar(text[end])) {
			hits = append(hits, start)
		}
		from = end
	}
	return hits
}

// ContainsWord reports whether text contains term as a whole word. Both
// arguments are lowercased before matching.
func ContainsWord(text, term string) bool {
	text, term = strings.ToLower(text), strings.ToLower(term)
	if text == "" || term == "" {
		return false
	}
	return len(wordIndexes(text, term)) > 0
}

// CountWordOccurrences counts whole-word occurrences of term in text. When
// the strict scan finds nothing, it falls back to a loose substring count so
// spellings fused into larger tokens still register. Counting is therefore
// deliberately looser than Matches, which never falls back.
func CountWordOccurrences(text, term string) int {
	text, term = strings.ToLower(text), strings.ToLower(term)
	if text == "" || term == "" {
		return 0
	}
	if hits := wordIndexes(text, term); len(hits) > 0 {
		return len(hits)
	}
	return strings.Count(text, term)
}

// FirstWordIndex returns the byte offset of the first whole-word occurrence
// of term in text, falling back to the first loose occurrence, or -1 when
// absent.
func FirstWordIndex(text, term string) int {
	text, term = strings.ToLower(text), strings.ToLower(term)
	if text == "" || term == "" {
		return -1
	}
	if hits := wordIndexes(text, term); len(hits) > 0 {
		return hits[0]
	}
	return strings.Index(text, term)
}
