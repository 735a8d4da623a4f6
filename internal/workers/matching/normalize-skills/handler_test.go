// internal/workers/matching/normalize-skills/handler_test.go
package normalizeskills

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch-workers/internal/common/logger"
	"talentmatch-workers/internal/match/skills"
)

func newTestHandler() *Handler {
	return NewHandler(LoadConfig(), skills.Default(), logger.NewNoOpLogger())
}

func rawSkills(entries ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(entries))
	for i, e := range entries {
		out[i] = json.RawMessage(e)
	}
	return out
}

func TestExecute_MixedShapes(t *testing.T) {
	h := newTestHandler()

	input := &Input{
		CandidateID: "cand-1",
		Skills: rawSkills(
			`"React"`,
			`{"skill": "Node.js", "score": 85, "verified": true}`,
			`{"name": "PostgreSQL"}`,
		),
	}

	out, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out.NormalizedSkills, 3)
	assert.Equal(t, "cand-1", out.CandidateID)

	names := make(map[string]bool)
	for _, s := range out.NormalizedSkills {
		names[s.Name] = true
	}
	assert.True(t, names["react"])
	assert.True(t, names["node.js"])
	assert.True(t, names["postgresql"])

	for _, s := range out.NormalizedSkills {
		if s.Name == "node.js" {
			assert.True(t, s.Verified)
			assert.Equal(t, 85, s.VerificationScore)
		}
	}
}

func TestExecute_SynonymsCollapse(t *testing.T) {
	h := newTestHandler()

	input := &Input{
		Skills: rawSkills(`"JS"`, `"JavaScript"`, `"ecmascript"`),
	}

	out, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out.NormalizedSkills, 1)
	assert.Equal(t, "javascript", out.NormalizedSkills[0].Name)
}

func TestExecute_VerifiedEntryWinsOnCollision(t *testing.T) {
	h := newTestHandler()

	input := &Input{
		Skills: rawSkills(
			`"python"`,
			`{"skill": "Python", "score": 92, "verified": true}`,
		),
	}

	out, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out.NormalizedSkills, 1)
	assert.True(t, out.NormalizedSkills[0].Verified)
	assert.Equal(t, 92, out.NormalizedSkills[0].VerificationScore)
}

func TestExecute_HigherScoreWinsAmongVerified(t *testing.T) {
	h := newTestHandler()

	input := &Input{
		Skills: rawSkills(
			`{"skill": "Docker", "score": 60, "verified": true}`,
			`{"skill": "docker", "score": 88, "verified": true}`,
		),
	}

	out, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out.NormalizedSkills, 1)
	assert.Equal(t, 88, out.NormalizedSkills[0].VerificationScore)
}

func TestExecute_DropsEmptyAndMalformed(t *testing.T) {
	h := newTestHandler()

	input := &Input{
		Skills: rawSkills(`""`, `"   "`, `null`, `"Git"`),
	}

	out, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out.NormalizedSkills, 1)
	assert.Equal(t, "git", out.NormalizedSkills[0].Name)
	assert.Equal(t, 3, out.DroppedCount)
}

func TestExecute_ExpansionsIncludeSynonyms(t *testing.T) {
	h := newTestHandler()

	out, err := h.Execute(context.Background(), &Input{Skills: rawSkills(`"JS"`)})
	require.NoError(t, err)

	expansion, ok := out.Expansions["javascript"]
	require.True(t, ok)
	assert.Equal(t, "javascript", expansion[0])
	assert.Contains(t, expansion, "js")
}

func TestExecute_OutputSortedByName(t *testing.T) {
	h := newTestHandler()

	out, err := h.Execute(context.Background(), &Input{
		Skills: rawSkills(`"TypeScript"`, `"AWS"`, `"React"`),
	})
	require.NoError(t, err)
	require.Len(t, out.NormalizedSkills, 3)
	for i := 1; i < len(out.NormalizedSkills); i++ {
		assert.Less(t, out.NormalizedSkills[i-1].Name, out.NormalizedSkills[i].Name)
	}
}

func TestExecute_TooManyEntries(t *testing.T) {
	h := NewHandler(&Config{MaxSkills: 2}, skills.Default(), logger.NewNoOpLogger())

	_, err := h.Execute(context.Background(), &Input{
		Skills: rawSkills(`"a"`, `"b"`, `"c"`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many skill entries")
}
