package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goalJSON struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Deadline string  `json:"deadline"`
}

func TestGoalsListCmd(t *testing.T) {
	out, _, err := executeCmd(t, "goals", "list", "-o", "json")
	require.NoError(t, err)

	var list []goalJSON
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Reduce Transport Emissions", list[0].Title)
	assert.NotEmpty(t, list[0].ID)
}

func TestGoalsAddCmd(t *testing.T) {
	t.Run("appends goal", func(t *testing.T) {
		out, _, err := executeCmd(t, "goals", "add", "--title", "Electrify the fleet",
			"--target", "40", "--deadline", "2026-12-31", "--current", "10", "-o", "json")
		require.NoError(t, err)

		var list []goalJSON
		require.NoError(t, json.Unmarshal([]byte(out), &list))
		require.Len(t, list, 3)
		assert.Equal(t, "Electrify the fleet", list[2].Title)
		assert.InDelta(t, 10, list[2].Current, 1e-9)
		assert.Contains(t, list[2].Deadline, "2026-12-31")
	})

	t.Run("missing title", func(t *testing.T) {
		_, _, err := executeCmd(t, "goals", "add", "--target", "40", "--deadline", "2026-12-31")
		require.Error(t, err)
	})
}

func TestGoalsTemplatesCmd(t *testing.T) {
	out, _, err := executeCmd(t, "goals", "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "sbti-target")
	assert.Contains(t, out, "60 months")
}

func TestGoalsApplyCmd(t *testing.T) {
	out, _, err := executeCmd(t, "goals", "apply", "sbti-target")
	require.NoError(t, err)
	assert.Contains(t, out, `Goal "Science-Based Target (SBTi)" created, due 2029-03-01`)

	_, _, err = executeCmd(t, "goals", "apply", "moonshot")
	require.Error(t, err)
}

func TestGoalsReductionCmd(t *testing.T) {
	t.Run("from product total", func(t *testing.T) {
		out, _, err := executeCmd(t, "goals", "reduction", "--product", "coffee",
			"--target", "30", "--months", "12", "-o", "json")
		require.NoError(t, err)

		var plan struct {
			CurrentEmissions float64 `json:"currentEmissions"`
			TargetEmissions  float64 `json:"targetEmissions"`
			MonthlyReduction float64 `json:"monthlyReduction"`
			ProgressPercent  float64 `json:"progressPercent"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &plan))
		assert.InDelta(t, 5750, plan.CurrentEmissions, 1e-9)
		assert.InDelta(t, 4025, plan.TargetEmissions, 1e-6)
		assert.InDelta(t, 143.75, plan.MonthlyReduction, 1e-6)
		assert.InDelta(t, 60, plan.ProgressPercent, 1e-9)
	})

	t.Run("explicit baseline table", func(t *testing.T) {
		out, _, err := executeCmd(t, "goals", "reduction", "--current", "2t", "--target", "50", "--months", "10")
		require.NoError(t, err)
		assert.Contains(t, out, "2,000 kg CO₂")
		assert.Contains(t, out, "over 10 months")
	})

	t.Run("out of range", func(t *testing.T) {
		_, _, err := executeCmd(t, "goals", "reduction", "--target", "120")
		require.Error(t, err)
		_, _, err = executeCmd(t, "goals", "reduction", "--months", "61")
		require.Error(t, err)
	})
}
