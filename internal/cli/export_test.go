package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVCmd(t *testing.T) {
	t.Run("product emissions to dir", func(t *testing.T) {
		dir := t.TempDir()
		out, _, err := executeCmd(t, "export", "csv", "--product", "coffee", "--dir", dir)
		require.NoError(t, err)

		path := filepath.Join(dir, "coffee_emissions_2024-03-01.csv")
		assert.Contains(t, out, "Exported "+path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "stage,emissions,recommendation\nProduction,1200,")
	})

	t.Run("comparison to stdout", func(t *testing.T) {
		out, _, err := executeCmd(t, "export", "csv", "--kind", "comparison", "--stdout")
		require.NoError(t, err)
		assert.Equal(t,
			"product,totalEmissions\nCoffee,5750\nMango,4200\nCocoa,6100\nAvocado,4980", out)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := executeCmd(t, "export", "csv", "--kind", "invoices", "--stdout")
		require.Error(t, err)
	})
}

func TestExportReportCmd(t *testing.T) {
	t.Run("summary to stdout without terminal", func(t *testing.T) {
		out, _, err := executeCmd(t, "export", "report", "--product", "mango", "--stdout")
		require.NoError(t, err)
		assert.Contains(t, out, "CarbonTrace Emission Report")
		assert.Contains(t, out, "Product: Mango")
		assert.Contains(t, out, "3/1/2024")
	})

	t.Run("executive report file", func(t *testing.T) {
		dir := t.TempDir()
		_, _, err := executeCmd(t, "export", "report", "-t", "executive", "--product", "coffee", "--dir", dir)
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "executive_summary_coffee_2024-03-01.txt"))
		require.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, _, err := executeCmd(t, "export", "report", "-t", "haiku", "--stdout")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "haiku")
	})
}
