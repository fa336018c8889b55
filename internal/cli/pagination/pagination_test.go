package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/emissions"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "valid default", params: *NewParams()},
		{name: "valid window", params: Params{Limit: 10, Offset: 20, SortOrder: SortOrderDesc}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: ErrInvalidLimit},
		{name: "limit too large", params: Params{Limit: MaxLimit + 1}, wantErr: ErrInvalidLimit},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: ErrInvalidOffset},
		{name: "bad order", params: Params{SortOrder: "up"}, wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{"empty uses defaults", "", DefaultSortField, DefaultSortOrder, nil},
		{"field only", "emissions", "emissions", "asc", nil},
		{"field desc", "emissions:desc", "emissions", "desc", nil},
		{"order case insensitive", "stage:ASC", "stage", "asc", nil},
		{"whitespace trimmed", " share : desc ", "share", "desc", nil},
		{"too many parts", "a:b:c", "", "", ErrInvalidSortFormat},
		{"empty field", ":desc", "", "", ErrEmptySortField},
		{"invalid order", "stage:sideways", "", "", ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{"no window", Params{}, []int{1, 2, 3, 4, 5}},
		{"limit", Params{Limit: 2}, []int{1, 2}},
		{"offset", Params{Offset: 3}, []int{4, 5}},
		{"offset and limit", Params{Offset: 1, Limit: 3}, []int{2, 3, 4}},
		{"limit past end", Params{Offset: 4, Limit: 10}, []int{5}},
		{"offset past end", Params{Offset: 9}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}
}

func TestMeta_Footer(t *testing.T) {
	assert.Empty(t, NewMeta(Params{}, 5, 5).Footer("stages"))

	meta := NewMeta(Params{Offset: 1, Limit: 2}, 2, 5)
	assert.True(t, meta.HasMore)
	assert.Equal(t, "Showing 2-3 of 5 stages", meta.Footer("stages"))

	assert.Equal(t, "No stages in range (5 total)", NewMeta(Params{Offset: 9}, 0, 5).Footer("stages"))
}

func stageRows() []emissions.StageBreakdown {
	return emissions.Breakdown([]emissions.Record{
		{Stage: "Farming", Emissions: 1200},
		{Stage: "Transport", Emissions: 2500},
		{Stage: "Packaging", Emissions: 800},
		{Stage: "Processing", Emissions: 1250},
	}, classify.DefaultThresholds())
}

func stageNames(rows []emissions.StageBreakdown) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Stage
	}
	return out
}

func TestStageSorter(t *testing.T) {
	sorter := NewStageSorter()
	rows := stageRows()

	t.Run("EmissionsDesc", func(t *testing.T) {
		sorted := sorter.Sort(rows, "emissions", SortOrderDesc)
		assert.Equal(t, []string{"Transport", "Processing", "Farming", "Packaging"}, stageNames(sorted))
	})

	t.Run("StageAsc", func(t *testing.T) {
		sorted := sorter.Sort(rows, "stage", SortOrderAsc)
		assert.Equal(t, []string{"Farming", "Packaging", "Processing", "Transport"}, stageNames(sorted))
	})

	t.Run("DoesNotModifyInput", func(t *testing.T) {
		_ = sorter.Sort(rows, "emissions", SortOrderDesc)
		assert.Equal(t, "Farming", rows[0].Stage)
	})

	t.Run("InvalidField", func(t *testing.T) {
		assert.Equal(t, rows, sorter.Sort(rows, "color", SortOrderAsc))
		require.ErrorIs(t, sorter.CheckField("color"), ErrInvalidSortField)
		require.NoError(t, sorter.CheckField(""))
		require.NoError(t, sorter.CheckField("share"))
	})

	t.Run("GetValidFields", func(t *testing.T) {
		assert.Equal(t, []string{"emissions", "ratio", "share", "stage", "tier"}, sorter.GetValidFields())
	})
}

func TestComparisonSorter_DescKeepsTieOrder(t *testing.T) {
	ranked := emissions.Rank([]emissions.ComparisonRecord{
		{Product: "A", TotalEmissions: 100},
		{Product: "B", TotalEmissions: 100},
		{Product: "C", TotalEmissions: 300},
	})

	sorted := NewComparisonSorter().Sort(ranked, "total", SortOrderDesc)
	require.Len(t, sorted, 3)
	assert.Equal(t, "C", sorted[0].Product)
	assert.Equal(t, "A", sorted[1].Product)
	assert.Equal(t, "B", sorted[2].Product)
}
