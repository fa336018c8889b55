package offsets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/offsets"
)

func TestProjects_AllVerifiedAndPriced(t *testing.T) {
	projects := offsets.Projects()
	require.Len(t, projects, 4)
	for _, p := range projects {
		assert.True(t, p.Verified, p.Name)
		assert.Positive(t, p.PricePerTon, p.Name)
	}
}

func TestProjectByID(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "2", want: "Solar Energy Project"},
		{key: " 4 ", want: "Methane Capture Project"},
		{key: "community cookstoves", want: "Community Cookstoves"},
		{key: "9", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := offsets.ProjectByID(tt.key)
			if tt.wantErr {
				require.ErrorIs(t, err, offsets.ErrUnknownProject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}
