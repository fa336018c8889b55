package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitignoreContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		extra []string
		want  []string
	}{
		{name: "defaults", want: []string{"exports/", "*.log", ".env"}},
		{name: "extra entry appended", extra: []string{"reports/"}, want: []string{"exports/", "*.log", ".env", "reports/"}},
		{name: "blank and duplicate dropped", extra: []string{"", "  ", "exports/"}, want: []string{"exports/", "*.log", ".env"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			want := gitignoreHeader
			for _, w := range tt.want {
				want += w + "\n"
			}
			assert.Equal(t, want, GitignoreContent(tt.extra...))
		})
	}
}

func TestEnsureGitignore(t *testing.T) {
	t.Parallel()

	t.Run("creates file and parents once", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "sub", ProjectDirName)

		created, err := EnsureGitignore(dir)
		require.NoError(t, err)
		assert.True(t, created)

		data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, GitignoreContent(), string(data))
		assert.NotContains(t, string(data), "config.yaml")

		created, err = EnsureGitignore(dir)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("never overwrites", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		custom := "# mine\nnode_modules/\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(custom), 0o600))

		created, err := EnsureGitignore(dir, "reports/")
		require.NoError(t, err)
		assert.False(t, created)

		data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, custom, string(data))
	})

	t.Run("read-only parent", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced here")
		}
		dir := filepath.Join(t.TempDir(), "readonly")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.Chmod(dir, 0o444))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		created, err := EnsureGitignore(dir)
		require.Error(t, err)
		assert.False(t, created)
	})
}

func TestEnsureProjectGitignore_AddsRelativeExportDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		exportDir string
		want      string
	}{
		{exportDir: "", want: ""},
		{exportDir: "out/reports", want: "out/reports/"},
		{exportDir: "./carbon", want: "carbon/"},
		{exportDir: "../shared", want: ""},
		{exportDir: "/var/exports", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.exportDir, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, exportIgnore(tt.exportDir))

			cfg := Default()
			cfg.Data.ExportDir = tt.exportDir
			dir := t.TempDir()
			created, err := cfg.EnsureProjectGitignore(dir)
			require.NoError(t, err)
			require.True(t, created)

			data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
			require.NoError(t, err)
			assert.Equal(t, GitignoreContent(tt.want), string(data))
		})
	}
}
