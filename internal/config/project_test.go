package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/config"
)

func TestResolveProjectDir(t *testing.T) {
	ctx := context.Background()
	t.Setenv(config.EnvProjectDir, "")

	root := t.TempDir()
	projectDir := filepath.Join(root, ".carbontrace")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(projectDir, 0o750))
	require.NoError(t, os.MkdirAll(nested, 0o750))

	assert.Equal(t, projectDir, config.ResolveProjectDir(ctx, "", nested), "walks up to the nearest .carbontrace")
	assert.Equal(t, filepath.Join(nested, ".carbontrace"), config.ResolveProjectDir(ctx, nested, root), "flag wins")
	assert.Equal(t, projectDir, config.ResolveProjectDir(ctx, projectDir, ""), "no double append")

	t.Setenv(config.EnvProjectDir, nested)
	assert.Equal(t, filepath.Join(nested, ".carbontrace"), config.ResolveProjectDir(ctx, "", root))
}

func TestResolveProjectDir_NoProject(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	assert.Empty(t, config.ResolveProjectDir(context.Background(), "", ""))
}

func TestNewWithProjectDir(t *testing.T) {
	ctx := context.Background()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvOutputFormat, "")

	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(`
data:
  path: fixtures/custom.csv
  default_product: mango
`), 0o600))

	cfg := config.NewWithProjectDir(ctx, projectDir)
	assert.Equal(t, "fixtures/custom.csv", cfg.Data.Path)
	assert.Equal(t, "mango", cfg.Data.DefaultProduct)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	assert.Equal(t, config.New().Data, config.NewWithProjectDir(ctx, "").Data)
	assert.Equal(t, config.New().Data, config.NewWithProjectDir(ctx, t.TempDir()).Data)
}

func TestNewWithProjectDir_BadOverlayFallsBack(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte("data: ["), 0o600))

	cfg := config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, "coffee", cfg.Data.DefaultProduct)
}
