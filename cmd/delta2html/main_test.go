package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/deltahtml-go"
)

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() { deltahtml.SetLogger(nil) })
	ctx := context.WithValue(context.Background(), envKey{}, newEnv())
	return newApp().Run(ctx, append([]string{"delta2html"}, args...))
}

func TestApp_BadConfigReturnsError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(src, []byte(`[{"insert":"a\n"}]`), 0o644))

	var err error
	require.NotPanics(t, func() {
		err = runApp(t, "--config", filepath.Join(dir, "missing.yaml"), "convert", src)
	})
	assert.ErrorContains(t, err, "unable to prepare configuration")

	level := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(level, []byte("logging:\n  level: bogus\n"), 0o644))
	require.NotPanics(t, func() {
		err = runApp(t, "--config", level, "convert", src)
	})
	assert.ErrorContains(t, err, "unknown logging level")
}

func TestApp_Convert(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.json")
	dst := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(src, []byte(`{"ops":[{"insert":"a"},{"insert":"\n","attributes":{"list":"bullet"}}]}`), 0o644))

	require.NoError(t, runApp(t, "convert", "--validate", src, dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>a</li></ul>", string(data))
}
