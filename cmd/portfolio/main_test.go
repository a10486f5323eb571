package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elenavasquez.com/internal/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProjectsList(t *testing.T) {
	out, err := run(t, "projects", "list", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "6 Projects")
	assert.Contains(t, out, "Casa Mura")
	assert.Contains(t, out, "casa-mura")
}

func TestProjectsShow(t *testing.T) {
	out, err := run(t, "projects", "show", "casa-mura", "--style", "notty", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Casa Mura")
	assert.Contains(t, out, "Outcome")
}

func TestProjectsShowUnknown(t *testing.T) {
	_, err := run(t, "projects", "show", "nope", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")
}

func TestRejectsBadLogLevel(t *testing.T) {
	_, err := run(t, "projects", "list", "--log-level", "loud")
	require.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	out, err := run(t, "export", "--out", dir, "--public", filepath.Join(t.TempDir(), "none"), "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Exported 14 pages")
	assert.FileExists(t, filepath.Join(dir, "work", "casa-mura", "index.html"))
}

func TestPublishDryRunCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!doctype html>"), 0644))

	out, err := run(t, "publish", "--dir", dir, "--bucket", "site", "--prefix", "live", "--dry-run", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Would upload 1 objects")
	assert.Contains(t, out, "s3://site/live")
}

func TestContentFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data, err := os.ReadFile(filepath.Join("..", "..", "internal", "content", "site.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(string(data), "Casa Mura", "Casa Nova", 1)), 0644))

	out, err := run(t, "projects", "list", "--content", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Casa Nova")
	assert.Contains(t, out, "casa-nova")
}

func TestProjectMarkdown(t *testing.T) {
	md := projectMarkdown(&models.Project{
		Slug:        "a",
		Title:       "A",
		Description: "Desc",
		Tags:        []string{"X", "Y"},
		Year:        "2024",
		Outcome:     "Done",
	})

	assert.True(t, strings.HasPrefix(md, "# A\n\n_X · Y_\n\n## Overview\n\nDesc\n\n"))
	assert.Contains(t, md, "## Outcome\n\nDone")
	assert.NotContains(t, md, "## Approach")
	assert.Contains(t, md, "2024 · /work/a/")
}
