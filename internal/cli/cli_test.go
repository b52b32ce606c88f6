package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeremyjsx/folio/internal/listing"
	"github.com/jeremyjsx/folio/internal/posts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `[
	{"id": 1, "slug": "go-basics", "title": "Go Basics", "excerpt": "Types and functions", "content": "# Go\n\nHello <script>alert(1)</script>", "author": "Ann", "date": "2024-01-02", "tags": ["go", "backend", "beginner", "tutorial"]},
	{"id": 2, "slug": "rust-intro", "title": "Rust Intro", "excerpt": "Ownership explained", "content": "Rust", "author": "Bo", "date": "2024-02-03", "coverImage": "https://img.example.com/rust.png", "tags": ["rust"]}
]`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "--source", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing all 2 articles")
	assert.Contains(t, out, "go-basics\tGo Basics\tJanuary 2, 2024\t1 min read")
	assert.Contains(t, out, "rust-intro")
}

func TestList_Filters(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "--source", path, "list", "--q", "GO")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 2 articles")
	assert.NotContains(t, out, "rust-intro")

	out, err = run(t, "--source", path, "list", "--tag", "RUST", "--view", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 2 articles")
	assert.Contains(t, out, "Ownership explained")
	assert.Contains(t, out, "#rust")

	out, err = run(t, "--source", path, "list", "-q", "haskell")
	require.NoError(t, err)
	assert.Contains(t, out, "No articles match the current filters.")
}

func TestList_ListViewTruncatesTags(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "--source", path, "list", "--view", "list", "--q", "basics")
	require.NoError(t, err)
	assert.Contains(t, out, "#go #backend #beginner +1 more")
}

func TestList_JSON(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "--source", path, "list", "--json", "--tag", "go")
	require.NoError(t, err)

	var v listing.View
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, 2, v.Total)
	assert.Equal(t, 1, v.Shown)
	assert.Equal(t, "go", v.State.Tag)
	assert.Equal(t, []string{"backend", "beginner", "go", "rust", "tutorial"}, v.Tags)
}

func TestList_SourceFromEnv(t *testing.T) {
	t.Setenv("POSTS_SOURCE", writeFixture(t))

	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing all 2 articles")
}

func TestTags(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "--source", path, "tags")
	require.NoError(t, err)
	assert.Equal(t, "backend\nbeginner\ngo\nrust\ntutorial\n", out)
}

func TestShow(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "--source", path, "--fallback-cover", "https://img.example.com/default.png", "show", "go-basics")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Go Basics\n"))
	assert.Contains(t, out, "By Ann · January 2, 2024 · 1 min read")
	assert.Contains(t, out, "Cover: https://img.example.com/default.png")
	assert.Contains(t, out, "Tags: #go #backend #beginner #tutorial")
	assert.Contains(t, out, "# Go")
}

func TestShow_HTML(t *testing.T) {
	path := writeFixture(t)

	out, err := run(t, "--source", path, "show", "go-basics", "--html")
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 id="go">Go</h1>`)
	assert.NotContains(t, out, "<script")
}

func TestShow_NotFound(t *testing.T) {
	path := writeFixture(t)

	_, err := run(t, "--source", path, "show", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, posts.ErrNotFound))
	assert.False(t, posts.IsLoadError(err))
}

func TestLoadFailure(t *testing.T) {
	_, err := run(t, "--source", filepath.Join(t.TempDir(), "missing.json"), "tags")
	require.Error(t, err)
	assert.True(t, posts.IsLoadError(err))
	assert.Contains(t, err.Error(), "failed to load posts")
}
