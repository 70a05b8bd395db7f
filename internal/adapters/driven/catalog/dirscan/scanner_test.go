package dirscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestScanner_Load_FrontMatter tests entries declared through front matter
func TestScanner_Load_FrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "fee-delegation.md", `---
id: fee-delegation
title: Fee Delegation
description: Sponsored transactions.
keywords: [gasless, sponsored, vip-191]
---
# Fee Delegation
`)
	writeDoc(t, dir, "index.md", "---\nroot: true\ntitle: Overview\n---\n# Overview\n")

	skills, err := New(dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "fee-delegation", skills[0].ID)
	assert.Equal(t, "Fee Delegation", skills[0].Title)
	assert.Equal(t, "Sponsored transactions.", skills[0].Description)
	assert.Equal(t, []string{"gasless", "sponsored", "vip-191"}, skills[0].Keywords)
	assert.False(t, skills[0].Root)
	assert.True(t, skills[1].Root)
}

// TestScanner_Load_SortedOrder tests declaration order follows sorted paths
func TestScanner_Load_SortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "zeta.md", "---\nkeywords: [z]\n---\n")
	writeDoc(t, dir, "alpha.md", "---\nkeywords: [a]\n---\n")
	writeDoc(t, dir, "middle.md", "---\nkeywords: [m]\n---\n")

	skills, err := New(dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "alpha", skills[0].ID)
	assert.Equal(t, "middle", skills[1].ID)
	assert.Equal(t, "zeta", skills[2].ID)
}

// TestScanner_Load_FallbackConventions tests documents without front matter
func TestScanner_Load_FallbackConventions(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "Multi_Clause.md", `# Multi-Clause Transactions

Bundle several transfers atomically.

## When to use

- batch transfers
- atomic operations
`)

	skills, err := New(dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, skills, 1)
	s := skills[0]
	assert.Equal(t, "multi-clause", s.ID)
	assert.Equal(t, "Multi-Clause Transactions", s.Title)
	assert.Equal(t, "Bundle several transfers atomically.", s.Description)
	assert.Equal(t, []string{"batch transfers", "atomic operations"}, s.Keywords)
}

// TestScanner_Load_ExplicitRootWins tests root front matter beats the file name convention
func TestScanner_Load_ExplicitRootWins(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "# Index\n")
	writeDoc(t, dir, "welcome.md", "---\nroot: true\n---\n# Welcome\n")

	skills, err := New(dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.False(t, skills[0].Root, "index.md must not be promoted when an explicit root exists")
	assert.True(t, skills[1].Root)
}

// TestScanner_Load_IndexConvention tests index.md becomes the root by convention
func TestScanner_Load_IndexConvention(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "# Overview\n")
	writeDoc(t, dir, "fees.md", "---\nkeywords: [fee]\n---\n")

	skills, err := New(dir).Load(context.Background())

	require.NoError(t, err)
	var root string
	for _, s := range skills {
		if s.Root {
			root = s.ID
		}
	}
	assert.Equal(t, "index", root)
}

// TestScanner_Load_ReadmeConvention tests README.md is the secondary root convention
func TestScanner_Load_ReadmeConvention(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "README.md", "# Pack\n")
	writeDoc(t, dir, "fees.md", "---\nkeywords: [fee]\n---\n")

	skills, err := New(dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.True(t, skills[0].Root)
	assert.Equal(t, "readme", skills[0].ID)
}

// TestScanner_Load_SkipsHiddenAndNonMarkdown tests irrelevant files never become entries
func TestScanner_Load_SkipsHiddenAndNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "fees.md", "---\nkeywords: [fee]\n---\n")
	writeDoc(t, dir, ".draft.md", "# Hidden\n")
	writeDoc(t, dir, "notes.txt", "plain text")
	writeDoc(t, dir, ".git/objects/stray.md", "# Inside VCS\n")

	skills, err := New(dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "fees", skills[0].ID)
}

// TestScanner_Load_NestedDirectories tests subdirectories are scanned
func TestScanner_Load_NestedDirectories(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "# Top\n")
	nested := writeDoc(t, dir, "advanced/debugging.md", "---\nkeywords: [debug]\n---\n")

	skills, err := New(dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "debugging", skills[0].ID)
	assert.Equal(t, nested, skills[0].Path)
	assert.True(t, filepath.IsAbs(skills[0].Path))
}

// TestScanner_Load_MalformedFrontMatter tests parse failures name the file
func TestScanner_Load_MalformedFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "broken.md", "---\nkeywords: [unclosed\n---\n")

	_, err := New(dir).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.md")
}

// TestScanner_Load_MissingDirectory tests a nonexistent corpus errors
func TestScanner_Load_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope")).Load(context.Background())

	assert.Error(t, err)
}

// TestScanner_Location tests the source describes its root
func TestScanner_Location(t *testing.T) {
	assert.Equal(t, "/corpus", New("/corpus").Location())
}

// TestScanner_Watch_EmitsOnChange tests a document write triggers an event
func TestScanner_Watch_EmitsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "# Top\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := New(dir).Watch(ctx)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "new-skill.md"), []byte("---\nkeywords: [new]\n---\n"), 0o644)
	}()

	select {
	case _, ok := <-events:
		assert.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for corpus change event")
	}
}

// TestScanner_Watch_IgnoresUnrelatedFiles tests non-Markdown churn stays silent
func TestScanner_Watch_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "# Top\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := New(dir).Watch(ctx)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "scratch.tmp"), []byte("noise"), 0o644)
	}()

	select {
	case <-events:
		t.Fatal("unexpected event for non-Markdown file")
	case <-time.After(800 * time.Millisecond):
		// Quiet, as intended.
	}
}

// TestScanner_Watch_ClosesOnCancel tests cancellation shuts the event channel
func TestScanner_Watch_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	events, err := New(dir).Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}

// TestScanner_Watch_MissingDirectory tests watching a nonexistent corpus errors
func TestScanner_Watch_MissingDirectory(t *testing.T) {
	events, err := New(filepath.Join(t.TempDir(), "nope")).Watch(context.Background())

	assert.Error(t, err)
	assert.Nil(t, events)
}
