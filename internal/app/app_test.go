package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/codecompass/internal/config"
	"github.com/blackwell-systems/codecompass/internal/docgen"
	"github.com/blackwell-systems/codecompass/internal/store"
)

// execute runs the root command with args and returns captured output.
// Package-level flag variables are reset first since cobra keeps them
// between runs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	flagNoColor, flagVerbose, flagConfig = false, false, ""
	scanFlagOutputDir, scanFlagName, scanFlagRecord, scanFlagQuiet = "", "", false, false
	historyFlagLimit, historyFlagJSON = 10, false
	docFlagModel = ""

	if os.Getenv("CODECOMPASS_HISTORY_DB_PATH") == "" {
		t.Setenv("CODECOMPASS_HISTORY_DB_PATH", filepath.Join(t.TempDir(), "history.db"))
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--no-color", "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// ---------------------------------------------------------------------------
// scan
// ---------------------------------------------------------------------------

func TestScan_WritesFourReports(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app.py":              "print('hi')\n",
		"src/Repo.java":       "String q = \"SELECT * FROM users\";\n",
		"node_modules/dep.js": "select\n",
	})
	outDir := t.TempDir()

	stdout, stderr, err := execute(t, "scan", root, "--output-dir", outDir)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Contains(t, stdout, "📄 "+filepath.Join(root, "app.py"))
	assert.Contains(t, stdout, "direct print usage detected")
	assert.Contains(t, stdout, "Risk Distribution")
	assert.Contains(t, stdout, "Analysis complete. Reports saved to: codecompass_report.json, codecompass_report.md, codecompass_report.html, codecompass_report.xlsx")
	assert.NotContains(t, stdout, "node_modules")

	for _, ext := range []string{".json", ".md", ".html", ".xlsx"} {
		_, err := os.Stat(filepath.Join(outDir, "codecompass_report"+ext))
		assert.NoError(t, err, ext)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "codecompass_report.json"))
	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Python", results[0]["language"])
	assert.Equal(t, "Java", results[1]["language"])
}

func TestScan_QuietAndCustomName(t *testing.T) {
	root := writeTree(t, map[string]string{"main.go": "package main\n"})
	outDir := t.TempDir()

	stdout, _, err := execute(t, "scan", root, "--output-dir", outDir, "--name", "audit", "--quiet")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "📄")
	assert.Contains(t, stdout, "audit.json")

	_, err = os.Stat(filepath.Join(outDir, "audit.md"))
	assert.NoError(t, err)
}

func TestScan_UnreadableFileReported(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced")
	}
	root := writeTree(t, map[string]string{
		"locked.py": "print(1)\n",
		"open.go":   "package open\n",
	})
	locked := filepath.Join(root, "locked.py")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o644) })
	outDir := t.TempDir()

	stdout, stderr, err := execute(t, "scan", root, "--output-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Error analyzing "+locked)
	assert.NotContains(t, stdout, "📄 "+locked)

	for _, ext := range []string{".json", ".md", ".html"} {
		data, err := os.ReadFile(filepath.Join(outDir, "codecompass_report"+ext))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "locked.py", ext)
	}
}

func TestScan_RecordThenHistory(t *testing.T) {
	root := writeTree(t, map[string]string{"a.py": "print(1)\n", "b.go": "package b\n"})

	_, _, err := execute(t, "scan", root, "--output-dir", t.TempDir(), "--record", "--quiet")
	require.NoError(t, err)

	stdout, _, err := execute(t, "history", "--json")
	require.NoError(t, err)

	var runs []store.ScanRun
	require.NoError(t, json.Unmarshal([]byte(stdout), &runs))
	require.Len(t, runs, 1)
	abs, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, abs, runs[0].Root)
	assert.Equal(t, 2, runs[0].FileCount)
}

func TestScan_RecordWritesHistory(t *testing.T) {
	root := writeTree(t, map[string]string{"a.py": "print(1)\nSELECT\n", "b.go": "package b\n"})

	_, _, err := execute(t, "scan", root, "--output-dir", t.TempDir(), "--record", "--quiet")
	require.NoError(t, err)

	db, err := store.Open(os.Getenv("CODECOMPASS_HISTORY_DB_PATH"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	runs, err := db.ListScans(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 2, runs[0].FileCount)
	assert.Equal(t, 1, runs[0].Medium)
	assert.Equal(t, 1, runs[0].Low)
}

func TestHistory_NoDatabaseLeavesDiskUntouched(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state", "history.db")
	t.Setenv("CODECOMPASS_HISTORY_DB_PATH", dbPath)

	stdout, _, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No scans recorded yet")

	stdout, _, err = execute(t, "history", "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.True(t, os.IsNotExist(err), "history must not create %s", filepath.Dir(dbPath))
}

// ---------------------------------------------------------------------------
// doc
// ---------------------------------------------------------------------------

type fakeDocumenter struct{ fail bool }

func (f fakeDocumenter) Document(_ context.Context, text, language string) (string, error) {
	if f.fail {
		return "", errors.New("offline")
	}
	return "// " + language + "\n" + text, nil
}

func withDocumenter(t *testing.T, d docgen.Documenter) {
	t.Helper()
	prev := newDocumenter
	newDocumenter = func(*config.Config) (docgen.Documenter, error) { return d, nil }
	t.Cleanup(func() { newDocumenter = prev })
}

func TestDoc_WritesSiblingCopies(t *testing.T) {
	withDocumenter(t, fakeDocumenter{})
	root := writeTree(t, map[string]string{
		"main.go":    "package main\n",
		"old_doc.go": "package main\n",
		"build/x.go": "package x\n",
		"README.md":  "# readme\n",
	})

	stdout, _, err := execute(t, "doc", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Documented 1 of 1 files")

	got, err := os.ReadFile(filepath.Join(root, "main_doc.go"))
	require.NoError(t, err)
	assert.Equal(t, "// Go\npackage main\n", string(got))

	_, err = os.Stat(filepath.Join(root, "old_doc_doc.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestDoc_ServiceFailureKeepsOriginal(t *testing.T) {
	withDocumenter(t, fakeDocumenter{fail: true})
	root := writeTree(t, map[string]string{"tool.py": "print(1)\n"})

	stdout, _, err := execute(t, "doc", filepath.Join(root, "tool.py"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "(1 kept original content)")

	got, err := os.ReadFile(filepath.Join(root, "tool_doc.py"))
	require.NoError(t, err)
	assert.Equal(t, "print(1)\n", string(got))
}

func TestDoc_MissingFileListedAsFailed(t *testing.T) {
	withDocumenter(t, fakeDocumenter{})
	missing := filepath.Join(t.TempDir(), "gone.go")

	stdout, _, err := execute(t, "doc", missing)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Failed")
	assert.Contains(t, stdout, missing)
}

func TestDoc_MissingAPIKeyKeepsOriginals(t *testing.T) {
	t.Setenv("CODECOMPASS_DOC_API_KEY_ENV", "CODECOMPASS_TEST_UNSET_KEY")
	root := writeTree(t, map[string]string{
		"main.go": "package main\n",
		"tool.py": "print(1)\n",
	})

	stdout, _, err := execute(t, "doc", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Documented 0 of 2 files (2 kept original content).")

	for name, want := range map[string]string{
		"main_doc.go": "package main\n",
		"tool_doc.py": "print(1)\n",
	} {
		got, err := os.ReadFile(filepath.Join(root, name))
		require.NoError(t, err, name)
		assert.Equal(t, want, string(got), name)
	}
}
