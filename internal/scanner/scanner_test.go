package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeFile creates path (and its parent directories) under root.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// Classify
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "Go"},
		{"app/models.py", "Python"},
		{"Service.java", "Java"},
		{"lib.rs", "Rust"},
		{"index.ts", "TypeScript"},
		{"util.cpp", "C++"},
		{"Program.cs", "C#"},
		{"FOO.PY", "Python"},
		{"README.md", Unknown},
		{"Makefile", Unknown},
	}

	for _, tc := range tests {
		if got := Classify(tc.path); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestKnown_CaseSensitive(t *testing.T) {
	if !Known(".py") {
		t.Error("expected .py to be known")
	}
	if Known(".PY") {
		t.Error("expected .PY to be unknown to the case-sensitive lookup")
	}
}

func TestLanguages_ReturnsCopy(t *testing.T) {
	table := Languages()
	table[".py"] = "Snake"
	delete(table, ".go")

	if Classify("x.py") != "Python" {
		t.Error("mutating the returned table must not affect Classify")
	}
	if !Known(".go") {
		t.Error("mutating the returned table must not affect Known")
	}
}

// ---------------------------------------------------------------------------
// Discover
// ---------------------------------------------------------------------------

func TestDiscover_FiltersByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "notes.txt", "hello\n")
	writeFile(t, root, "pkg/util.py", "print('x')\n")
	writeFile(t, root, "pkg/README.md", "# readme\n")

	files, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if files[0] != filepath.Join(root, "main.go") {
		t.Errorf("expected main.go first, got %q", files[0])
	}
	if files[1] != filepath.Join(root, "pkg", "util.py") {
		t.Errorf("expected pkg/util.py second, got %q", files[1])
	}
}

func TestDiscover_SkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/app.js", "x\n")
	writeFile(t, root, "node_modules/dep/index.js", "x\n")
	writeFile(t, root, "build/out.java", "x\n")
	writeFile(t, root, "target/debug/main.rs", "x\n")
	writeFile(t, root, "pkg/__pycache__/mod.py", "x\n")
	writeFile(t, root, "deep/nested/build/gen.go", "x\n")

	files, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("expected only src/app.js, got %v", files)
	}
	for _, f := range files {
		rel, _ := filepath.Rel(root, f)
		for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
			if IsIgnoredDir(seg) {
				t.Errorf("discovered path %q contains ignored segment %q", f, seg)
			}
		}
	}
}

func TestDiscover_UppercaseExtensionExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "FOO.PY", "print(1)\n")
	writeFile(t, root, "bar.py", "print(1)\n")

	files, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "bar.py" {
		t.Errorf("expected only bar.py, got %v", files)
	}
}

func TestDiscover_SingleFileRoot(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "notes.txt", "no extension filtering here\n")

	files, err := Discover(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("expected [%s], got %v", path, files)
	}
}

func TestDiscover_MissingRootReturnedAsIs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.go")

	files, err := Discover(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("expected [%s], got %v", path, files)
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestDiscover_SkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	root := t.TempDir()
	target := writeFile(t, root, "real.go", "package x\n")
	if err := os.Symlink(target, filepath.Join(root, "link.go")); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "real.go" {
		t.Errorf("expected only real.go, got %v", files)
	}
}

func TestDiscover_SymlinkedRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	target := t.TempDir()
	writeFile(t, target, "main.go", "package main\n")
	writeFile(t, target, "build/gen.go", "package gen\n")

	link := filepath.Join(t.TempDir(), "proj")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(link)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(link, "main.go")
	if len(files) != 1 || files[0] != want {
		t.Errorf("expected [%s], got %v", want, files)
	}
}
