package concat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestReadWorkDirs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	workFile := filepath.Join(dir, "work.txt")
	writeFile(t, workFile, sub+"\n\n"+filepath.Join(dir, "missing")+"\n")

	got := ReadWorkDirs(workFile, zap.NewNop())
	want := []string{sub}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadWorkDirs mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWorkDirsMissingFile(t *testing.T) {
	t.Parallel()

	got := ReadWorkDirs(filepath.Join(t.TempDir(), "work.txt"), zap.NewNop())
	if len(got) != 0 {
		t.Errorf("ReadWorkDirs on missing file = %v, want empty", got)
	}
}

func TestExpandInputsDirectorySorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		writeFile(t, filepath.Join(dir, name), name)
	}
	// Subdirectories are not expanded: directory input is non-recursive.
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	refs, err := ExpandInputs([]string{dir}, zap.NewNop())
	if err != nil {
		t.Fatalf("ExpandInputs: %v", err)
	}

	want := []FileRef{
		{Path: filepath.Join(dir, "a.txt"), Label: "a.txt"},
		{Path: filepath.Join(dir, "b.txt"), Label: "b.txt"},
		{Path: filepath.Join(dir, "c.txt"), Label: "c.txt"},
	}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("ExpandInputs mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandInputsMixedOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	writeFile(t, filepath.Join(sub, "inner.txt"), "inner")
	loose := filepath.Join(dir, "loose.txt")
	writeFile(t, loose, "loose")

	refs, err := ExpandInputs([]string{loose, sub}, zap.NewNop())
	if err != nil {
		t.Fatalf("ExpandInputs: %v", err)
	}

	want := []FileRef{
		{Path: loose, Label: loose},
		{Path: filepath.Join(sub, "inner.txt"), Label: "inner.txt"},
	}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("ExpandInputs mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandInputsEmptyDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := ExpandInputs([]string{dir}, zap.NewNop())
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("ExpandInputs err = %v, want ErrEmptyInput", err)
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	work := t.TempDir()
	writeFile(t, filepath.Join(work, "plain.txt"), "x")
	writeFile(t, filepath.Join(work, "noext.txt"), "x")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"relative hit", "plain.txt", filepath.Join(work, "plain.txt")},
		{"txt suffix fallback", "noext", filepath.Join(work, "noext.txt")},
		{"absolute passthrough", filepath.Join(work, "plain.txt"), filepath.Join(work, "plain.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePath(tt.path, []string{work}); got != tt.want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolvePathUnresolvedFallsBackToAbsolute(t *testing.T) {
	t.Parallel()

	work := t.TempDir()
	got := ResolvePath("missing.txt", []string{work})
	if !filepath.IsAbs(got) {
		t.Errorf("ResolvePath on unresolved path = %q, want absolute fallback", got)
	}
}

func TestResolvePathWorkDirOrder(t *testing.T) {
	t.Parallel()

	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(first, "dup.txt"), "first")
	writeFile(t, filepath.Join(second, "dup.txt"), "second")

	got := ResolvePath("dup.txt", []string{first, second})
	if got != filepath.Join(first, "dup.txt") {
		t.Errorf("ResolvePath = %q, want hit from first work dir", got)
	}
}
