package concat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadCodesList(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "codes-list.txt")
	writeFile(t, path, "A\n\n  B  \nC\n")

	codes, err := ReadCodesList(path)
	if err != nil {
		t.Fatalf("ReadCodesList: %v", err)
	}

	if diff := cmp.Diff([]string{"A", "B", "C"}, codes); diff != "" {
		t.Errorf("ReadCodesList mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCodesListMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadCodesList(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("ReadCodesList err = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestReadCodesMapping(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "codes.txt")
	writeFile(t, path, "A docs/alpha.txt\nB  path with spaces.txt\nmalformed\n# not a comment B c.txt\n")

	mapping, err := ReadCodesMapping(path)
	if err != nil {
		t.Fatalf("ReadCodesMapping: %v", err)
	}

	want := map[string]string{
		"A": "docs/alpha.txt",
		"B": "path with spaces.txt",
		"#": "not a comment B c.txt",
	}
	if diff := cmp.Diff(want, mapping); diff != "" {
		t.Errorf("ReadCodesMapping mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCodesPreservesOrder(t *testing.T) {
	t.Parallel()

	mapping := map[string]string{"A": "a.txt", "B": "b.txt"}
	refs, err := ResolveCodes([]string{"B", "A"}, mapping)
	if err != nil {
		t.Fatalf("ResolveCodes: %v", err)
	}

	want := []FileRef{
		{Path: "b.txt", Label: "b.txt"},
		{Path: "a.txt", Label: "a.txt"},
	}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("ResolveCodes mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCodesReportsAllMissing(t *testing.T) {
	t.Parallel()

	_, err := ResolveCodes([]string{"A", "X", "Y"}, map[string]string{"A": "a.txt"})
	if !errors.Is(err, ErrUnknownCodes) {
		t.Fatalf("ResolveCodes err = %v, want ErrUnknownCodes", err)
	}
	for _, code := range []string{"X", "Y"} {
		if !strings.Contains(err.Error(), code) {
			t.Errorf("error does not list missing code %s: %v", code, err)
		}
	}
}
