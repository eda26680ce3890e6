package concat

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// ReadCodesList reads codes from the given file, one code per line.
// Blank lines are skipped; order is preserved.
func ReadCodesList(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read codes list %s: %w", path, err)
	}

	var codes []string
	for _, line := range strings.Split(string(content), "\n") {
		code := strings.TrimSpace(line)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes, nil
}

// ReadCodesMapping parses a mapping file of "code path" lines into a
// code-to-path map. The path is everything after the first whitespace run,
// so mapped paths may contain spaces. Malformed lines are skipped.
func ReadCodesMapping(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read codes mapping %s: %w", path, err)
	}

	mapping := make(map[string]string)
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		i := strings.IndexFunc(line, unicode.IsSpace)
		if i < 0 {
			continue
		}
		code := line[:i]
		target := strings.TrimSpace(line[i:])
		if code != "" && target != "" {
			mapping[code] = target
		}
	}
	return mapping, nil
}

// ResolveCodes maps each code to its file reference, preserving codes-list
// order. All unknown codes are collected and reported together so the
// operator can fix the mapping file in one pass.
func ResolveCodes(codes []string, mapping map[string]string) ([]FileRef, error) {
	var refs []FileRef
	var missing []string
	for _, code := range codes {
		target, ok := mapping[code]
		if !ok {
			missing = append(missing, code)
			continue
		}
		refs = append(refs, FileRef{Path: target, Label: target})
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodes, strings.Join(missing, ", "))
	}
	return refs, nil
}
