package concat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Run executes one combine pass: resolve the inputs, read every file, render
// the delimited blob, and write it to the output path in a single write. Any
// failure aborts before the output file is touched.
func Run(args *Arguments, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting combine process",
		zap.Strings("paths", args.Paths),
		zap.String("codesFile", args.CodesFile))

	workFile := args.WorkFile
	if workFile == "" {
		workFile = DefaultWorkFile
	}
	workDirs := ReadWorkDirs(workFile, logger)
	if len(workDirs) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		logger.Debug("No work directories configured, using current directory",
			zap.String("workFile", workFile))
		workDirs = []string{cwd}
	}

	refs, err := collectRefs(args, workDirs, logger)
	if err != nil {
		return err
	}
	refs = ResolveRefs(refs, workDirs)

	if missing := missingFiles(refs); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
	}

	entries, err := readEntries(refs, logger)
	if err != nil {
		return err
	}

	request, hasRequest := loadRequest(args.RequestFile, workDirs, logger)

	output := args.Output
	if output == "" {
		output = defaultOutputName(args.Paths)
	}

	blob := Render(request, hasRequest, entries)
	if err := os.WriteFile(output, []byte(blob), 0644); err != nil {
		logger.Error("Failed to write combined file", zap.String("output", output), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", ErrWrite, output, err)
	}

	logger.Info("Successfully combined files",
		zap.String("output", output),
		zap.Int("totalFiles", len(entries)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// collectRefs produces the ordered file references for the run, either from
// the codes list or from the positional paths.
func collectRefs(args *Arguments, workDirs []string, logger *zap.Logger) ([]FileRef, error) {
	if args.CodesFile == "" {
		return ExpandInputs(args.Paths, logger)
	}

	codesPath := ResolvePath(args.CodesFile, workDirs)
	codes, err := ReadCodesList(codesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, args.CodesFile)
	}

	mappingFile := args.MappingFile
	if mappingFile == "" {
		mappingFile = DefaultMappingFile
	}
	mappingPath := ResolvePath(mappingFile, workDirs)
	mapping, err := ReadCodesMapping(mappingPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, mappingFile)
	}

	logger.Debug("Resolved codes mode inputs",
		zap.String("codesList", codesPath),
		zap.String("mapping", mappingPath),
		zap.Int("codeCount", len(codes)))

	return ResolveCodes(codes, mapping)
}

// missingFiles returns the resolved paths that do not name regular files.
// They are collected rather than reported one at a time so the operator sees
// the full list at once.
func missingFiles(refs []FileRef) []string {
	var missing []string
	for _, ref := range refs {
		if !isRegularFile(ref.Path) {
			missing = append(missing, ref.Path)
		}
	}
	return missing
}

// readEntries reads every referenced file fully into memory, rejecting
// anything that does not look like plain text.
func readEntries(refs []FileRef, logger *zap.Logger) ([]FileEntry, error) {
	entries := make([]FileEntry, 0, len(refs))
	for _, ref := range refs {
		text, err := isTextFile(ref.Path)
		if err != nil {
			logger.Error("Failed to inspect file", zap.String("file", ref.Path), zap.Error(err))
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, ref.Path, err)
		}
		if !text {
			logger.Error("File is not plain text", zap.String("file", ref.Path))
			return nil, fmt.Errorf("%w: %s", ErrRead, ref.Path)
		}

		content, err := os.ReadFile(ref.Path)
		if err != nil {
			logger.Error("Failed to read file", zap.String("file", ref.Path), zap.Error(err))
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, ref.Path, err)
		}

		logger.Debug("Read input file",
			zap.String("file", ref.Path),
			zap.String("label", ref.Label),
			zap.Int("sizeBytes", len(content)))
		entries = append(entries, FileEntry{Label: ref.Label, Content: string(content)})
	}
	return entries, nil
}

// loadRequest reads the optional request file. A missing request file is
// skipped with a warning rather than failing the run.
func loadRequest(requestFile string, workDirs []string, logger *zap.Logger) (string, bool) {
	if requestFile == "" {
		return "", false
	}

	path := ResolvePath(requestFile, workDirs)
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Request file not found, skipping it", zap.String("requestFile", requestFile))
		return "", false
	}
	return string(content), true
}

// Render produces the combined output text. Each entry becomes:
//
//	<<<FILE_START>>> <label>
//	<content>
//	<<<FILE_END>>> <label>
//
// with a blank line after every block. A request, when present, leads the
// output wrapped in the request delimiters.
func Render(request string, hasRequest bool, entries []FileEntry) string {
	var b strings.Builder

	if hasRequest {
		b.WriteString(RequestStartSep + "\n")
		b.WriteString(request)
		b.WriteString("\n" + RequestEndSep + "\n\n")
	}

	for _, entry := range entries {
		b.WriteString(FileStartSep + " " + entry.Label + "\n")
		b.WriteString(entry.Content)
		b.WriteString("\n" + FileEndSep + " " + entry.Label + "\n\n")
	}
	return b.String()
}

// defaultOutputName derives the output file name when no explicit -o path is
// given: "<dir>-request.txt" for a single-directory input, otherwise the
// fixed fallback name. The file lands in the current working directory.
func defaultOutputName(paths []string) string {
	if len(paths) == 1 {
		if info, err := os.Stat(paths[0]); err == nil && info.IsDir() {
			return filepath.Base(filepath.Clean(paths[0])) + outputNameSuffix
		}
	}
	return fallbackOutputName
}
