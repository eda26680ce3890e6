package concat

// Arguments holds the command-line configuration for one combine run.
type Arguments struct {
	Paths       []string // Files and/or directories to combine, in argument order.
	CodesFile   string   // File listing codes to combine via the mapping file.
	MappingFile string   // Codes mapping file; empty means codes.txt resolved in the work dirs.
	Output      string   // Destination path for the combined file; empty derives a default name.
	RequestFile string   // Optional request file whose content is prepended to the output.
	WorkFile    string   // File listing work directories used to resolve input paths.
	Verbose     bool     // Enables debug logging.
}

// FileRef pairs a filesystem path with the label written into the delimiters.
type FileRef struct {
	Path  string // Path to read, after work-dir resolution.
	Label string // Name that appears in the FILE_START/FILE_END lines.
}

// FileEntry holds the text content of a resolved input file.
type FileEntry struct {
	Label   string
	Content string
}

// Output delimiters. These are the tool's compatibility surface: downstream
// consumers split the combined file on them, so the exact tokens and the
// blank line between blocks must not change.
const (
	FileStartSep    = "<<<FILE_START>>>"
	FileEndSep      = "<<<FILE_END>>>"
	RequestStartSep = "<<<REQUEST_START>>>"
	RequestEndSep   = "<<<REQUEST_END>>>"
)

// Default file names, matching the tool's historical conventions.
const (
	DefaultMappingFile = "codes.txt"
	DefaultRequestFile = "request.txt"
	DefaultWorkFile    = "work.txt"

	fallbackOutputName = "combined-request.txt"
	outputNameSuffix   = "-request.txt"
)
