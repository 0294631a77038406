// File: pkg/classify/types.go
package classify

// Status identifies which variant of Result is populated.
type Status int

const (
	StatusText        Status = iota // Content and Encoding are set.
	StatusBinary                    // No content; MIME may be set.
	StatusReadError                 // Not decodable under any supported encoding.
	StatusAccessError               // The OS refused to open or read the file.
)

// String returns the status label used in logs and summaries.
func (s Status) String() string {
	switch s {
	case StatusText:
		return "text_content"
	case StatusBinary:
		return "binary_file"
	case StatusReadError:
		return "read_error"
	case StatusAccessError:
		return "skipped_access_error"
	default:
		return "unknown"
	}
}

// Result is the outcome of classifying one file.
type Result struct {
	Path     string // Absolute path.
	RelPath  string // Slash-separated path relative to the project root.
	Status   Status // Which variant this is.
	Content  string // Text only: content with line endings normalised to "\n".
	Encoding string // Text only: encoding that decoded the content.
	MIME     string // Binary only: sniffed content type.
	Message  string // Errors only: human-readable diagnostic.
}

// Failed reports whether the result is a read or access error.
func (r Result) Failed() bool {
	return r.Status == StatusReadError || r.Status == StatusAccessError
}

// Options controls error escalation.
type Options struct {
	StopOnError bool // Return access and decode failures as errors instead of results.
}

// Classification policy constants.
const (
	BinaryWindow         = 4096 // Bytes inspected by the null-byte heuristic.
	NullThresholdPercent = 10.0 // Null-byte share above which a file is binary.
	PrimaryEncoding      = "utf-8"
	FallbackEncoding     = "cp1252"
)

// Encodings lists the decoders tried, in order.
var Encodings = []string{PrimaryEncoding, FallbackEncoding}
