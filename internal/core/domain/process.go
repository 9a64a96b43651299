package domain

// ProcessEntry is one row of a process listing.
type ProcessEntry struct {
	// PID is the numeric directory name under the proc root, kept as text
	// so it is printed exactly as it was scanned.
	PID string
	// User is the name of the account owning the process.
	User string
	// Program is the base name of the first command line token.
	Program string
}

// ProcessListing is the result of one process scan.
type ProcessListing struct {
	// Width is the length of the longest numeric entry name seen by the first pass.
	Width   int
	Entries []ProcessEntry
}

// IsNumeric reports whether name is a non-empty string of ASCII digits.
func IsNumeric(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
