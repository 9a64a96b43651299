package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/minish/internal/ui/style"
)

// messager is implemented by zerr errors: the message of one link without its cause.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying key/value metadata.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain as it is printed.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of zerr links. A standard error ends the walk
// with its full text. Links with an empty message only contribute metadata, which is
// attached to the next printed link.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var carried map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: carried})
			break
		}

		meta := carried
		if md, ok := current.(metadataer); ok {
			for k, v := range md.Metadata() {
				if meta == nil {
					meta = make(map[string]any)
				}
				meta[k] = v
			}
		}

		if m.Message() == "" {
			carried = meta
		} else {
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
			carried = nil
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as:
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		first, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			first, indent = "    "+style.Arrow+" ", "      "
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
