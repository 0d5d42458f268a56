package diagfmt

import "strings"

// redactionMarker replaces every occurrence of an unsafe path root in
// emitted output. Diagnostics get copy-pasted into issue trackers and
// chat; they must not leak the local filesystem layout.
const redactionMarker = "<redacted>"

func redact(s string, roots []string) string {
	for _, root := range roots {
		if root == "" {
			continue
		}
		s = strings.ReplaceAll(s, root, redactionMarker)
	}
	return s
}
