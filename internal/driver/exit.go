package driver

import (
	"io"
	"os"

	"rosh/internal/diagfmt"
)

// Exit is the single place where a rendered Failure terminates the
// process. Machine output is exactly one JSON object on stdout with
// nothing else interleaved, so scripts parsing that channel see pure
// JSON; human output goes to stderr. Never call this from library code;
// everything below this boundary returns the Failure instead.
func Exit(f diagfmt.Failure) {
	EmitFailure(os.Stdout, os.Stderr, f)
	os.Exit(1)
}

// EmitFailure writes a Failure to the channel its mode mandates. Split
// from Exit so tests can capture output without killing the process.
func EmitFailure(stdout, stderr io.Writer, f diagfmt.Failure) {
	if f.Machine {
		io.WriteString(stdout, f.Output) //nolint:errcheck // a failed write leaves nowhere to report
		return
	}
	io.WriteString(stderr, f.Output) //nolint:errcheck
}
