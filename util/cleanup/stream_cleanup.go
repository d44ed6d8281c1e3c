package cleanup

import (
	"io"
)

const maxDrainBytes = 64 * 1024

// DumpAndCloseStream reads a small remainder off r so the connection can be reused,
// then closes it. Larger bodies are simply closed.
func DumpAndCloseStream(r io.ReadCloser) {
	if r == nil {
		return // nothing to dump or close
	}
	_, _ = io.CopyN(io.Discard, r, maxDrainBytes)
	_ = r.Close()
}
