package readers

import (
	"io"

	"github.com/scoophq/scoop/common"
)

// LimitReaderWithOverrunError behaves like io.LimitReader but reports
// common.ErrMediaTooLarge instead of a silent EOF when the source has more to give.
func LimitReaderWithOverrunError(r io.ReadCloser, n int64) io.ReadCloser {
	return &limitedReader{r: r, n: n}
}

type limitedReader struct {
	r io.ReadCloser
	n int64
}

func (r *limitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.n <= 0 {
		// See if we can read one more byte, indicating the stream is too big
		b := make([]byte, 1)
		n, _ := io.ReadFull(r.r, b)
		if n > 0 {
			return 0, common.ErrMediaTooLarge
		}
		return 0, io.EOF
	}

	if int64(len(p)) > r.n {
		p = p[:r.n]
	}
	n, err := r.r.Read(p)
	r.n -= int64(n)
	return n, err
}

func (r *limitedReader) Close() error {
	return r.r.Close()
}
