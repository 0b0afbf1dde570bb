package sampler

import (
	"bytes"
	"fmt"
	"io"

	"subsample/constants"
)

var newline = []byte{'\n'}

// Count is the outcome of a counting pass
type Count struct {
	Records int
	Bytes   int64
}

// CountLines counts the newline-delimited records in r. A trailing record
// without a final newline still counts; an empty reader has no records.
// Lines of any length are handled since only newline bytes are inspected.
func CountLines(r io.Reader) (Count, error) {
	var c Count
	buf := make([]byte, constants.CountChunkSize)
	last := byte('\n')

	for {
		n, err := r.Read(buf)
		if n > 0 {
			c.Records += bytes.Count(buf[:n], newline)
			c.Bytes += int64(n)
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return c, fmt.Errorf("reading input: %w", err)
		}
	}

	if last != '\n' {
		c.Records++
	}
	return c, nil
}

// CountFile opens path with OpenInput and counts its records
func CountFile(path string) (Count, error) {
	in, err := OpenInput(path)
	if err != nil {
		return Count{}, err
	}
	defer in.Close()

	return CountLines(in)
}
