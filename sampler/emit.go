package sampler

import (
	"bufio"
	"fmt"
	"io"

	"subsample/constants"
)

// EmitLines copies to w the lines of r whose 0-based positions appear in
// indices, each followed by a newline, and returns how many it wrote.
//
// indices must be strictly ascending. A cursor walks them alongside the
// input so the slice is never modified, and reading stops once the last
// index is written. Lines longer than the read buffer are streamed through
// in fragments. If r ends while indices remain, ErrInconsistentInput is
// returned.
func EmitLines(r io.Reader, w io.Writer, indices []int) (int, error) {
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return 0, fmt.Errorf("%w: %d follows %d", ErrIndicesUnsorted, indices[i], indices[i-1])
		}
	}

	br := bufio.NewReaderSize(r, constants.ReadBufferSize)
	cursor := 0
	line := 0

	for cursor < len(indices) {
		frag, err := br.ReadSlice('\n')
		if err != nil && err != bufio.ErrBufferFull && err != io.EOF {
			return cursor, fmt.Errorf("reading input at epiread %d: %w", line, err)
		}
		if len(frag) == 0 && err == io.EOF {
			break
		}

		selected := line == indices[cursor]
		complete := frag[len(frag)-1] == '\n'

		if selected {
			body := frag
			if complete {
				body = frag[:len(frag)-1]
			}
			if _, werr := w.Write(body); werr != nil {
				return cursor, fmt.Errorf("writing epiread %d: %w", line, werr)
			}
		}

		if complete || err == io.EOF {
			if selected {
				if _, werr := w.Write(newline); werr != nil {
					return cursor, fmt.Errorf("writing epiread %d: %w", line, werr)
				}
				cursor++
			}
			line++
		}

		if err == io.EOF {
			break
		}
	}

	if cursor < len(indices) {
		return cursor, fmt.Errorf("%w: %d of %d written, next index %d but input has %d",
			ErrInconsistentInput, cursor, len(indices), indices[cursor], line)
	}
	return cursor, nil
}
