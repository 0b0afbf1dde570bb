package sampler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	gzip "github.com/klauspost/pgzip"

	"subsample/constants"
)

// readStream is an input file, possibly behind a decompressor. Closing it
// closes the decompressor before the file.
type readStream struct {
	io.Reader
	closers []io.Closer
}

func (r *readStream) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// OpenInput opens path for reading. Files ending in .gz are gunzipped and
// files ending in .sz are read as framed snappy streams.
func OpenInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}

	switch {
	case strings.HasSuffix(path, constants.GzipExtension):
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("cannot read gzip input %s: %w", path, err)
		}
		return &readStream{Reader: gr, closers: []io.Closer{gr, f}}, nil
	case strings.HasSuffix(path, constants.SnappyExtension):
		return &readStream{Reader: snappy.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return &readStream{Reader: f, closers: []io.Closer{f}}, nil
	}
}

// Output is a buffered sink for sampled records. Close flushes the buffer,
// then closes any compressor and file beneath it, and must be called on
// every exit path.
type Output struct {
	*bufio.Writer
	closers []io.Closer
}

// Close flushes and releases the output. The first error wins.
func (o *Output) Close() error {
	err := o.Writer.Flush()
	for _, c := range o.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	o.closers = nil
	return err
}

// CreateOutput opens the sink named by path, or wraps stdout when path is
// empty. stdout itself is flushed but never closed. A path ending in .gz
// or .sz is compressed the same way OpenInput decompresses it.
func CreateOutput(path string, stdout io.Writer) (*Output, error) {
	if path == "" {
		return &Output{Writer: bufio.NewWriterSize(stdout, constants.WriteBufferSize)}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open output file: %w", err)
	}

	switch {
	case strings.HasSuffix(path, constants.GzipExtension):
		gw := gzip.NewWriter(f)
		return &Output{
			Writer:  bufio.NewWriterSize(gw, constants.WriteBufferSize),
			closers: []io.Closer{gw, f},
		}, nil
	case strings.HasSuffix(path, constants.SnappyExtension):
		sw := snappy.NewBufferedWriter(f)
		return &Output{
			Writer:  bufio.NewWriterSize(sw, constants.WriteBufferSize),
			closers: []io.Closer{sw, f},
		}, nil
	default:
		return &Output{
			Writer:  bufio.NewWriterSize(f, constants.WriteBufferSize),
			closers: []io.Closer{f},
		}, nil
	}
}
