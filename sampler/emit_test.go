package sampler

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEmitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		indices  []int
		expected string
	}{
		{
			name:     "selected lines in order",
			input:    "A\nB\nC\nD\nE\n",
			indices:  []int{1, 3, 4},
			expected: "B\nD\nE\n",
		},
		{
			name:     "empty sample",
			input:    "A\nB\nC\n",
			indices:  []int{},
			expected: "",
		},
		{
			name:     "whole input",
			input:    "A\nB\nC\n",
			indices:  []int{0, 1, 2},
			expected: "A\nB\nC\n",
		},
		{
			name:     "unterminated last line gains newline",
			input:    "A\nB\nC",
			indices:  []int{0, 2},
			expected: "A\nC\n",
		},
		{
			name:     "line content kept verbatim",
			input:    "  a b \t\nB\r\nC\n",
			indices:  []int{0, 1},
			expected: "  a b \t\nB\r\n",
		},
		{
			name:     "blank lines are records",
			input:    "\n\nX\n",
			indices:  []int{1, 2},
			expected: "\nX\n",
		},
		{
			name:     "empty input empty sample",
			input:    "",
			indices:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n, err := EmitLines(strings.NewReader(tt.input), &out, tt.indices)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if n != len(tt.indices) {
				t.Errorf("Expected %d emitted, got %d", len(tt.indices), n)
			}
			if out.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestEmitLinesLongLines(t *testing.T) {
	long := strings.Repeat("ACGT", 50*1024)
	input := "first\n" + long + "\n" + "third\n" + long

	var out bytes.Buffer
	n, err := EmitLines(strings.NewReader(input), &out, []int{1, 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 emitted, got %d", n)
	}
	if expected := long + "\n" + long + "\n"; out.String() != expected {
		t.Errorf("Long lines not copied intact: got %d bytes, expected %d", out.Len(), len(expected))
	}
}

func TestEmitLinesStopsAfterLastIndex(t *testing.T) {
	r := &countingReader{r: strings.NewReader(strings.Repeat("line\n", 100000))}

	var out bytes.Buffer
	if _, err := EmitLines(r, &out, []int{0}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.n >= 500000 {
		t.Errorf("Expected early stop, read all %d bytes", r.n)
	}
}

func TestEmitLinesInconsistentInput(t *testing.T) {
	var out bytes.Buffer
	n, err := EmitLines(strings.NewReader("A\nB\nC\n"), &out, []int{1, 5})
	if !errors.Is(err, ErrInconsistentInput) {
		t.Fatalf("Expected ErrInconsistentInput, got: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 emitted before failure, got %d", n)
	}
	if out.String() != "B\n" {
		t.Errorf("Expected %q, got %q", "B\n", out.String())
	}
}

func TestEmitLinesRejectsUnsortedIndices(t *testing.T) {
	tests := [][]int{
		{3, 1},
		{1, 1},
	}
	for _, indices := range tests {
		var out bytes.Buffer
		_, err := EmitLines(strings.NewReader("A\nB\nC\nD\n"), &out, indices)
		if !errors.Is(err, ErrIndicesUnsorted) {
			t.Errorf("%v: expected ErrIndicesUnsorted, got: %v", indices, err)
		}
		if out.Len() != 0 {
			t.Errorf("%v: expected no output, got %q", indices, out.String())
		}
	}
}

func TestEmitLinesWriteError(t *testing.T) {
	writeErr := errors.New("disk full")
	_, err := EmitLines(strings.NewReader("A\nB\n"), failingWriter{err: writeErr}, []int{0})
	if !errors.Is(err, writeErr) {
		t.Fatalf("Expected write error, got: %v", err)
	}
}

type countingReader struct {
	r *strings.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

type failingWriter struct {
	err error
}

func (f failingWriter) Write(p []byte) (int, error) {
	return 0, f.err
}
