package testhelpers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subsample/sampler"
)

// BaseE2ETest encapsulates common functionality for e2e tests
type BaseE2ETest struct {
	*testing.T
	Dir string
}

// NewBaseE2ETest creates a new BaseE2ETest with its own scratch directory
func NewBaseE2ETest(t *testing.T) *BaseE2ETest {
	t.Helper()
	return &BaseE2ETest{
		T:   t,
		Dir: t.TempDir(),
	}
}

// Path returns name joined to the scratch directory
func (b *BaseE2ETest) Path(name string) string {
	return filepath.Join(b.Dir, name)
}

// CreateEpireads creates n distinct epiread lines
func (b *BaseE2ETest) CreateEpireads(n int, prefix string) []string {
	b.Helper()
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s_%06d\t%d\tACGT", prefix, i, i*10)
	}
	return lines
}

// WriteEpireads writes lines, each newline-terminated, to name in the
// scratch directory and returns its path. A .gz or .sz name is compressed.
func (b *BaseE2ETest) WriteEpireads(name string, lines []string) string {
	b.Helper()
	path := b.Path(name)
	out, err := sampler.CreateOutput(path, io.Discard)
	if err != nil {
		b.Fatalf("Failed to create %s: %v", path, err)
	}
	for _, line := range lines {
		if _, err := out.WriteString(line + "\n"); err != nil {
			b.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	if err := out.Close(); err != nil {
		b.Fatalf("Failed to close %s: %v", path, err)
	}
	return path
}

// WriteRaw writes content verbatim to name in the scratch directory
func (b *BaseE2ETest) WriteRaw(name, content string) string {
	b.Helper()
	path := b.Path(name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		b.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadLines reads path, decompressing by extension, and splits it into lines
func (b *BaseE2ETest) ReadLines(path string) []string {
	b.Helper()
	in, err := sampler.OpenInput(path)
	if err != nil {
		b.Fatalf("Failed to open %s: %v", path, err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		b.Fatalf("Failed to read %s: %v", path, err)
	}
	return SplitLines(string(data))
}

// RunSubsample runs the CLI with args and fails the test if it cannot run
func (b *BaseE2ETest) RunSubsample(args ...string) CLIResult {
	b.Helper()
	result, err := RunCLICommand(args)
	if err != nil {
		b.Fatalf("Error running CLI command %s: %v", strings.Join(args, " "), err)
	}
	return result
}
