package testhelpers

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"sync"

	"subsample/cmd"
)

// CLIResult is what a single CLI invocation produced
type CLIResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

var (
	// os.Stdout and os.Stderr are process-wide, so invocations are serialized
	cliMu sync.Mutex

	tsRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(Z|[+-]\d{2}:\d{2})`)
)

// RunCLICommand sets up the CLI arguments, executes the CLI tool through
// cmd.Execute, captures stdout and stderr separately and replaces log
// timestamps on stderr with "[TIMESTAMP]". Stdout is returned untouched
// because it carries the sampled records.
func RunCLICommand(args []string) (CLIResult, error) {
	cliMu.Lock()
	defer cliMu.Unlock()

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = append([]string{"subsample"}, args...)

	// Capture stdout using os.Pipe.
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return CLIResult{}, err
	}
	oldOut := os.Stdout
	os.Stdout = wOut

	// Capture stderr using os.Pipe.
	rErr, wErr, err := os.Pipe()
	if err != nil {
		os.Stdout = oldOut
		wOut.Close()
		rOut.Close()
		return CLIResult{}, err
	}
	oldErr := os.Stderr
	os.Stderr = wErr

	// Drain both pipes while the command runs so large samples cannot block it.
	var bufOut, bufErr bytes.Buffer
	var wg sync.WaitGroup
	var outErr, errErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, outErr = io.Copy(&bufOut, rOut)
	}()
	go func() {
		defer wg.Done()
		_, errErr = io.Copy(&bufErr, rErr)
	}()

	// Execute the CLI command.
	code := cmd.Execute()

	// Restore os.Stdout and os.Stderr.
	wOut.Close()
	wErr.Close()
	os.Stdout = oldOut
	os.Stderr = oldErr

	wg.Wait()
	rOut.Close()
	rErr.Close()
	if outErr != nil {
		return CLIResult{}, outErr
	}
	if errErr != nil {
		return CLIResult{}, errErr
	}

	return CLIResult{
		Stdout:   bufOut.String(),
		Stderr:   tsRe.ReplaceAllString(bufErr.String(), "[TIMESTAMP]"),
		ExitCode: code,
	}, nil
}
