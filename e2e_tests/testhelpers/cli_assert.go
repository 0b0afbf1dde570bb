package testhelpers

import (
	"strings"
	"testing"
)

// AssertCLIOutput compares the actual output with the expected lines.
// If they don't match, it fails the test with a detailed message.
func AssertCLIOutput(t testing.TB, actual string, expectedLines []string) {
	t.Helper()
	expectedOutput := strings.Join(expectedLines, "\n") + "\n"
	if len(expectedLines) == 0 {
		expectedOutput = ""
	}
	if actual != expectedOutput {
		t.Fatalf(
			"CLI output mismatch.\n"+
				"===== Start EXPECTED output =====\n%s===== End EXPECTED output =====\n"+
				"===== Start ACTUAL output =====\n%s===== End ACTUAL output =====\n",
			expectedOutput,
			actual,
		)
	}
}

// AssertExitCode fails the test when the CLI exited with an unexpected code.
func AssertExitCode(t testing.TB, result CLIResult, expected int) {
	t.Helper()
	if result.ExitCode != expected {
		t.Fatalf(
			"Exit code mismatch.\n"+
				"Expected: %d\n"+
				"Actual:   %d\n"+
				"===== Start STDERR =====\n%s===== End STDERR =====\n",
			expected,
			result.ExitCode,
			result.Stderr,
		)
	}
}

// AssertLineCount compares the number of newline-terminated lines in output
// with the expected count.
func AssertLineCount(t testing.TB, output string, expected int) {
	t.Helper()
	actual := strings.Count(output, "\n")
	if actual != expected {
		t.Fatalf(
			"Line count mismatch.\n"+
				"Expected: %d lines\n"+
				"Actual:   %d lines\n",
			expected,
			actual,
		)
	}
}

// AssertSubsequence checks that every sampled line occurs in source and
// that they occur in the same relative order. Lines in source are assumed
// distinct.
func AssertSubsequence(t testing.TB, sampled, source []string) {
	t.Helper()

	pos := make(map[string]int, len(source))
	for i, line := range source {
		pos[line] = i
	}

	last := -1
	for _, line := range sampled {
		i, ok := pos[line]
		if !ok {
			t.Fatalf("Sampled line %q does not occur in the source", line)
			return
		}
		if i <= last {
			t.Fatalf(
				"Sampled lines are not in source order.\n"+
					"Line %q (source index %d) follows source index %d\n",
				line, i, last,
			)
			return
		}
		last = i
	}
}

// AssertContainsInOrder checks if the output contains all expected strings in the given order.
// The strings don't need to be consecutive, but they must appear in the specified order.
// If they don't appear in order, it fails the test with a detailed message.
func AssertContainsInOrder(t testing.TB, output string, expectedStrings []string) {
	t.Helper()

	if len(expectedStrings) == 0 {
		return // Nothing to check
	}

	lines := strings.Split(output, "\n")
	lineIndex := 0
	expectedIndex := 0

	for lineIndex < len(lines) && expectedIndex < len(expectedStrings) {
		if strings.Contains(lines[lineIndex], expectedStrings[expectedIndex]) {
			expectedIndex++
		}
		lineIndex++
	}

	if expectedIndex < len(expectedStrings) {
		// Find which strings were not found
		notFound := expectedStrings[expectedIndex:]

		t.Fatalf(
			"Output does not contain all expected strings in order.\n"+
				"Missing strings starting from: %q\n"+
				"Not found: %v\n"+
				"===== Start OUTPUT =====\n%s\n===== End OUTPUT =====\n",
			expectedStrings[expectedIndex],
			notFound,
			output,
		)
	}
}

// SplitLines splits newline-terminated output into its lines.
func SplitLines(output string) []string {
	if output == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(output, "\n"), "\n")
}
