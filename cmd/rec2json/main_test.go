package main

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"
)

// runRec2JSON executes the rec2json program using 'go run' with the given
// args and input
func runRec2JSON(t *testing.T, input string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmdArgs := append([]string{"run", "."}, args...)
	cmd := exec.Command("go", cmdArgs...)
	cmd.Stdin = strings.NewReader(input)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run rec2json: %v", err)
		}
	}

	return stdout, stderr, exitCode
}

// TestRec2JSON_Examples tests complete runs over stdin/stdout
func TestRec2JSON_Examples(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mapping",
			input: "a: 1\nb: 2\n",
			want:  `{"a": "1", "b": "2"}` + "\n",
		},
		{
			name:  "list",
			input: "one\ntwo\nthree\n",
			want:  `["one", "two", "three"]` + "\n",
		},
		{
			name:  "mixed kinds",
			input: "a: 1\nitem\n",
			want:  `{"a": "1"}` + "\n" + `["item"]` + "\n",
		},
		{
			name:  "comments and blank lines only",
			input: "# nothing\n\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, exitCode := runRec2JSON(t, tt.input, "-nocolors")
			if exitCode != 0 {
				t.Fatalf("unexpected exit code %d, stderr: %s", exitCode, stderr)
			}
			if stdout != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", stdout, tt.want)
			}
		})
	}
}

// TestRec2JSON_RejectsArguments tests that positional arguments are an error
func TestRec2JSON_RejectsArguments(t *testing.T) {
	_, stderr, exitCode := runRec2JSON(t, "", "surprise")
	if exitCode == 0 {
		t.Fatal("expected a non-zero exit code")
	}
	if !strings.Contains(stderr, "unexpected argument") {
		t.Errorf("expected an unexpected-argument message, got: %s", stderr)
	}
}
