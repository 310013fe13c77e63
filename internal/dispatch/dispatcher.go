// Package dispatch maps a (language, task, setting) triple onto one of the
// per-setting inference scripts and runs it as a subprocess.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"vlures-harness/internal/benchmark"
)

// CredentialVar is the environment variable the inference scripts read the
// model API key from. The dispatcher receives the credential explicitly and
// injects it into the subprocess environment under this name.
const CredentialVar = "OPENAI_API_KEY"

// ErrMissingCredential reports that no API credential was supplied. The
// dispatcher refuses to invoke a collaborator that is guaranteed to fail.
var ErrMissingCredential = errors.New("missing API credential: " + CredentialVar + " must be set and non-empty")

// ResolutionError reports that the setting could not be mapped to a runnable
// script, either because the setting name is unrecognized or because the
// resolved script file does not exist.
type ResolutionError struct {
	Setting string
	Path    string
	Reason  string
}

func (e *ResolutionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unrecognized setting %q: %s", e.Setting, e.Reason)
	}
	return fmt.Sprintf("cannot resolve setting %q to %s: %s", e.Setting, e.Path, e.Reason)
}

// CollaboratorError reports a non-zero exit from the invoked script. The
// cause is opaque to the dispatcher; only the exit status is propagated.
type CollaboratorError struct {
	Script   string
	ExitCode int
	Err      error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("script %s exited with status %d", e.Script, e.ExitCode)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

type Dispatcher struct {
	// ScriptsDir is the directory holding the per-setting scripts,
	// "scripts" by default.
	ScriptsDir string

	// Credential is the model API key forwarded to the subprocess via
	// CredentialVar. Required.
	Credential string

	// Interpreter runs the resolved script, "python3" by default.
	Interpreter string

	// Stdout and Stderr receive the banners and the subprocess output.
	// Defaults to os.Stdout / os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (d *Dispatcher) scriptsDir() string {
	if d.ScriptsDir == "" {
		return "scripts"
	}
	return d.ScriptsDir
}

func (d *Dispatcher) interpreter() string {
	if d.Interpreter == "" {
		return "python3"
	}
	return d.Interpreter
}

func (d *Dispatcher) stdout() io.Writer {
	if d.Stdout == nil {
		return os.Stdout
	}
	return d.Stdout
}

func (d *Dispatcher) stderr() io.Writer {
	if d.Stderr == nil {
		return os.Stderr
	}
	return d.Stderr
}

// ResolveScript maps a setting name onto its script path using the fixed
// run_<setting>.py convention and verifies the file exists.
func (d *Dispatcher) ResolveScript(setting string) (string, error) {
	if !benchmark.Setting(setting).Valid() {
		return "", &ResolutionError{Setting: setting, Reason: fmt.Sprintf("known settings are %v", benchmark.Settings)}
	}

	path := filepath.Join(d.scriptsDir(), fmt.Sprintf("run_%s.py", setting))
	if _, err := os.Stat(path); err != nil {
		return "", &ResolutionError{Setting: setting, Path: path, Reason: "script not found"}
	}
	return path, nil
}

// Run validates the credential, resolves the setting to a script, and runs it
// with --language and --task. Language and task number are forwarded as-is:
// the scripts own their validation, and the dispatcher does not second-guess
// them. The subprocess exit status is surfaced as a CollaboratorError.
func (d *Dispatcher) Run(ctx context.Context, language, taskNumber, setting string) error {
	if d.Credential == "" {
		return ErrMissingCredential
	}

	script, err := d.ResolveScript(setting)
	if err != nil {
		return err
	}

	fmt.Fprintln(d.stdout(), "=====================================================")
	fmt.Fprintf(d.stdout(), "Running %s | language=%s task=%s setting=%s\n", script, language, taskNumber, setting)
	fmt.Fprintln(d.stdout(), "=====================================================")

	cmd := exec.CommandContext(ctx, d.interpreter(), script, "--language", language, "--task", taskNumber)
	cmd.Env = append(os.Environ(), CredentialVar+"="+d.Credential)
	cmd.Stdout = d.stdout()
	cmd.Stderr = d.stderr()

	runErr := cmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			fmt.Fprintf(d.stdout(), "Failed language=%s task=%s setting=%s status=%d\n", language, taskNumber, setting, exitErr.ExitCode())
			return &CollaboratorError{Script: script, ExitCode: exitErr.ExitCode(), Err: runErr}
		}
		return fmt.Errorf("failed to run %s: %w", script, runErr)
	}

	fmt.Fprintf(d.stdout(), "Completed language=%s task=%s setting=%s\n", language, taskNumber, setting)
	return nil
}

// ExitCode maps a Run error onto the process exit status: collaborator
// failures mirror the script's own status, every dispatcher-side failure
// is status 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var collab *CollaboratorError
	if errors.As(err, &collab) {
		return collab.ExitCode
	}
	return 1
}
