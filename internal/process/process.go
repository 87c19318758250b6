// Package process executes the daemon's shell hooks: ExecBefore commands
// (synchronous, wait for exit) and ExecAfter / wallpaper set-commands
// (asynchronous, fire-and-forget). Both forms run the command through
// "bash -c" exactly as the original daemon's system()/spawn() helpers did.
package process

import (
	"context"
	"os/exec"
)

// Runner abstracts command execution so callers (ExecBefore/ExecAfter/
// set-command dispatch) can be tested without spawning real shells.
type Runner interface {
	// Run executes command synchronously and waits for it to exit.
	Run(ctx context.Context, command string) error
	// Spawn launches command and returns immediately without waiting.
	Spawn(command string) error
}

// ShellRunner is the production Runner, executing commands via "bash -c".
type ShellRunner struct{}

// NewShellRunner returns a Runner backed by real bash subprocesses.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

// Run starts command and blocks until it exits, discarding stdout/stderr.
func (r *ShellRunner) Run(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	return cmd.Run()
}

// Spawn starts command and does not wait for it to finish. It takes no
// context, so no cancellation kills an already-launched set-command or
// ExecAfter hook.
func (r *ShellRunner) Spawn(command string) error {
	cmd := exec.Command("bash", "-c", command)
	return cmd.Start()
}
