package process

import "context"

// FakeRunner is a test double for Runner, recording invocations instead of
// spawning real shells.
type FakeRunner struct {
	RunFunc   func(ctx context.Context, command string) error
	SpawnFunc func(command string) error

	RunCalls   []string
	SpawnCalls []string
}

// NewFakeRunner returns a FakeRunner that records calls and succeeds by
// default.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// Run records command and delegates to RunFunc if set.
func (f *FakeRunner) Run(ctx context.Context, command string) error {
	f.RunCalls = append(f.RunCalls, command)
	if f.RunFunc != nil {
		return f.RunFunc(ctx, command)
	}
	return nil
}

// Spawn records command and delegates to SpawnFunc if set.
func (f *FakeRunner) Spawn(command string) error {
	f.SpawnCalls = append(f.SpawnCalls, command)
	if f.SpawnFunc != nil {
		return f.SpawnFunc(command)
	}
	return nil
}
