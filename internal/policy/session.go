// Package policy judges legal documents and site markup through multi-turn
// sessions with a hosted reasoning assistant.
package policy

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// RunStatus is the coarse state of one assistant run.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// RoleUser is the author of every turn this package posts.
const RoleUser = "user"

// State is the position of one evaluation in its session lifecycle.
type State string

const (
	StateCreated          State = "created"
	StateExtractionFailed State = "extraction_failed"
	StateRunInProgress    State = "run_in_progress"
	StateRunCompleted     State = "run_completed"
	StateRunFailed        State = "run_failed"
)

// A completed run may start another cycle on the same session; failed runs
// and extraction failures are terminal.
var transitions = map[State][]State{
	StateCreated:       {StateExtractionFailed, StateRunInProgress},
	StateRunInProgress: {StateRunCompleted, StateRunFailed},
	StateRunCompleted:  {StateRunInProgress},
}

// machine tracks one evaluation's state and the path it took.
type machine struct {
	state State
	trail []State
}

func newMachine() *machine {
	return &machine{state: StateCreated, trail: []State{StateCreated}}
}

func (m *machine) to(next State) error {
	if !slices.Contains(transitions[m.state], next) {
		return fmt.Errorf("invalid session transition %s -> %s", m.state, next)
	}
	m.state = next
	m.trail = append(m.trail, next)
	return nil
}

// runner drives run cycles on one session.
type runner struct {
	conv         Conversation
	sessionID    string
	pollInterval time.Duration
	machine      *machine
}

// cycle posts content, starts a run and polls it until it leaves
// RunInProgress. The reply is empty when the run failed. Polling stops as
// soon as ctx is done, so the caller's deadline bounds the loop.
func (r *runner) cycle(ctx context.Context, content string) (string, error) {
	if err := r.conv.PostTurn(ctx, r.sessionID, RoleUser, content); err != nil {
		return "", fmt.Errorf("post turn: %w", err)
	}
	runID, err := r.conv.StartRun(ctx, r.sessionID)
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}
	if err := r.machine.to(StateRunInProgress); err != nil {
		return "", err
	}

	for r.machine.state == StateRunInProgress {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		status, err := r.conv.PollRun(ctx, r.sessionID, runID)
		if err != nil {
			return "", fmt.Errorf("poll run: %w", err)
		}

		switch status {
		case RunCompleted:
			err = r.machine.to(StateRunCompleted)
		case RunFailed:
			err = r.machine.to(StateRunFailed)
		default:
			err = r.wait(ctx)
		}
		if err != nil {
			return "", err
		}
	}

	if r.machine.state == StateRunFailed {
		return "", nil
	}
	reply, err := r.conv.LatestMessage(ctx, r.sessionID)
	if err != nil {
		return "", fmt.Errorf("read reply: %w", err)
	}
	return reply, nil
}

func (r *runner) failed() bool {
	return r.machine.state == StateRunFailed
}

func (r *runner) wait(ctx context.Context) error {
	if r.pollInterval <= 0 {
		return nil
	}
	timer := time.NewTimer(r.pollInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
