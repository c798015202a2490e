// Package chaintrigger implements TriggerDispatcher (§4.8): resolving a
// monitor's trigger names to their definitions and invoking a notifier
// back-end with a variable bag derived from the match.
package chaintrigger

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/util"
	"github.com/goware/superr"
)

var (
	// ErrTriggerNotFound is returned when a monitor references a trigger
	// name that no longer resolves in the repository (§4.8).
	ErrTriggerNotFound = errors.New("chaintrigger: trigger not found")

	// ErrNotifyFailed wraps any error a Notifier returns.
	ErrNotifyFailed = errors.New("chaintrigger: notify failed")
)

// Notifier invokes one trigger's concrete back-end (Slack/webhook/script/...)
// with the match's unsubstituted variable bag; substituting it into the
// trigger's body and title templates is left to the back-end (LogNotifier
// does it with FormatTemplate). Concrete back-ends are out
// of scope (spec.md §1); only this invocation contract is implemented.
type Notifier interface {
	Notify(ctx context.Context, trigger chainmodel.Trigger, vars map[string]string) error
}

// TriggerRepository resolves a trigger name to its full definition.
type TriggerRepository interface {
	GetTrigger(name string) (chainmodel.Trigger, bool)
}

// Options configures the optional side channels a Dispatcher reports
// through.
type Options struct {
	// Alerter receives a message for every trigger name that fails to
	// resolve or notify; Dispatch itself still returns the joined error.
	Alerter util.Alerter
}

var DefaultOptions = Options{
	Alerter: util.NoopAlerter(),
}

// Dispatcher receives MonitorMatch values and fires each of the owning
// monitor's referenced triggers in turn.
type Dispatcher struct {
	triggers TriggerRepository
	notifier Notifier
	opts     Options
}

func NewDispatcher(triggers TriggerRepository, notifier Notifier, opts ...Options) *Dispatcher {
	o := DefaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Dispatcher{triggers: triggers, notifier: notifier, opts: o}
}

// Dispatch iterates monitor's trigger names, resolving and notifying each
// in turn. A failure on one trigger name — a missing definition or a
// notifier error — is isolated to that name and does not stop the
// remaining names from firing (notifier failures never block checkpoint
// advancement, since the match has already been observed by the time
// Dispatch runs); every failure encountered is joined into the returned
// error.
func (d *Dispatcher) Dispatch(ctx context.Context, monitor chainmodel.Monitor, match chainmodel.MonitorMatch) error {
	vars := BuildVariables(monitor, match)

	var errs []error
	for _, name := range monitor.Triggers {
		trigger, ok := d.triggers.GetTrigger(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q (monitor %q)", ErrTriggerNotFound, name, monitor.Name))
			d.opts.Alerter.Alert(ctx, "chaintrigger: trigger %q not found (monitor %q)", name, monitor.Name)
			continue
		}
		if err := d.notifier.Notify(ctx, trigger, vars); err != nil {
			errs = append(errs, superr.Wrap(ErrNotifyFailed, fmt.Errorf("trigger %q: %w", name, err)))
			d.opts.Alerter.Alert(ctx, "chaintrigger: notify failed for trigger %q (monitor %q): %v", name, monitor.Name, err)
		}
	}
	return errors.Join(errs...)
}
