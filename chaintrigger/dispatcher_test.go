package chaintrigger_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/chaintrigger"
	"github.com/stretchr/testify/require"
)

type recordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *recordingAlerter) Alert(ctx context.Context, format string, v ...interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, fmt.Sprintf(format, v...))
}

type fakeRepo struct {
	triggers map[string]chainmodel.Trigger
}

func (r fakeRepo) GetTrigger(name string) (chainmodel.Trigger, bool) {
	t, ok := r.triggers[name]
	return t, ok
}

type recordingNotifier struct {
	calls []chainmodel.Trigger
	vars  []map[string]string
	err   error
}

func (n *recordingNotifier) Notify(ctx context.Context, trigger chainmodel.Trigger, vars map[string]string) error {
	n.calls = append(n.calls, trigger)
	n.vars = append(n.vars, vars)
	return n.err
}

func TestDispatchInvokesEachTrigger(t *testing.T) {
	repo := fakeRepo{triggers: map[string]chainmodel.Trigger{
		"slack_ops": {Name: "slack_ops", Type: chainmodel.TriggerTypeSlack},
		"webhook_x": {Name: "webhook_x", Type: chainmodel.TriggerTypeWebhook},
	}}
	notifier := &recordingNotifier{}
	d := chaintrigger.NewDispatcher(repo, notifier)

	monitor := chainmodel.Monitor{Name: "usdc_transfers", Triggers: []string{"slack_ops", "webhook_x"}}
	match := chainmodel.MonitorMatch{
		MonitorName:     "usdc_transfers",
		NetworkSlug:      "ethereum_mainnet",
		TransactionHash: "0xdead",
		BlockNumber:     100,
		MatchedConditions: []chainmodel.MatchedCondition{
			{Kind: "event", Signature: "Transfer(address,address,uint256)", Params: []chainmodel.Param{
				{Name: "value", Value: "42"},
			}},
		},
	}

	err := d.Dispatch(context.Background(), monitor, match)
	require.NoError(t, err)
	require.Len(t, notifier.calls, 2)
	require.Equal(t, "slack_ops", notifier.calls[0].Name)
	require.Equal(t, "webhook_x", notifier.calls[1].Name)
	require.Equal(t, "42", notifier.vars[0]["value"])
	require.Equal(t, "42", notifier.vars[0]["params.value"])
	require.Equal(t, "0xdead", notifier.vars[0]["transaction_hash"])
}

func TestDispatchUnknownTriggerReturnsNotFound(t *testing.T) {
	repo := fakeRepo{triggers: map[string]chainmodel.Trigger{}}
	d := chaintrigger.NewDispatcher(repo, &recordingNotifier{})

	monitor := chainmodel.Monitor{Name: "m", Triggers: []string{"missing"}}
	err := d.Dispatch(context.Background(), monitor, chainmodel.MonitorMatch{})
	require.ErrorIs(t, err, chaintrigger.ErrTriggerNotFound)
}

func TestDispatchNotifierFailureWraps(t *testing.T) {
	repo := fakeRepo{triggers: map[string]chainmodel.Trigger{"t": {Name: "t"}}}
	boom := errors.New("boom")
	d := chaintrigger.NewDispatcher(repo, &recordingNotifier{err: boom})

	monitor := chainmodel.Monitor{Name: "m", Triggers: []string{"t"}}
	err := d.Dispatch(context.Background(), monitor, chainmodel.MonitorMatch{})
	require.ErrorIs(t, err, chaintrigger.ErrNotifyFailed)
	require.ErrorIs(t, err, boom)
}

func TestDispatchContinuesPastMissingTrigger(t *testing.T) {
	repo := fakeRepo{triggers: map[string]chainmodel.Trigger{
		"slack_ops": {Name: "slack_ops"},
	}}
	notifier := &recordingNotifier{}
	d := chaintrigger.NewDispatcher(repo, notifier)

	monitor := chainmodel.Monitor{Name: "m", Triggers: []string{"missing", "slack_ops"}}
	err := d.Dispatch(context.Background(), monitor, chainmodel.MonitorMatch{})
	require.ErrorIs(t, err, chaintrigger.ErrTriggerNotFound)
	require.Len(t, notifier.calls, 1) // slack_ops still fires despite the earlier missing name
}

func TestDispatchSurfacesFailuresThroughAlerter(t *testing.T) {
	repo := fakeRepo{triggers: map[string]chainmodel.Trigger{"t": {Name: "t"}}}
	boom := errors.New("boom")
	alerter := &recordingAlerter{}
	d := chaintrigger.NewDispatcher(repo, &recordingNotifier{err: boom}, chaintrigger.Options{Alerter: alerter})

	monitor := chainmodel.Monitor{Name: "m", Triggers: []string{"missing", "t"}}
	err := d.Dispatch(context.Background(), monitor, chainmodel.MonitorMatch{})
	require.Error(t, err)
	require.Len(t, alerter.messages, 2) // one for the missing trigger, one for the notify failure
}

func TestFormatTemplate(t *testing.T) {
	vars := map[string]string{"value": "42", "monitor_name": "usdc_transfers"}
	got := chaintrigger.FormatTemplate("Monitor ${monitor_name} saw value ${value}, unknown ${nope}", vars)
	require.Equal(t, "Monitor usdc_transfers saw value 42, unknown ${nope}", got)
}
