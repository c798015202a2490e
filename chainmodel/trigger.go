package chainmodel

import "strconv"

// TriggerType names the notifier back-end a Trigger invokes. Concrete
// back-ends are out of scope; only the invocation contract is implemented.
type TriggerType string

const (
	TriggerTypeSlack   TriggerType = "slack"
	TriggerTypeWebhook TriggerType = "webhook"
	TriggerTypeScript  TriggerType = "script"
)

// Trigger is a named destination for a MonitorMatch.
type Trigger struct {
	Name   string            `json:"name"`
	Type   TriggerType       `json:"trigger_type"`
	Config map[string]string `json:"config"`
}

// TemplateBody returns the body template to run variable substitution over:
// the "body" config entry, or "" when unset, whatever the trigger type.
func (t Trigger) TemplateBody() string {
	return t.Config["body"]
}

// TemplateTitle returns the title template, empty for trigger types without one.
func (t Trigger) TemplateTitle() string {
	return t.Config["title"]
}

// TimeoutMs returns the per-trigger script timeout from the "timeout_ms"
// config entry, 0 if unset or not a number; the trigger type is not checked.
func (t Trigger) TimeoutMs() uint64 {
	ms, err := strconv.ParseUint(t.Config["timeout_ms"], 10, 64)
	if err != nil {
		return 0
	}
	return ms
}
