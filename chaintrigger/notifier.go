package chaintrigger

import (
	"context"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/goware/logger"
)

// LogNotifier is a Notifier that logs the substituted trigger body instead
// of calling out to a concrete Slack/Discord/webhook/script back-end (those
// are out of scope per spec.md §1). It is the notifier cmd/chainwatch wires
// into every dispatcher.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, trigger chainmodel.Trigger, vars map[string]string) error {
	title := FormatTemplate(trigger.TemplateTitle(), vars)
	body := FormatTemplate(trigger.TemplateBody(), vars)
	n.log.Warnf("chaintrigger: [%s/%s] %s - %s", trigger.Name, trigger.Type, title, body)
	return nil
}
