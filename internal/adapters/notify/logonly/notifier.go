// Package logonly es el notifier de desarrollo: loguea en vez de enviar.
package logonly

import (
	"context"

	"zoo-management/internal/platform/logger"
	"zoo-management/internal/ports/notify"
)

type Notifier struct {
	log logger.Logger
}

func New(log logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{log: log}
}

func (n *Notifier) Send(_ context.Context, msg notify.Message) error {
	n.log.Info("mail (not sent)", map[string]any{
		"to":      msg.To,
		"subject": msg.Subject,
		"body":    msg.Body,
		"html":    msg.IsHTML,
		"sender":  msg.SenderTitle,
	})
	return nil
}
