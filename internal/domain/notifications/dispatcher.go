// Package notifications arma los avisos de alta/baja y los despacha en
// background. Un fallo de entrega se loguea y nunca llega a quien llamó.
package notifications

import (
	"context"
	"strings"
	"sync"
	"time"

	"zoo-management/internal/platform/logger"
	"zoo-management/internal/ports/notify"
)

const (
	DefaultSenderTitle = "Zoo System"
	DefaultTimeout     = 15 * time.Second
)

type Config struct {
	Recipient   string // destinatario fijo de los avisos de alta/baja
	SenderTitle string
	Timeout     time.Duration
}

// Sink es lo que usan los servicios de dominio para avisar altas y bajas.
type Sink interface {
	Notify(t Template)
}

type Dispatcher struct {
	notifier notify.Notifier
	log      logger.Logger
	cfg      Config
	wg       sync.WaitGroup
}

func NewDispatcher(n notify.Notifier, log logger.Logger, cfg Config) *Dispatcher {
	if strings.TrimSpace(cfg.SenderTitle) == "" {
		cfg.SenderTitle = DefaultSenderTitle
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{notifier: n, log: log, cfg: cfg}
}

// Notify manda el aviso al destinatario fijo.
func (d *Dispatcher) Notify(t Template) {
	if d == nil {
		return
	}
	d.SendTo(d.cfg.Recipient, t)
}

// SendTo despacha sin bloquear. El contexto del request no se propaga:
// el envío sigue aunque el cliente ya haya recibido la respuesta.
func (d *Dispatcher) SendTo(to string, t Template) {
	if d == nil || d.notifier == nil {
		return
	}
	if strings.TrimSpace(to) == "" {
		d.log.Warn("notification skipped: no recipient", map[string]any{"subject": t.Subject})
		return
	}

	msg := notify.Message{
		To:          to,
		Subject:     t.Subject,
		Body:        t.Body,
		IsHTML:      t.IsHTML,
		SenderTitle: d.cfg.SenderTitle,
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
		defer cancel()

		if err := d.notifier.Send(ctx, msg); err != nil {
			d.log.Error("notification dispatch failed", map[string]any{
				"to":      msg.To,
				"subject": msg.Subject,
				"error":   err,
			})
			return
		}
		d.log.Debug("notification sent", map[string]any{"to": msg.To, "subject": msg.Subject})
	}()
}

// Wait bloquea hasta que terminen los envíos en curso (tests, shutdown).
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}
