package notify

import "context"

// Message es un correo saliente.
type Message struct {
	To          string
	Subject     string
	Body        string
	IsHTML      bool
	SenderTitle string
}

// Notifier entrega mensajes. Las implementaciones pueden bloquear (HTTP),
// quien llama decide si despacharlo en background.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
