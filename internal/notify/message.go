package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"
)

// Message is one transactional email. When Body is empty it is rendered from Template and Data.
type Message struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Body     string         `json:"body,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var (
	ErrNoRecipient     = errors.New("email recipient is required")
	ErrUnknownTemplate = errors.New("unknown email template")
)

const (
	TemplateOrderStatus         = "order_status"
	TemplatePickupReminder      = "pickup_reminder"
	TemplateApplicationAccepted = "application_accepted"
	TemplateApplicationRejected = "application_rejected"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "order_status"}}Hello {{.name}},
the state of your order{{with .order_id}} #{{.}}{{end}} has changed.
{{with .message}}{{.}}
{{end}}
Solidarity Purchase Group{{end}}

{{define "pickup_reminder"}}Hello {{.name}},
your order{{with .order_id}} #{{.}}{{end}} is ready to be picked up at the shop.
{{with .message}}{{.}}
{{end}}
Solidarity Purchase Group{{end}}

{{define "application_accepted"}}Hello {{.name}},
your application as a farmer for {{.company}} has been accepted.
You can now log in with the email and password you applied with.

Solidarity Purchase Group{{end}}

{{define "application_rejected"}}Hello {{.name}},
we are sorry, your application as a farmer for {{.company}} has been rejected.

Solidarity Purchase Group{{end}}
`))

// Render fills msg.Body from its template when the body is empty.
func Render(msg Message) (Message, error) {
	if msg.To == "" {
		return msg, ErrNoRecipient
	}
	if msg.Body != "" || msg.Template == "" {
		return msg, nil
	}

	if templates.Lookup(msg.Template) == nil {
		return msg, fmt.Errorf("%w: %s", ErrUnknownTemplate, msg.Template)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, msg.Template, msg.Data); err != nil {
		return msg, fmt.Errorf("render %s: %w", msg.Template, err)
	}
	msg.Body = buf.String()
	return msg, nil
}
