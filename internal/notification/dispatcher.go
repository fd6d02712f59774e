package notification

import "context"

// Message mirrors the template shape the original system handed to its mail
// provider: a single recipient, a configured sender, and an HTML body.
type Message struct {
	To      string
	From    string
	Subject string
	HTML    string
}

//go:generate mockgen -source=dispatcher.go -destination=mock/dispatcher_mock.go -package=mock
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}
