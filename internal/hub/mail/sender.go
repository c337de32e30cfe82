package mail

import "context"

// Sender delivers a plain-text message to a single recipient. The auth flows
// depend on this interface only; the SMTP implementation lives alongside it
// and tests substitute a fake.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
