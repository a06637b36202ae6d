// Package notify simulates email delivery; real sending is out of scope.
package notify

import (
	"context"

	"school-link-go/internal/domain/directory"
	"school-link-go/pkg/logger"
)

type Mailer interface {
	SendGroupMessage(ctx context.Context, groupID, title string, recipients []directory.User) error
}

// ConsoleMailer logs the send instead of delivering it.
type ConsoleMailer struct {
	log logger.Logger
}

func NewConsoleMailer(log logger.Logger) *ConsoleMailer {
	return &ConsoleMailer{log: log}
}

func (m *ConsoleMailer) SendGroupMessage(_ context.Context, groupID, title string, recipients []directory.User) error {
	m.log.Info("mail: simulated group send",
		"group_id", groupID,
		"title", title,
		"recipients", len(recipients),
	)
	return nil
}
