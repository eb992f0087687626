package email

import (
	"jobportal_backend/internal/logger"
)

// NoopProvider is used when email delivery is disabled. It only logs.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(to, subject, htmlBody string) error {
	logger.Debug("email delivery disabled, dropping message", "to", to, "subject", subject)
	return nil
}
