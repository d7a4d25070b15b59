package email

import (
	"sync"

	"gigbook_backend/internal/logger"
)

// MockProvider - провайдер по умолчанию для разработки и тестов:
// ничего не отправляет, пишет в лог и копит отправленное.
type MockProvider struct {
	mu   sync.Mutex
	Sent []Email
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Sent = append(p.Sent, *email)
	logger.Info("mock email sent",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *MockProvider) Validate() error { return nil }

func (p *MockProvider) Close() error { return nil }
