package email

// Email - исходящее письмо
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет письмо
	Send(email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}
