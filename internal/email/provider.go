package email

// Provider is the outgoing-mail port. The outbox dispatcher is its only
// production caller; tests substitute a recording fake.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers the result.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}
