package email

import "log/slog"

// LogProvider writes outgoing mail to the log instead of SMTP. Used when
// no SMTP host is configured (local development).
type LogProvider struct {
	templates *TemplateManager
}

func NewLogProvider() (Provider, error) {
	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}
	return &LogProvider{templates: tm}, nil
}

func (p *LogProvider) Send(email *Email) error {
	slog.Info("email (log provider)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *LogProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	if _, err := p.templates.Render(templateName, data); err != nil {
		return err
	}
	slog.Info("email (log provider)", "to", to, "subject", subject, "template", templateName)
	return nil
}

func (p *LogProvider) Validate() error { return nil }

func (p *LogProvider) Close() error { return nil }
