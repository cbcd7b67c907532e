package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager holds the parsed HTML email templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager pre-loaded with the built-in
// notification templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Render executes a template with the given data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

// AddTemplate parses and registers a template.
func (tm *TemplateManager) AddTemplate(name, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

var builtinTemplates = map[string]string{
	TemplateVendorApproved: `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #059669; text-align: center;">Congratulations!</h1>
  <p>Dear {{.VendorName}},</p>
  <p>Great news! Your vendor application for <strong>{{.BusinessName}}</strong>
     has been reviewed and approved by our team.</p>
  <div style="background-color: #f9fafb; border-radius: 8px; padding: 20px;">
    <h3 style="margin-top: 0;">What's next?</h3>
    <ul>
      <li>Your business profile is now live on our platform</li>
      <li>Log in to your vendor dashboard to manage your profile</li>
      <li>Start receiving quote requests from potential clients</li>
    </ul>
  </div>
  {{if .Notes}}<p><em>{{.Notes}}</em></p>{{end}}
  <p style="color: #6b7280; font-size: 14px; text-align: center;">
    Thank you for choosing Muslim Wedding Hub!</p>
</div>`,

	TemplateVendorRejected: `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #dc2626; text-align: center;">Application Update</h1>
  <p>Dear {{.VendorName}},</p>
  <p>Thank you for your interest in joining Muslim Wedding Hub.
     After review, we are unable to approve your application for
     <strong>{{.BusinessName}}</strong> at this time.</p>
  {{if .Notes}}
  <div style="background-color: #fef2f2; border-radius: 8px; padding: 20px;">
    <h3 style="margin-top: 0;">Reviewer notes</h3>
    <p>{{.Notes}}</p>
  </div>
  {{end}}
  <p>You are welcome to address the points above and apply again.</p>
</div>`,

	TemplateQuoteResponse: `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #059669; text-align: center;">{{.Headline}}</h1>
  <p>Dear {{.CustomerName}},</p>
  <p><strong>{{.VendorName}}</strong> has responded to your quote request.</p>
  {{if .Message}}
  <div style="background-color: #f9fafb; border-radius: 8px; padding: 20px;">
    <p style="margin: 0;">{{.Message}}</p>
  </div>
  {{end}}
  {{if .ProposedPrice}}<p>Proposed price: <strong>${{.ProposedPrice}}</strong></p>{{end}}
  {{if .AdditionalDetails}}<p>{{.AdditionalDetails}}</p>{{end}}
  {{if .EventDate}}<p>Event date: {{.EventDate}}</p>{{end}}
  <p style="color: #6b7280; font-size: 14px; text-align: center;">
    Reply directly to the vendor to continue the conversation.</p>
</div>`,
}
