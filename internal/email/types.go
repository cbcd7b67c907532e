package email

// Email represents a single outgoing message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the HTML templates.
type TemplateData map[string]interface{}

// Template names used by the workflows.
const (
	TemplateVendorApproved = "vendor_approved"
	TemplateVendorRejected = "vendor_rejected"
	TemplateQuoteResponse  = "quote_response"
)
