package lexdoc

// Source is one listing page to be scraped, tagged with the category
// assigned to every item extracted from it.
type Source struct {
	URL      string
	Category string
}

// UIDAI legal-framework listing pages.
const (
	AboutUIDAIURL         = "https://uidai.gov.in/en/about-uidai.html"
	LegalFrameworkURL     = "https://uidai.gov.in/en/about-uidai/legal-framework.html"
	RulesURL              = "https://uidai.gov.in/en/about-uidai/legal-framework/rules.html"
	NotificationsURL      = "https://uidai.gov.in/en/about-uidai/legal-framework/notification.html"
	RegulationsURL        = "https://uidai.gov.in/en/about-uidai/legal-framework/regulations.html"
	CircularsURL          = "https://uidai.gov.in/en/about-uidai/legal-framework/circulars.html"
	UpdatedRegulationsURL = "https://uidai.gov.in/en/about-uidai/legal-framework/updated-regulation.html"
	UpdatedRulesURL       = "https://uidai.gov.in/en/about-uidai/legal-framework/updated-rules-en.html"
)

// DefaultSources returns the fixed, ordered list of listing pages scraped
// by an ingestion run.
func DefaultSources() []Source {
	return []Source{
		{URL: AboutUIDAIURL, Category: "About UIDAI"},
		{URL: LegalFrameworkURL, Category: "Legal Framework"},
		{URL: RulesURL, Category: "Rules"},
		{URL: NotificationsURL, Category: "Notifications"},
		{URL: RegulationsURL, Category: "Regulations"},
		{URL: CircularsURL, Category: "Circulars"},
		{URL: UpdatedRegulationsURL, Category: "Updated Regulations"},
		{URL: UpdatedRulesURL, Category: "Updated Rules"},
	}
}
