package models

// QuotePDFData feeds the quotation HTML template.
type QuotePDFData struct {
	SiteName string
	Contact  *ContactInfo
	Lead     *Lead
	Tariffs  []*TariffItem
	Phones   string // formatted phone numbers
	Date     string // formatted submission date
}
