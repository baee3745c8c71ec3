package models

// CateringCompany is a structured caterer record. The authority transmits
// caterers as comma-joined strings; the authority client parses them into
// this shape at the boundary so nothing downstream touches delimiters.
type CateringCompany struct {
	ID       string
	Name     string
	Postcode string
}
