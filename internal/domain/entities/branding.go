package entities

// TenantBranding is what the document renderer prints in the letterhead.
// All fields are optional; the renderer substitutes placeholders so a
// half-configured tenant still gets a usable document.
type TenantBranding struct {
	CompanyName    string `json:"company_name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	CurrencySymbol string `json:"currency_symbol"`
}
