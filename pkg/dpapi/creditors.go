package dpapi

import "time"

// Creditor is an immutable snapshot of a creditor resource: the party
// payments are paid out to. Creditors are created and destroyed
// server-side; the client only ever holds snapshots returned from the
// API.
type Creditor struct {
	ID           string        `json:"id"            yaml:"id"`
	CreatedAt    time.Time     `json:"created_at"    yaml:"created_at"`
	Name         string        `json:"name"          yaml:"name"`
	AddressLine1 string        `json:"address_line1" yaml:"address_line1"`
	AddressLine2 string        `json:"address_line2" yaml:"address_line2"`
	AddressLine3 string        `json:"address_line3" yaml:"address_line3"`
	City         string        `json:"city"          yaml:"city"`
	Region       string        `json:"region"        yaml:"region"`
	PostalCode   string        `json:"postal_code"   yaml:"postal_code"`
	CountryCode  string        `json:"country_code"  yaml:"country_code"`
	Links        CreditorLinks `json:"links"         yaml:"links"`
}

// CreditorLinks holds the identities of resources related to a
// creditor.
type CreditorLinks struct {
	Logo                    string `json:"logo,omitempty"                       yaml:"logo,omitempty"`
	DefaultGBPPayoutAccount string `json:"default_gbp_payout_account,omitempty" yaml:"default_gbp_payout_account,omitempty"`
	DefaultEURPayoutAccount string `json:"default_eur_payout_account,omitempty" yaml:"default_eur_payout_account,omitempty"`
}

// CreditorCreateRequest accumulates the fields for creating a
// creditor. Setters chain and only explicitly-set fields reach the
// wire; no validation is performed client-side.
type CreditorCreateRequest struct {
	fields *FieldSet
}

// NewCreditorCreateRequest creates an empty creditor create request.
func NewCreditorCreateRequest() *CreditorCreateRequest {
	return &CreditorCreateRequest{fields: NewFieldSet()}
}

// WithName sets the creditor's name.
func (r *CreditorCreateRequest) WithName(name string) *CreditorCreateRequest {
	r.fields.Set("name", name)

	return r
}

// WithAddressLine1 sets the first line of the creditor's address.
func (r *CreditorCreateRequest) WithAddressLine1(line string) *CreditorCreateRequest {
	r.fields.Set("address_line1", line)

	return r
}

// WithAddressLine2 sets the second line of the creditor's address.
func (r *CreditorCreateRequest) WithAddressLine2(line string) *CreditorCreateRequest {
	r.fields.Set("address_line2", line)

	return r
}

// WithAddressLine3 sets the third line of the creditor's address.
func (r *CreditorCreateRequest) WithAddressLine3(line string) *CreditorCreateRequest {
	r.fields.Set("address_line3", line)

	return r
}

// WithCity sets the city of the creditor's address.
func (r *CreditorCreateRequest) WithCity(city string) *CreditorCreateRequest {
	r.fields.Set("city", city)

	return r
}

// WithRegion sets the creditor's address region, county or department.
func (r *CreditorCreateRequest) WithRegion(region string) *CreditorCreateRequest {
	r.fields.Set("region", region)

	return r
}

// WithPostalCode sets the creditor's postal code.
func (r *CreditorCreateRequest) WithPostalCode(postalCode string) *CreditorCreateRequest {
	r.fields.Set("postal_code", postalCode)

	return r
}

// WithCountryCode sets the ISO 3166-1 alpha-2 country code.
func (r *CreditorCreateRequest) WithCountryCode(countryCode string) *CreditorCreateRequest {
	r.fields.Set("country_code", countryCode)

	return r
}

// WithLinksLogo sets the ID of the logo shown on payment pages.
func (r *CreditorCreateRequest) WithLinksLogo(logo string) *CreditorCreateRequest {
	r.fields.SetLink("logo", logo)

	return r
}

// Build returns the accumulated body fields.
func (r *CreditorCreateRequest) Build() *FieldSet {
	return r.fields
}

// CreditorUpdateRequest accumulates the fields for updating a
// creditor. The creditor's identity is supplied to Update separately;
// it is never a body field.
type CreditorUpdateRequest struct {
	fields *FieldSet
}

// NewCreditorUpdateRequest creates an empty creditor update request.
func NewCreditorUpdateRequest() *CreditorUpdateRequest {
	return &CreditorUpdateRequest{fields: NewFieldSet()}
}

// WithName sets the creditor's name.
func (r *CreditorUpdateRequest) WithName(name string) *CreditorUpdateRequest {
	r.fields.Set("name", name)

	return r
}

// WithAddressLine1 sets the first line of the creditor's address.
func (r *CreditorUpdateRequest) WithAddressLine1(line string) *CreditorUpdateRequest {
	r.fields.Set("address_line1", line)

	return r
}

// WithAddressLine2 sets the second line of the creditor's address.
func (r *CreditorUpdateRequest) WithAddressLine2(line string) *CreditorUpdateRequest {
	r.fields.Set("address_line2", line)

	return r
}

// WithAddressLine3 sets the third line of the creditor's address.
func (r *CreditorUpdateRequest) WithAddressLine3(line string) *CreditorUpdateRequest {
	r.fields.Set("address_line3", line)

	return r
}

// WithCity sets the city of the creditor's address.
func (r *CreditorUpdateRequest) WithCity(city string) *CreditorUpdateRequest {
	r.fields.Set("city", city)

	return r
}

// WithRegion sets the creditor's address region, county or department.
func (r *CreditorUpdateRequest) WithRegion(region string) *CreditorUpdateRequest {
	r.fields.Set("region", region)

	return r
}

// WithPostalCode sets the creditor's postal code.
func (r *CreditorUpdateRequest) WithPostalCode(postalCode string) *CreditorUpdateRequest {
	r.fields.Set("postal_code", postalCode)

	return r
}

// WithCountryCode sets the ISO 3166-1 alpha-2 country code.
func (r *CreditorUpdateRequest) WithCountryCode(countryCode string) *CreditorUpdateRequest {
	r.fields.Set("country_code", countryCode)

	return r
}

// WithLinksLogo sets the ID of the logo shown on payment pages.
func (r *CreditorUpdateRequest) WithLinksLogo(logo string) *CreditorUpdateRequest {
	r.fields.SetLink("logo", logo)

	return r
}

// WithLinksDefaultGBPPayoutAccount sets the ID of the bank account
// receiving GBP payouts.
func (r *CreditorUpdateRequest) WithLinksDefaultGBPPayoutAccount(account string) *CreditorUpdateRequest {
	r.fields.SetLink("default_gbp_payout_account", account)

	return r
}

// WithLinksDefaultEURPayoutAccount sets the ID of the bank account
// receiving EUR payouts.
func (r *CreditorUpdateRequest) WithLinksDefaultEURPayoutAccount(account string) *CreditorUpdateRequest {
	r.fields.SetLink("default_eur_payout_account", account)

	return r
}

// Build returns the accumulated body fields.
func (r *CreditorUpdateRequest) Build() *FieldSet {
	return r.fields
}
