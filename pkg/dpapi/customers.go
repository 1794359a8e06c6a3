package dpapi

import "time"

// Customer is an immutable snapshot of a customer resource: the party
// payments are collected from.
type Customer struct {
	ID           string    `json:"id"            yaml:"id"`
	CreatedAt    time.Time `json:"created_at"    yaml:"created_at"`
	Email        string    `json:"email"         yaml:"email"`
	GivenName    string    `json:"given_name"    yaml:"given_name"`
	FamilyName   string    `json:"family_name"   yaml:"family_name"`
	AddressLine1 string    `json:"address_line1" yaml:"address_line1"`
	AddressLine2 string    `json:"address_line2" yaml:"address_line2"`
	AddressLine3 string    `json:"address_line3" yaml:"address_line3"`
	City         string    `json:"city"          yaml:"city"`
	Region       string    `json:"region"        yaml:"region"`
	PostalCode   string    `json:"postal_code"   yaml:"postal_code"`
	CountryCode  string    `json:"country_code"  yaml:"country_code"`
}

// CustomerCreateRequest accumulates the fields for creating a
// customer.
type CustomerCreateRequest struct {
	fields *FieldSet
}

// NewCustomerCreateRequest creates an empty customer create request.
func NewCustomerCreateRequest() *CustomerCreateRequest {
	return &CustomerCreateRequest{fields: NewFieldSet()}
}

// WithEmail sets the customer's email address.
func (r *CustomerCreateRequest) WithEmail(email string) *CustomerCreateRequest {
	r.fields.Set("email", email)

	return r
}

// WithGivenName sets the customer's given name.
func (r *CustomerCreateRequest) WithGivenName(name string) *CustomerCreateRequest {
	r.fields.Set("given_name", name)

	return r
}

// WithFamilyName sets the customer's family name.
func (r *CustomerCreateRequest) WithFamilyName(name string) *CustomerCreateRequest {
	r.fields.Set("family_name", name)

	return r
}

// WithAddressLine1 sets the first line of the customer's address.
func (r *CustomerCreateRequest) WithAddressLine1(line string) *CustomerCreateRequest {
	r.fields.Set("address_line1", line)

	return r
}

// WithAddressLine2 sets the second line of the customer's address.
func (r *CustomerCreateRequest) WithAddressLine2(line string) *CustomerCreateRequest {
	r.fields.Set("address_line2", line)

	return r
}

// WithAddressLine3 sets the third line of the customer's address.
func (r *CustomerCreateRequest) WithAddressLine3(line string) *CustomerCreateRequest {
	r.fields.Set("address_line3", line)

	return r
}

// WithCity sets the city of the customer's address.
func (r *CustomerCreateRequest) WithCity(city string) *CustomerCreateRequest {
	r.fields.Set("city", city)

	return r
}

// WithRegion sets the customer's address region, county or department.
func (r *CustomerCreateRequest) WithRegion(region string) *CustomerCreateRequest {
	r.fields.Set("region", region)

	return r
}

// WithPostalCode sets the customer's postal code.
func (r *CustomerCreateRequest) WithPostalCode(postalCode string) *CustomerCreateRequest {
	r.fields.Set("postal_code", postalCode)

	return r
}

// WithCountryCode sets the ISO 3166-1 alpha-2 country code.
func (r *CustomerCreateRequest) WithCountryCode(countryCode string) *CustomerCreateRequest {
	r.fields.Set("country_code", countryCode)

	return r
}

// Build returns the accumulated body fields.
func (r *CustomerCreateRequest) Build() *FieldSet {
	return r.fields
}

// CustomerUpdateRequest accumulates the fields for updating a
// customer. The customer's identity is supplied to Update separately.
type CustomerUpdateRequest struct {
	fields *FieldSet
}

// NewCustomerUpdateRequest creates an empty customer update request.
func NewCustomerUpdateRequest() *CustomerUpdateRequest {
	return &CustomerUpdateRequest{fields: NewFieldSet()}
}

// WithEmail sets the customer's email address.
func (r *CustomerUpdateRequest) WithEmail(email string) *CustomerUpdateRequest {
	r.fields.Set("email", email)

	return r
}

// WithGivenName sets the customer's given name.
func (r *CustomerUpdateRequest) WithGivenName(name string) *CustomerUpdateRequest {
	r.fields.Set("given_name", name)

	return r
}

// WithFamilyName sets the customer's family name.
func (r *CustomerUpdateRequest) WithFamilyName(name string) *CustomerUpdateRequest {
	r.fields.Set("family_name", name)

	return r
}

// WithAddressLine1 sets the first line of the customer's address.
func (r *CustomerUpdateRequest) WithAddressLine1(line string) *CustomerUpdateRequest {
	r.fields.Set("address_line1", line)

	return r
}

// WithAddressLine2 sets the second line of the customer's address.
func (r *CustomerUpdateRequest) WithAddressLine2(line string) *CustomerUpdateRequest {
	r.fields.Set("address_line2", line)

	return r
}

// WithAddressLine3 sets the third line of the customer's address.
func (r *CustomerUpdateRequest) WithAddressLine3(line string) *CustomerUpdateRequest {
	r.fields.Set("address_line3", line)

	return r
}

// WithCity sets the city of the customer's address.
func (r *CustomerUpdateRequest) WithCity(city string) *CustomerUpdateRequest {
	r.fields.Set("city", city)

	return r
}

// WithRegion sets the customer's address region, county or department.
func (r *CustomerUpdateRequest) WithRegion(region string) *CustomerUpdateRequest {
	r.fields.Set("region", region)

	return r
}

// WithPostalCode sets the customer's postal code.
func (r *CustomerUpdateRequest) WithPostalCode(postalCode string) *CustomerUpdateRequest {
	r.fields.Set("postal_code", postalCode)

	return r
}

// WithCountryCode sets the ISO 3166-1 alpha-2 country code.
func (r *CustomerUpdateRequest) WithCountryCode(countryCode string) *CustomerUpdateRequest {
	r.fields.Set("country_code", countryCode)

	return r
}

// Build returns the accumulated body fields.
func (r *CustomerUpdateRequest) Build() *FieldSet {
	return r.fields
}
