package dpapi

import "time"

// Payment statuses reported by the API.
const (
	PaymentStatusPendingSubmission = "pending_submission"
	PaymentStatusSubmitted         = "submitted"
	PaymentStatusConfirmed         = "confirmed"
	PaymentStatusPaidOut           = "paid_out"
	PaymentStatusCancelled         = "cancelled"
	PaymentStatusFailed            = "failed"
	PaymentStatusChargedBack       = "charged_back"
)

// Payment is an immutable snapshot of a payment resource: an amount
// collected from a customer's mandate and paid out to a creditor.
type Payment struct {
	ID          string            `json:"id"                 yaml:"id"`
	CreatedAt   time.Time         `json:"created_at"         yaml:"created_at"`
	Amount      int               `json:"amount"             yaml:"amount"`
	Currency    string            `json:"currency"           yaml:"currency"`
	ChargeDate  string            `json:"charge_date"        yaml:"charge_date"`
	Description string            `json:"description"        yaml:"description"`
	Reference   string            `json:"reference"          yaml:"reference"`
	Status      string            `json:"status"             yaml:"status"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Links       PaymentLinks      `json:"links"              yaml:"links"`
}

// PaymentLinks holds the identities of resources related to a payment.
type PaymentLinks struct {
	Mandate  string `json:"mandate,omitempty"  yaml:"mandate,omitempty"`
	Creditor string `json:"creditor,omitempty" yaml:"creditor,omitempty"`
}

// PaymentCreateRequest accumulates the fields for creating a payment.
type PaymentCreateRequest struct {
	fields *FieldSet
}

// NewPaymentCreateRequest creates an empty payment create request.
func NewPaymentCreateRequest() *PaymentCreateRequest {
	return &PaymentCreateRequest{fields: NewFieldSet()}
}

// WithAmount sets the amount in the currency's minor units.
func (r *PaymentCreateRequest) WithAmount(amount int) *PaymentCreateRequest {
	r.fields.Set("amount", amount)

	return r
}

// WithCurrency sets the ISO 4217 currency code.
func (r *PaymentCreateRequest) WithCurrency(currency string) *PaymentCreateRequest {
	r.fields.Set("currency", currency)

	return r
}

// WithChargeDate sets the date the payment should be collected on.
func (r *PaymentCreateRequest) WithChargeDate(date string) *PaymentCreateRequest {
	r.fields.Set("charge_date", date)

	return r
}

// WithDescription sets the human-readable payment description.
func (r *PaymentCreateRequest) WithDescription(description string) *PaymentCreateRequest {
	r.fields.Set("description", description)

	return r
}

// WithReference sets the reference shown on the customer's statement.
func (r *PaymentCreateRequest) WithReference(reference string) *PaymentCreateRequest {
	r.fields.Set("reference", reference)

	return r
}

// WithMetadata sets arbitrary key/value metadata stored against the
// payment.
func (r *PaymentCreateRequest) WithMetadata(metadata map[string]string) *PaymentCreateRequest {
	r.fields.Set("metadata", metadata)

	return r
}

// WithLinksMandate sets the ID of the mandate to charge.
func (r *PaymentCreateRequest) WithLinksMandate(mandate string) *PaymentCreateRequest {
	r.fields.SetLink("mandate", mandate)

	return r
}

// Build returns the accumulated body fields.
func (r *PaymentCreateRequest) Build() *FieldSet {
	return r.fields
}

// PaymentUpdateRequest accumulates the fields for updating a payment.
// Only descriptive fields can change after creation; the payment's
// identity is supplied to Update separately.
type PaymentUpdateRequest struct {
	fields *FieldSet
}

// NewPaymentUpdateRequest creates an empty payment update request.
func NewPaymentUpdateRequest() *PaymentUpdateRequest {
	return &PaymentUpdateRequest{fields: NewFieldSet()}
}

// WithDescription sets the human-readable payment description.
func (r *PaymentUpdateRequest) WithDescription(description string) *PaymentUpdateRequest {
	r.fields.Set("description", description)

	return r
}

// WithMetadata sets arbitrary key/value metadata stored against the
// payment.
func (r *PaymentUpdateRequest) WithMetadata(metadata map[string]string) *PaymentUpdateRequest {
	r.fields.Set("metadata", metadata)

	return r
}

// Build returns the accumulated body fields.
func (r *PaymentUpdateRequest) Build() *FieldSet {
	return r.fields
}
