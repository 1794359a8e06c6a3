package client

import (
	"context"
	"fmt"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

// Creditor endpoint declarations. All protocol behavior lives in the
// generic executors.
var (
	creditorsCreate = dpapi.CreateEndpoint("/creditors", "creditors")
	creditorsGet    = dpapi.GetEndpoint("/creditors/:identity", "creditors")
	creditorsUpdate = dpapi.UpdateEndpoint("/creditors/:identity", "creditors")
	creditorsList   = dpapi.ListEndpoint("/creditors", "creditors")
)

// CreditorsService implements dpapi.CreditorsService.
type CreditorsService struct {
	doer Doer
}

// NewCreditorsService creates a new creditors service.
func NewCreditorsService(doer Doer) *CreditorsService {
	return &CreditorsService{doer: doer}
}

// Create implements dpapi.CreditorsService.Create.
func (s *CreditorsService) Create(ctx context.Context, req *dpapi.CreditorCreateRequest) (*dpapi.Creditor, error) {
	var fields *dpapi.FieldSet
	if req != nil {
		fields = req.Build()
	}

	creditor, err := executeResource[dpapi.Creditor](ctx, s.doer, creditorsCreate, nil, fields)
	if err != nil {
		return nil, fmt.Errorf("creating creditor: %w", err)
	}

	return creditor, nil
}

// Get implements dpapi.CreditorsService.Get.
func (s *CreditorsService) Get(ctx context.Context, identity string) (*dpapi.Creditor, error) {
	creditor, err := executeResource[dpapi.Creditor](ctx, s.doer, creditorsGet, map[string]string{"identity": identity}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting creditor: %w", err)
	}

	return creditor, nil
}

// Update implements dpapi.CreditorsService.Update.
func (s *CreditorsService) Update(ctx context.Context, identity string, req *dpapi.CreditorUpdateRequest) (*dpapi.Creditor, error) {
	var fields *dpapi.FieldSet
	if req != nil {
		fields = req.Build()
	}

	creditor, err := executeResource[dpapi.Creditor](ctx, s.doer, creditorsUpdate, map[string]string{"identity": identity}, fields)
	if err != nil {
		return nil, fmt.Errorf("updating creditor: %w", err)
	}

	return creditor, nil
}

// List implements dpapi.CreditorsService.List.
func (s *CreditorsService) List(ctx context.Context, params *dpapi.ListParams) (*dpapi.Page[dpapi.Creditor], error) {
	page, err := fetchPage[dpapi.Creditor](ctx, s.doer, creditorsList, params)
	if err != nil {
		return nil, fmt.Errorf("listing creditors: %w", err)
	}

	return page, nil
}

// All implements dpapi.CreditorsService.All.
func (s *CreditorsService) All(ctx context.Context, params *dpapi.ListParams) *dpapi.Iterator[dpapi.Creditor] {
	return dpapi.NewIterator(ctx, s.List, params)
}
