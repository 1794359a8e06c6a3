package client

import (
	"context"
	"fmt"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

var (
	customersCreate = dpapi.CreateEndpoint("/customers", "customers")
	customersGet    = dpapi.GetEndpoint("/customers/:identity", "customers")
	customersUpdate = dpapi.UpdateEndpoint("/customers/:identity", "customers")
	customersList   = dpapi.ListEndpoint("/customers", "customers")
)

// CustomersService implements dpapi.CustomersService.
type CustomersService struct {
	doer Doer
}

// NewCustomersService creates a new customers service.
func NewCustomersService(doer Doer) *CustomersService {
	return &CustomersService{doer: doer}
}

// Create implements dpapi.CustomersService.Create.
func (s *CustomersService) Create(ctx context.Context, req *dpapi.CustomerCreateRequest) (*dpapi.Customer, error) {
	var fields *dpapi.FieldSet
	if req != nil {
		fields = req.Build()
	}

	customer, err := executeResource[dpapi.Customer](ctx, s.doer, customersCreate, nil, fields)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return customer, nil
}

// Get implements dpapi.CustomersService.Get.
func (s *CustomersService) Get(ctx context.Context, identity string) (*dpapi.Customer, error) {
	customer, err := executeResource[dpapi.Customer](ctx, s.doer, customersGet, map[string]string{"identity": identity}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return customer, nil
}

// Update implements dpapi.CustomersService.Update.
func (s *CustomersService) Update(ctx context.Context, identity string, req *dpapi.CustomerUpdateRequest) (*dpapi.Customer, error) {
	var fields *dpapi.FieldSet
	if req != nil {
		fields = req.Build()
	}

	customer, err := executeResource[dpapi.Customer](ctx, s.doer, customersUpdate, map[string]string{"identity": identity}, fields)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	return customer, nil
}

// List implements dpapi.CustomersService.List.
func (s *CustomersService) List(ctx context.Context, params *dpapi.ListParams) (*dpapi.Page[dpapi.Customer], error) {
	page, err := fetchPage[dpapi.Customer](ctx, s.doer, customersList, params)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	return page, nil
}

// All implements dpapi.CustomersService.All.
func (s *CustomersService) All(ctx context.Context, params *dpapi.ListParams) *dpapi.Iterator[dpapi.Customer] {
	return dpapi.NewIterator(ctx, s.List, params)
}
