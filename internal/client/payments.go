package client

import (
	"context"
	"fmt"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

var (
	paymentsCreate = dpapi.CreateEndpoint("/payments", "payments")
	paymentsGet    = dpapi.GetEndpoint("/payments/:identity", "payments")
	paymentsUpdate = dpapi.UpdateEndpoint("/payments/:identity", "payments")
	paymentsList   = dpapi.ListEndpoint("/payments", "payments")
)

// PaymentsService implements dpapi.PaymentsService.
type PaymentsService struct {
	doer Doer
}

// NewPaymentsService creates a new payments service.
func NewPaymentsService(doer Doer) *PaymentsService {
	return &PaymentsService{doer: doer}
}

// Create implements dpapi.PaymentsService.Create.
func (s *PaymentsService) Create(ctx context.Context, req *dpapi.PaymentCreateRequest) (*dpapi.Payment, error) {
	var fields *dpapi.FieldSet
	if req != nil {
		fields = req.Build()
	}

	payment, err := executeResource[dpapi.Payment](ctx, s.doer, paymentsCreate, nil, fields)
	if err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	return payment, nil
}

// Get implements dpapi.PaymentsService.Get.
func (s *PaymentsService) Get(ctx context.Context, identity string) (*dpapi.Payment, error) {
	payment, err := executeResource[dpapi.Payment](ctx, s.doer, paymentsGet, map[string]string{"identity": identity}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return payment, nil
}

// Update implements dpapi.PaymentsService.Update.
func (s *PaymentsService) Update(ctx context.Context, identity string, req *dpapi.PaymentUpdateRequest) (*dpapi.Payment, error) {
	var fields *dpapi.FieldSet
	if req != nil {
		fields = req.Build()
	}

	payment, err := executeResource[dpapi.Payment](ctx, s.doer, paymentsUpdate, map[string]string{"identity": identity}, fields)
	if err != nil {
		return nil, fmt.Errorf("updating payment: %w", err)
	}

	return payment, nil
}

// List implements dpapi.PaymentsService.List.
func (s *PaymentsService) List(ctx context.Context, params *dpapi.ListParams) (*dpapi.Page[dpapi.Payment], error) {
	page, err := fetchPage[dpapi.Payment](ctx, s.doer, paymentsList, params)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return page, nil
}

// All implements dpapi.PaymentsService.All.
func (s *PaymentsService) All(ctx context.Context, params *dpapi.ListParams) *dpapi.Iterator[dpapi.Payment] {
	return dpapi.NewIterator(ctx, s.List, params)
}
