// Package dpapi provides the core types and generic request framework
// for the DirectPay API.
//
// The package has two layers. The generic layer turns a set of typed
// fields into one HTTP exchange: a FieldSet collects request body
// fields, ResolvePath fills in :name path placeholders, the envelope
// codec wraps and unwraps bodies under the resource collection's key,
// and Endpoint describes one of the four operation shapes (Create,
// Get, Update, List). The resource layer is thin boilerplate over it:
// each resource contributes a snapshot struct, fluent request
// builders, and a service interface, with no protocol logic of its
// own.
//
// List endpoints use cursor-based pagination. Callers choose between
// fetching a single Page (managing cursors themselves) and an
// Iterator that follows the "after" cursor transparently:
//
//	page, err := client.Creditors().List(ctx, dpapi.NewListParams().WithLimit(50))
//
//	it := client.Creditors().All(ctx, nil)
//	for it.HasNext() {
//		creditor, err := it.Next()
//		...
//	}
//
// Concrete clients are built with the dpclient package.
package dpapi
