package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Manage payments",
		Long:    "List and manage payments collected against mandates",
	}

	cmd.AddCommand(newPaymentsListCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsCreateCommand())
	cmd.AddCommand(newPaymentsUpdateCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	flags := &listFlags{}

	var (
		status   string
		creditor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := flags.params()

			if status != "" {
				params.WithFilter("status", status)
			}

			if creditor != "" {
				params.WithFilter("creditor", creditor)
			}

			return runPaymentsList(flags, params)
		},
	}

	cmd.Flags().StringVar(&flags.after, "after", "", "cursor pointing to the start of the desired set")
	cmd.Flags().StringVar(&flags.before, "before", "", "cursor pointing to the end of the desired set")
	cmd.Flags().IntVar(&flags.limit, "limit", defaultPageLimit, "records per page")
	cmd.Flags().BoolVar(&flags.all, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&status, "status", "", "filter by payment status")
	cmd.Flags().StringVar(&creditor, "creditor", "", "filter by creditor ID")

	return cmd
}

func runPaymentsList(flags *listFlags, params *dpapi.ListParams) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if flags.all {
		payments, err := client.Payments().All(ctx, params).All()
		if err != nil {
			return fmt.Errorf("failed to list payments: %w", err)
		}

		return outputPaymentsList(payments, dpapi.ListMeta{})
	}

	page, err := client.Payments().List(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to list payments: %w", err)
	}

	return outputPaymentsList(page.Items, page.Meta)
}

func outputPaymentsList(payments []dpapi.Payment, meta dpapi.ListMeta) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(payments)
	case OutputFormatYAML:
		return outputYAML(payments)
	default:
		return outputPaymentsTable(payments, meta)
	}
}

func outputPaymentsTable(payments []dpapi.Payment, meta dpapi.ListMeta) error {
	if len(payments) == 0 {
		_, _ = os.Stdout.WriteString("No payments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Amount", "Currency", "Status", "Charge Date")

	for _, payment := range payments {
		_ = table.Append(payment.ID, strconv.Itoa(payment.Amount), payment.Currency, payment.Status, payment.ChargeDate)
	}

	_ = table.Render()

	printPagingHint(meta)

	return nil
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IDENTITY",
		Short: "Get payment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payment: %w", err)
			}

			return outputPayment(payment)
		},
	}
}

func newPaymentsCreateCommand() *cobra.Command {
	var (
		amount      int
		currency    string
		chargeDate  string
		description string
		reference   string
		mandate     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			req := dpapi.NewPaymentCreateRequest()

			if amount > 0 {
				req.WithAmount(amount)
			}

			if currency != "" {
				req.WithCurrency(currency)
			}

			if chargeDate != "" {
				req.WithChargeDate(chargeDate)
			}

			if description != "" {
				req.WithDescription(description)
			}

			if reference != "" {
				req.WithReference(reference)
			}

			if mandate != "" {
				req.WithLinksMandate(mandate)
			}

			payment, err := client.Payments().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}

			return outputPayment(payment)
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "amount in the currency's minor units")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&chargeDate, "charge-date", "", "date to collect the payment on")
	cmd.Flags().StringVar(&description, "description", "", "payment description")
	cmd.Flags().StringVar(&reference, "reference", "", "statement reference")
	cmd.Flags().StringVar(&mandate, "mandate", "", "ID of the mandate to charge")

	return cmd
}

func newPaymentsUpdateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "update IDENTITY",
		Short: "Update a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			req := dpapi.NewPaymentUpdateRequest()

			if description != "" {
				req.WithDescription(description)
			}

			payment, err := client.Payments().Update(context.Background(), args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update payment: %w", err)
			}

			return outputPayment(payment)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "payment description")

	return cmd
}

func outputPayment(payment *dpapi.Payment) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(payment)
	case OutputFormatYAML:
		return outputYAML(payment)
	default:
		return outputPaymentTable(payment)
	}
}

func outputPaymentTable(payment *dpapi.Payment) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", payment.ID)
	_ = table.Append("Amount", strconv.Itoa(payment.Amount))
	_ = table.Append("Currency", payment.Currency)
	_ = table.Append("Status", payment.Status)
	_ = table.Append("Charge Date", payment.ChargeDate)
	_ = table.Append("Description", payment.Description)
	_ = table.Append("Reference", payment.Reference)
	_ = table.Append("Created", payment.CreatedAt.Format("2006-01-02 15:04:05"))

	if payment.Links.Mandate != "" {
		_ = table.Append("Mandate", payment.Links.Mandate)
	}

	if payment.Links.Creditor != "" {
		_ = table.Append("Creditor", payment.Links.Creditor)
	}

	_ = table.Render()

	return nil
}
