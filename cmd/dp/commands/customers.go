package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List and manage the customers payments are collected from",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomersList(flags)
		},
	}

	cmd.Flags().StringVar(&flags.after, "after", "", "cursor pointing to the start of the desired set")
	cmd.Flags().StringVar(&flags.before, "before", "", "cursor pointing to the end of the desired set")
	cmd.Flags().IntVar(&flags.limit, "limit", defaultPageLimit, "records per page")
	cmd.Flags().BoolVar(&flags.all, "all", false, "fetch all pages")

	return cmd
}

func runCustomersList(flags *listFlags) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if flags.all {
		customers, err := client.Customers().All(ctx, flags.params()).All()
		if err != nil {
			return fmt.Errorf("failed to list customers: %w", err)
		}

		return outputCustomersList(customers, dpapi.ListMeta{})
	}

	page, err := client.Customers().List(ctx, flags.params())
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	return outputCustomersList(page.Items, page.Meta)
}

func outputCustomersList(customers []dpapi.Customer, meta dpapi.ListMeta) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(customers)
	case OutputFormatYAML:
		return outputYAML(customers)
	default:
		return outputCustomersTable(customers, meta)
	}
}

func outputCustomersTable(customers []dpapi.Customer, meta dpapi.ListMeta) error {
	if len(customers) == 0 {
		_, _ = os.Stdout.WriteString("No customers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "Given Name", "Family Name", "Country", "Created")

	for _, customer := range customers {
		_ = table.Append(customer.ID, customer.Email, customer.GivenName, customer.FamilyName, customer.CountryCode, customer.CreatedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	printPagingHint(meta)

	return nil
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IDENTITY",
		Short: "Get customer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return outputCustomer(customer)
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		email       string
		givenName   string
		familyName  string
		address     string
		city        string
		postalCode  string
		countryCode string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			req := dpapi.NewCustomerCreateRequest()

			if email != "" {
				req.WithEmail(email)
			}

			if givenName != "" {
				req.WithGivenName(givenName)
			}

			if familyName != "" {
				req.WithFamilyName(familyName)
			}

			if address != "" {
				req.WithAddressLine1(address)
			}

			if city != "" {
				req.WithCity(city)
			}

			if postalCode != "" {
				req.WithPostalCode(postalCode)
			}

			if countryCode != "" {
				req.WithCountryCode(countryCode)
			}

			customer, err := client.Customers().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return outputCustomer(customer)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&givenName, "given-name", "", "given name")
	cmd.Flags().StringVar(&familyName, "family-name", "", "family name")
	cmd.Flags().StringVar(&address, "address", "", "first address line")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&countryCode, "country-code", "", "ISO 3166-1 alpha-2 country code")

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var (
		email      string
		givenName  string
		familyName string
	)

	cmd := &cobra.Command{
		Use:   "update IDENTITY",
		Short: "Update a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			req := dpapi.NewCustomerUpdateRequest()

			if email != "" {
				req.WithEmail(email)
			}

			if givenName != "" {
				req.WithGivenName(givenName)
			}

			if familyName != "" {
				req.WithFamilyName(familyName)
			}

			customer, err := client.Customers().Update(context.Background(), args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			return outputCustomer(customer)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&givenName, "given-name", "", "given name")
	cmd.Flags().StringVar(&familyName, "family-name", "", "family name")

	return cmd
}

func outputCustomer(customer *dpapi.Customer) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(customer)
	case OutputFormatYAML:
		return outputYAML(customer)
	default:
		return outputCustomerTable(customer)
	}
}

func outputCustomerTable(customer *dpapi.Customer) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", customer.ID)
	_ = table.Append("Email", customer.Email)
	_ = table.Append("Given Name", customer.GivenName)
	_ = table.Append("Family Name", customer.FamilyName)
	_ = table.Append("Address", customer.AddressLine1)
	_ = table.Append("City", customer.City)
	_ = table.Append("Postal Code", customer.PostalCode)
	_ = table.Append("Country", customer.CountryCode)
	_ = table.Append("Created", customer.CreatedAt.Format("2006-01-02 15:04:05"))

	_ = table.Render()

	return nil
}
