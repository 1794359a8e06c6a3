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

// NewCreditorsCommand creates the creditors command group.
func NewCreditorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "creditors",
		Aliases: []string{"creditor"},
		Short:   "Manage creditors",
		Long:    "List and manage the creditors payments are paid out to",
	}

	cmd.AddCommand(newCreditorsListCommand())
	cmd.AddCommand(newCreditorsGetCommand())
	cmd.AddCommand(newCreditorsCreateCommand())
	cmd.AddCommand(newCreditorsUpdateCommand())

	return cmd
}

func newCreditorsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List creditors",
		Long:  "List creditors one page at a time, or --all to traverse every page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreditorsList(flags)
		},
	}

	cmd.Flags().StringVar(&flags.after, "after", "", "cursor pointing to the start of the desired set")
	cmd.Flags().StringVar(&flags.before, "before", "", "cursor pointing to the end of the desired set")
	cmd.Flags().IntVar(&flags.limit, "limit", defaultPageLimit, "records per page")
	cmd.Flags().BoolVar(&flags.all, "all", false, "fetch all pages")

	return cmd
}

func runCreditorsList(flags *listFlags) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if flags.all {
		creditors, err := client.Creditors().All(ctx, flags.params()).All()
		if err != nil {
			return fmt.Errorf("failed to list creditors: %w", err)
		}

		return outputCreditorsList(creditors, dpapi.ListMeta{})
	}

	page, err := client.Creditors().List(ctx, flags.params())
	if err != nil {
		return fmt.Errorf("failed to list creditors: %w", err)
	}

	return outputCreditorsList(page.Items, page.Meta)
}

func outputCreditorsList(creditors []dpapi.Creditor, meta dpapi.ListMeta) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(creditors)
	case OutputFormatYAML:
		return outputYAML(creditors)
	default:
		return outputCreditorsTable(creditors, meta)
	}
}

func outputCreditorsTable(creditors []dpapi.Creditor, meta dpapi.ListMeta) error {
	if len(creditors) == 0 {
		_, _ = os.Stdout.WriteString("No creditors found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "City", "Country", "Created")

	for _, creditor := range creditors {
		_ = table.Append(creditor.ID, creditor.Name, creditor.City, creditor.CountryCode, creditor.CreatedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	printPagingHint(meta)

	return nil
}

func newCreditorsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IDENTITY",
		Short: "Get creditor details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			creditor, err := client.Creditors().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get creditor: %w", err)
			}

			return outputCreditor(creditor)
		},
	}
}

func newCreditorsCreateCommand() *cobra.Command {
	var (
		name        string
		address     string
		city        string
		region      string
		postalCode  string
		countryCode string
		logo        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a creditor",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			req := dpapi.NewCreditorCreateRequest()

			if name != "" {
				req.WithName(name)
			}

			if address != "" {
				req.WithAddressLine1(address)
			}

			if city != "" {
				req.WithCity(city)
			}

			if region != "" {
				req.WithRegion(region)
			}

			if postalCode != "" {
				req.WithPostalCode(postalCode)
			}

			if countryCode != "" {
				req.WithCountryCode(countryCode)
			}

			if logo != "" {
				req.WithLinksLogo(logo)
			}

			creditor, err := client.Creditors().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to create creditor: %w", err)
			}

			return outputCreditor(creditor)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "creditor name")
	cmd.Flags().StringVar(&address, "address", "", "first address line")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&region, "region", "", "region, county or department")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&countryCode, "country-code", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&logo, "logo", "", "ID of the logo shown on payment pages")

	return cmd
}

func newCreditorsUpdateCommand() *cobra.Command {
	var (
		name        string
		address     string
		city        string
		region      string
		postalCode  string
		countryCode string
		gbpAccount  string
		eurAccount  string
	)

	cmd := &cobra.Command{
		Use:   "update IDENTITY",
		Short: "Update a creditor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			req := dpapi.NewCreditorUpdateRequest()

			if name != "" {
				req.WithName(name)
			}

			if address != "" {
				req.WithAddressLine1(address)
			}

			if city != "" {
				req.WithCity(city)
			}

			if region != "" {
				req.WithRegion(region)
			}

			if postalCode != "" {
				req.WithPostalCode(postalCode)
			}

			if countryCode != "" {
				req.WithCountryCode(countryCode)
			}

			if gbpAccount != "" {
				req.WithLinksDefaultGBPPayoutAccount(gbpAccount)
			}

			if eurAccount != "" {
				req.WithLinksDefaultEURPayoutAccount(eurAccount)
			}

			creditor, err := client.Creditors().Update(context.Background(), args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update creditor: %w", err)
			}

			return outputCreditor(creditor)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "creditor name")
	cmd.Flags().StringVar(&address, "address", "", "first address line")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&region, "region", "", "region, county or department")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&countryCode, "country-code", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&gbpAccount, "gbp-payout-account", "", "bank account receiving GBP payouts")
	cmd.Flags().StringVar(&eurAccount, "eur-payout-account", "", "bank account receiving EUR payouts")

	return cmd
}

func outputCreditor(creditor *dpapi.Creditor) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(creditor)
	case OutputFormatYAML:
		return outputYAML(creditor)
	default:
		return outputCreditorTable(creditor)
	}
}

func outputCreditorTable(creditor *dpapi.Creditor) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", creditor.ID)
	_ = table.Append("Name", creditor.Name)
	_ = table.Append("Address", creditor.AddressLine1)
	_ = table.Append("City", creditor.City)
	_ = table.Append("Region", creditor.Region)
	_ = table.Append("Postal Code", creditor.PostalCode)
	_ = table.Append("Country", creditor.CountryCode)
	_ = table.Append("Created", creditor.CreatedAt.Format("2006-01-02 15:04:05"))

	if creditor.Links.Logo != "" {
		_ = table.Append("Logo", creditor.Links.Logo)
	}

	if creditor.Links.DefaultGBPPayoutAccount != "" {
		_ = table.Append("GBP Payout Account", creditor.Links.DefaultGBPPayoutAccount)
	}

	if creditor.Links.DefaultEURPayoutAccount != "" {
		_ = table.Append("EUR Payout Account", creditor.Links.DefaultEURPayoutAccount)
	}

	_ = table.Render()

	return nil
}
