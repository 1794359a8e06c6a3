package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/directpay-io/dpapi-client/internal/constants"
	"github.com/directpay-io/dpapi-client/pkg/dpapi"
	"github.com/directpay-io/dpapi-client/pkg/dpclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

const defaultPageLimit = constants.DefaultPageLimit

// CreateClient builds a dpapi.Client from the effective configuration
// (flags override the config file, which overrides the environment).
func CreateClient() (dpapi.Client, error) {
	config := &dpapi.Config{
		Endpoint:    viper.GetString("endpoint"),
		AccessToken: viper.GetString("token"),
		Debug:       viper.GetBool("verbose"),
	}

	client, err := dpclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return nil
}

// printPagingHint tells the user how to continue past the page that
// was just rendered.
func printPagingHint(meta dpapi.ListMeta) {
	if meta.Cursors.After != nil && *meta.Cursors.After != "" {
		fmt.Fprintf(os.Stdout, "\nMore results available. Use --after %s to continue, or --all to fetch everything.\n", *meta.Cursors.After)
	}
}

// listFlags are the pagination flags shared by every list command.
type listFlags struct {
	after  string
	before string
	limit  int
	all    bool
}

func (f *listFlags) params() *dpapi.ListParams {
	params := dpapi.NewListParams().WithLimit(f.limit)

	if f.after != "" {
		params.WithAfter(f.after)
	}

	if f.before != "" {
		params.WithBefore(f.before)
	}

	return params
}
