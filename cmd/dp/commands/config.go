package commands

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/directpay-io/dpapi-client/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the endpoint and token stored in $HOME/.dp/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetEndpointCommand())
	cmd.AddCommand(newConfigSetTokenCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := viper.GetString("endpoint")
			if endpoint == "" {
				endpoint = "(live default)"
			}

			token := viper.GetString("token")
			if token != "" {
				token = "***"
			}

			fmt.Fprintf(os.Stdout, "endpoint: %s\n", endpoint)
			fmt.Fprintf(os.Stdout, "token:    %s\n", token)
			fmt.Fprintf(os.Stdout, "output:   %s\n", viper.GetString("output"))

			return nil
		},
	}
}

func newConfigSetEndpointCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-endpoint URL",
		Short: "Set the API endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("endpoint", strings.TrimSuffix(args[0], "/"))

			return persistConfig()
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token",
		Short: "Set the API access token",
		Long:  "Prompt for the API access token without echoing it and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(os.Stdout, "Access token: ")

			tokenBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Fprintln(os.Stdout)

			if err != nil {
				return fmt.Errorf("reading token: %w", err)
			}

			token := strings.TrimSpace(string(tokenBytes))
			if token == "" {
				return ErrTokenRequired
			}

			viper.Set("token", token)

			return persistConfig()
		},
	}
}

func persistConfig() error {
	if err := viper.WriteConfig(); err != nil {
		// First write: no config file exists yet
		if err := viper.SafeWriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	// The config file may hold an access token
	if file := viper.ConfigFileUsed(); file != "" {
		if err := os.Chmod(file, constants.ConfigFilePerm); err != nil {
			return fmt.Errorf("restricting config permissions: %w", err)
		}
	}

	fmt.Fprintln(os.Stdout, "Configuration saved")

	return nil
}
