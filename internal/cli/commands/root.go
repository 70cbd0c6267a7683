package commands

import (
	"os"

	"github.com/spf13/cobra"

	"parcel-tracker/internal/cli/client"
	"parcel-tracker/internal/cli/output"
)

const defaultAPIURL = "http://localhost:8080"

// NewRootCmd builds the parcelctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "parcelctl",
		Short: "Parcel Tracker CLI",
		Long: `parcelctl is the operator command-line interface for Parcel Tracker.

Preview tracking timelines, quote shipments and seed development
databases from your terminal.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("output", "o", "table", "output format: table, json, yaml")
	root.PersistentFlags().String("api", envOr("PARCEL_API_URL", defaultAPIURL), "parcel-tracker API base URL")
	root.PersistentFlags().String("user", os.Getenv("PARCEL_USER_ID"), "user id sent to the API")

	root.AddCommand(
		newTimelineCmd(),
		newTrackCmd(),
		newStatusCmd(),
		newQuoteCmd(),
		newSeedCmd(),
	)

	return root
}

// Execute runs parcelctl, printing any failure to stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		output.NewPrinter(root.OutOrStdout(), root.ErrOrStderr(), output.FormatTable).Error("%v", err)
		return err
	}
	return nil
}

func printerFor(cmd *cobra.Command) (*output.Printer, error) {
	raw, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(raw)
	if err != nil {
		return nil, err
	}

	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), format), nil
}

func apiClientFor(cmd *cobra.Command) (*client.ParcelClient, error) {
	baseURL, err := cmd.Flags().GetString("api")
	if err != nil {
		return nil, err
	}
	userID, err := cmd.Flags().GetString("user")
	if err != nil {
		return nil, err
	}
	return client.NewParcelClient(baseURL, userID), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
