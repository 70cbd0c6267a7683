package commands

import (
	"parcel-tracker/internal/cli/output"

	"github.com/spf13/cobra"
)

func newTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <tracking-number>",
		Short: "Track a parcel through the API",
		Long: `Fetch the timeline of a tracking number from a running API.
Unknown numbers are registered for the --user.

Examples:
  parcelctl track ZM0001 --user 3f6c0a52-7d1e-4e55-9d0b-0c2f5d9b1a11`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}
			api, err := apiClientFor(cmd)
			if err != nil {
				return err
			}

			timeline, created, err := api.Track(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if created && printer.Format() == output.FormatTable {
				printer.Success("Now tracking %s", args[0])
			}
			return printer.Render(timeline, func() *output.Table {
				return timelineTable(*timeline)
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "status <parcel-id> <status>",
		Short: "Set the status of a parcel through the API",
		Long: `Move a parcel to a new status. The location is kept when --location is empty.

Examples:
  parcelctl status 0190f3c4-8b1e-7d2a-9a51-6f0e2b3c4d5e "Out for Delivery" --location Kitwe`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}
			api, err := apiClientFor(cmd)
			if err != nil {
				return err
			}

			p, err := api.UpdateStatus(cmd.Context(), args[0], args[1], location)
			if err != nil {
				return err
			}

			return printer.Render(p, func() *output.Table {
				table := output.NewTable("ID", "TRACKING NUMBER", "STATUS", "LOCATION")
				table.AddStyledRow(output.ToneColor(string(p.Status.Present().Tone)),
					p.ID, p.TrackingNumber, string(p.Status), p.CurrentLocation)
				return table
			})
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "new current location")
	return cmd
}
