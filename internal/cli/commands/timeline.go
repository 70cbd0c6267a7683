package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"parcel-tracker/internal/cli/output"
	parcel "parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/tracking/domain"

	"github.com/spf13/cobra"
)

func newTimelineCmd() *cobra.Command {
	var (
		file string
		now  string
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Preview the tracking timeline of a parcel record",
		Long: `Synthesize the tracking history of a parcel record read as JSON.

Examples:
  # Read the parcel from a file
  parcelctl timeline --file parcel.json

  # Pin the clock used for exception events
  cat parcel.json | parcelctl timeline --now 2024-01-02T00:00:00Z --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			at := time.Now().UTC()
			if now != "" {
				at, err = time.Parse(time.RFC3339, now)
				if err != nil {
					return fmt.Errorf("invalid --now: %w", err)
				}
			}

			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open parcel file: %w", err)
				}
				defer f.Close()
				in = f
			}

			p, err := readParcel(in)
			if err != nil {
				return err
			}

			timeline := domain.BuildTimeline(p, at)
			return printer.Render(timeline, func() *output.Table {
				return timelineTable(timeline)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "parcel JSON file (default: stdin)")
	cmd.Flags().StringVar(&now, "now", "", "RFC 3339 time used for exception events (default: current time)")

	return cmd
}

func readParcel(r io.Reader) (parcel.Parcel, error) {
	var p parcel.Parcel
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return p, fmt.Errorf("failed to decode parcel: %w", err)
	}

	if p.CreatedAt.IsZero() {
		return p, fmt.Errorf("parcel created_at is required")
	}

	if status, err := parcel.ParseStatus(string(p.Status)); err == nil {
		p.Status = status
	}

	return p, nil
}

func timelineTable(timeline domain.Timeline) *output.Table {
	table := output.NewTable("TIME", "STATUS", "LOCATION", "NOTE")
	for _, event := range timeline.Events {
		table.AddStyledRow(output.ToneColor(string(event.Tone)),
			event.Timestamp.Format(time.RFC3339),
			string(event.Status),
			event.Location,
			event.Note,
		)
	}
	return table
}
