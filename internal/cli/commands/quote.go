package commands

import (
	"fmt"

	"parcel-tracker/internal/cli/output"
	"parcel-tracker/internal/features/rates/domain"

	"github.com/spf13/cobra"
)

func newQuoteCmd() *cobra.Command {
	var (
		from       string
		to         string
		weight     float64
		basePerKg  float64
		serviceFee float64
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote the price of a shipment",
		Long: `Price a parcel between two towns in ZMW.

Examples:
  parcelctl quote --from Lusaka --to Ndola --weight 2.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			quote, err := domain.NewCalculator(basePerKg, serviceFee).Calculate(from, to, weight)
			if err != nil {
				return err
			}

			return printer.Render(quote, func() *output.Table {
				table := output.NewTable("FROM", "TO", "WEIGHT (KG)", "RATE/KG", "WEIGHT CHARGE", "SERVICE FEE", "TOTAL")
				table.AddRow(
					quote.From,
					quote.To,
					fmt.Sprintf("%.2f", quote.WeightKg),
					money(quote.RatePerKg, quote.Currency),
					money(quote.WeightCharge, quote.Currency),
					money(quote.ServiceFee, quote.Currency),
					money(quote.TotalCost, quote.Currency),
				)
				return table
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin town")
	cmd.Flags().StringVar(&to, "to", "", "destination town")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	cmd.Flags().Float64Var(&basePerKg, "base-rate", 25, "per-kg rate for routes missing from the table")
	cmd.Flags().Float64Var(&serviceFee, "service-fee", 10, "flat fee added to every quote")

	return cmd
}

func money(amount float64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}
