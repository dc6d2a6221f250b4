package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lpclass_backend/internal/feature/estimator/domain/entity"
	"lpclass_backend/internal/feature/estimator/usecase"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	in := entity.DefaultInputs()
	var clamp bool

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate monthly LP income net of impermanent loss",
		RunE: func(cmd *cobra.Command, args []string) error {
			var bounds *usecase.Bounds
			if clamp {
				b := usecase.SliderBounds
				bounds = &b
			}
			effective, res, err := usecase.NewEstimatorUsecase(bounds).Estimate(cmd.Context(), in)
			if err != nil {
				return err
			}
			printEstimate(cmd, effective, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.Capital, "capital", in.Capital, "deposited capital")
	f.Float64Var(&in.BaseAprPct, "base-apr", in.BaseAprPct, "base APR in percent")
	f.Float64Var(&in.FeeAprPct, "fee-apr", in.FeeAprPct, "swap-fee APR in percent")
	f.Float64Var(&in.PriceChangePct, "price-change", in.PriceChangePct, "price change of the volatile asset in percent")
	f.IntVar(&in.Months, "months", in.Months, "months used to amortize impermanent loss")
	f.BoolVar(&clamp, "clamp", true, "clamp inputs to the landing page slider ranges")
	return cmd
}

func printEstimate(cmd *cobra.Command, in entity.EstimateInputs, res entity.EstimateResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "capital            %.2f\n", in.Capital)
	fmt.Fprintf(out, "apr (base + fee)   %.2f%% + %.2f%%\n", in.BaseAprPct, in.FeeAprPct)
	fmt.Fprintf(out, "price change       %.2f%%\n", in.PriceChangePct)
	fmt.Fprintf(out, "months             %d\n", in.Months)
	fmt.Fprintf(out, "monthly rate       %.4f%%\n", res.MonthlyRate*100)
	fmt.Fprintf(out, "est. monthly       %.2f\n", res.EstMonthlyIncome)
	fmt.Fprintf(out, "impermanent loss   %.4f%% (%.2f)\n", res.ImpermanentLossFraction*100, res.ImpermanentLossCost)
	fmt.Fprintf(out, "net monthly        %.2f\n", res.NetMonthlyEstimate)
}
