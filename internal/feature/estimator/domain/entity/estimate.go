// Package entity defines the domain models for the estimator feature.
package entity

// EstimateInputs holds the five calculator inputs of the landing page.
type EstimateInputs struct {
	Capital        float64 // Deposited capital in currency units (e.g., IDR)
	BaseAprPct     float64 // Base APR in percent (e.g., 24 for 24%)
	FeeAprPct      float64 // Swap-fee APR in percent
	PriceChangePct float64 // Relative price move of the volatile asset in percent
	Months         int     // Holding period used to amortize impermanent loss
}

// EstimateResult holds the values derived from EstimateInputs.
type EstimateResult struct {
	MonthlyRate             float64 // Simple monthly rate as a fraction (0.03 = 3%)
	EstMonthlyIncome        float64 // Capital * MonthlyRate
	ImpermanentLossFraction float64 // Loss versus holding, 0..1
	ImpermanentLossCost     float64 // Capital * ImpermanentLossFraction
	NetMonthlyEstimate      float64 // Income minus amortized IL cost, never negative
}

// DefaultInputs returns the initial calculator state shown on the page.
func DefaultInputs() EstimateInputs {
	return EstimateInputs{
		Capital:        1_500_000,
		BaseAprPct:     24,
		FeeAprPct:      12,
		PriceChangePct: 15,
		Months:         12,
	}
}
