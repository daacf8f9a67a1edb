// Package ai wraps the hosted language model behind two typed capabilities:
// investment-strategy generation and market-report summarization. Inputs and
// outputs are validated against fixed schemas on both sides; a response that
// fails output validation is a failure, same as a transport error.
package ai

import (
	"errors"
	"fmt"
	"strings"
)

const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

const (
	minFreeTextLen = 10
	maxFreeTextLen = 500
)

// StrategyInput is the request shape for investment-strategy generation.
type StrategyInput struct {
	FinancialGoals   string `json:"financialGoals"`
	RiskTolerance    string `json:"riskTolerance"`
	MarketConditions string `json:"marketConditions"`
}

// StrategyOutput is the structured strategy returned by the model.
type StrategyOutput struct {
	StrategyDescription string `json:"strategyDescription"`
	AssetAllocation     string `json:"assetAllocation"`
	SpecificInvestments string `json:"specificInvestments"`
}

// SummaryInput is the request shape for market-report summarization.
type SummaryInput struct {
	Report                string `json:"report"`
	UserInvestmentProfile string `json:"userInvestmentProfile,omitempty"`
}

// SummaryOutput is the summary returned by the model.
type SummaryOutput struct {
	Summary string `json:"summary"`
}

var (
	ErrInvalidInput  = errors.New("invalid model input")
	ErrInvalidOutput = errors.New("model output failed schema validation")
)

func validateFreeText(field, s string) error {
	s = strings.TrimSpace(s)
	if len(s) < minFreeTextLen {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrInvalidInput, field, minFreeTextLen)
	}
	if len(s) > maxFreeTextLen {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, maxFreeTextLen)
	}
	return nil
}

func (in StrategyInput) Validate() error {
	if err := validateFreeText("financial goals", in.FinancialGoals); err != nil {
		return err
	}
	switch in.RiskTolerance {
	case RiskConservative, RiskModerate, RiskAggressive:
	default:
		return fmt.Errorf("%w: unknown risk tolerance %q", ErrInvalidInput, in.RiskTolerance)
	}
	return validateFreeText("market conditions", in.MarketConditions)
}

func (out StrategyOutput) Validate() error {
	if strings.TrimSpace(out.StrategyDescription) == "" ||
		strings.TrimSpace(out.AssetAllocation) == "" ||
		strings.TrimSpace(out.SpecificInvestments) == "" {
		return ErrInvalidOutput
	}
	return nil
}

func (in SummaryInput) Validate() error {
	if strings.TrimSpace(in.Report) == "" {
		return fmt.Errorf("%w: empty report", ErrInvalidInput)
	}
	return nil
}

func (out SummaryOutput) Validate() error {
	if strings.TrimSpace(out.Summary) == "" {
		return ErrInvalidOutput
	}
	return nil
}
