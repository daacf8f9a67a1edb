package ai

import (
	"context"
	"errors"
	"testing"
)

type fakeGen struct {
	text string
	err  error
}

func (f fakeGen) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func validStrategyInput() StrategyInput {
	return StrategyInput{
		FinancialGoals:   "Retire in 20 years, buy a house in 5 years",
		RiskTolerance:    RiskModerate,
		MarketConditions: "Steady growth with volatility in the tech sector",
	}
}

func TestGenerateInvestmentStrategy(t *testing.T) {
	payload := `{"strategyDescription":"Diversify.","assetAllocation":"60/40","specificInvestments":"Index funds"}`
	c := NewClient(fakeGen{text: payload})

	out, err := c.GenerateInvestmentStrategy(context.Background(), validStrategyInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.StrategyDescription != "Diversify." || out.AssetAllocation != "60/40" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestGenerateInvestmentStrategyFencedResponse(t *testing.T) {
	payload := "```json\n{\"strategyDescription\":\"d\",\"assetAllocation\":\"a\",\"specificInvestments\":\"s\"}\n```"
	c := NewClient(fakeGen{text: payload})

	out, err := c.GenerateInvestmentStrategy(context.Background(), validStrategyInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SpecificInvestments != "s" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestGenerateInvestmentStrategyInputValidation(t *testing.T) {
	c := NewClient(fakeGen{text: `{}`})
	cases := []StrategyInput{
		{FinancialGoals: "short", RiskTolerance: RiskModerate, MarketConditions: "Long enough market view"},
		{FinancialGoals: "Long enough financial goals", RiskTolerance: "reckless", MarketConditions: "Long enough market view"},
		{FinancialGoals: "Long enough financial goals", RiskTolerance: RiskModerate, MarketConditions: ""},
	}
	for i, in := range cases {
		if _, err := c.GenerateInvestmentStrategy(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
	}
}

func TestGenerateInvestmentStrategySchemaFailure(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"not json", "I cannot help with that."},
		{"missing fields", `{"strategyDescription":"only one field"}`},
		{"empty fields", `{"strategyDescription":"","assetAllocation":"","specificInvestments":""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClient(fakeGen{text: tc.text})
			out, err := c.GenerateInvestmentStrategy(context.Background(), validStrategyInput())
			if !errors.Is(err, ErrInvalidOutput) {
				t.Fatalf("err = %v, want ErrInvalidOutput", err)
			}
			if out != nil {
				t.Fatalf("expected nil output on failure")
			}
		})
	}
}

func TestGenerateInvestmentStrategyTransportFailure(t *testing.T) {
	transportErr := errors.New("connection refused")
	c := NewClient(fakeGen{err: transportErr})
	if _, err := c.GenerateInvestmentStrategy(context.Background(), validStrategyInput()); !errors.Is(err, transportErr) {
		t.Fatalf("err = %v, want wrapped transport error", err)
	}
}

func TestSummarizeMarketReport(t *testing.T) {
	c := NewClient(fakeGen{text: `{"summary":"Markets are calm."}`})
	out, err := c.SummarizeMarketReport(context.Background(), SummaryInput{Report: "Quarterly report text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary != "Markets are calm." {
		t.Fatalf("unexpected summary: %q", out.Summary)
	}

	if _, err := c.SummarizeMarketReport(context.Background(), SummaryInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	c = NewClient(fakeGen{text: `{"summary":""}`})
	if _, err := c.SummarizeMarketReport(context.Background(), SummaryInput{Report: "r"}); !errors.Is(err, ErrInvalidOutput) {
		t.Fatalf("err = %v, want ErrInvalidOutput", err)
	}
}

func TestCleanModelJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"Here you go: {\"a\":1} hope it helps", `{"a":1}`},
		{"no json at all", "no json at all"},
	}
	for _, tc := range cases {
		if got := cleanModelJSON(tc.in); got != tc.want {
			t.Fatalf("cleanModelJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
