package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"wealthwise/internal/ai"
)

func TestGenerateStrategyHandler(t *testing.T) {
	model := &stubModel{
		strategyFn: func(_ context.Context, in ai.StrategyInput) (*ai.StrategyOutput, error) {
			return &ai.StrategyOutput{
				StrategyDescription: "Keep a diversified core portfolio",
				AssetAllocation:     "70% stocks, 30% bonds",
				SpecificInvestments: "Total market index fund",
			}, nil
		},
	}
	srv := newTestServer(t, serverOptions{model: model})

	rr := doForm(srv, http.MethodPost, "/recommendations/generate",
		"goals=Retire+at+sixty+with+a+paid+off+home&risk=moderate&conditions=Rates+falling+and+earnings+stable")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	for _, want := range []string{"Keep a diversified core portfolio", "70% stocks, 30% bonds", "Total market index fund"} {
		if !strings.Contains(body, want) {
			t.Errorf("strategy partial missing %q\nbody: %s", want, body)
		}
	}
}

func TestGenerateStrategyHandlerRejectsShortInput(t *testing.T) {
	model := &stubModel{
		strategyFn: func(_ context.Context, _ ai.StrategyInput) (*ai.StrategyOutput, error) {
			t.Fatal("model must not be called")
			return nil, nil
		},
	}
	srv := newTestServer(t, serverOptions{model: model})

	rr := doForm(srv, http.MethodPost, "/recommendations/generate", "goals=short&risk=moderate&conditions=Rates+falling+and+earnings+stable")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rr.Code)
	}
}

func TestGenerateStrategyHandlerHidesModelFailure(t *testing.T) {
	model := &stubModel{
		strategyFn: func(_ context.Context, _ ai.StrategyInput) (*ai.StrategyOutput, error) {
			return nil, errors.New("upstream quota exhausted: project 12345")
		},
	}
	srv := newTestServer(t, serverOptions{model: model})

	rr := doForm(srv, http.MethodPost, "/recommendations/generate",
		"goals=Retire+at+sixty+with+a+paid+off+home&risk=moderate&conditions=Rates+falling+and+earnings+stable")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "quota") || strings.Contains(body, "12345") {
		t.Errorf("model failure detail leaked to client: %s", body)
	}
	if !strings.Contains(body, "try again") {
		t.Errorf("generic failure message missing: %s", body)
	}
}

func TestGenerateStrategyHandlerWithoutModel(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rr := doForm(srv, http.MethodPost, "/recommendations/generate",
		"goals=Retire+at+sixty+with+a+paid+off+home&risk=moderate&conditions=Rates+falling+and+earnings+stable")
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rr.Code)
	}
}

func TestSummarizeReportHandler(t *testing.T) {
	var gotReport string
	model := &stubModel{
		summaryFn: func(_ context.Context, in ai.SummaryInput) (*ai.SummaryOutput, error) {
			gotReport = in.Report
			return &ai.SummaryOutput{Summary: "Your balance grew steadily this year."}, nil
		},
	}
	srv := newTestServer(t, serverOptions{model: model})

	rr := doForm(srv, http.MethodPost, "/report/summarize", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Your balance grew steadily this year.") {
		t.Errorf("summary partial missing summary text: %s", rr.Body.String())
	}
	if !strings.Contains(gotReport, "Total portfolio value") {
		t.Errorf("model did not receive the report text, got: %.80s", gotReport)
	}
}

func TestSummarizeReportHandlerFailure(t *testing.T) {
	model := &stubModel{
		summaryFn: func(_ context.Context, _ ai.SummaryInput) (*ai.SummaryOutput, error) {
			return nil, errors.New("deadline exceeded talking to model backend")
		},
	}
	srv := newTestServer(t, serverOptions{model: model})

	rr := doForm(srv, http.MethodPost, "/report/summarize", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "deadline exceeded") {
		t.Errorf("failure detail leaked: %s", rr.Body.String())
	}
}
