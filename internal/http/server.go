// Package http provides the web server, page handlers and JSON endpoints.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"wealthwise/internal/currency"
	"wealthwise/internal/log"
	"wealthwise/internal/middleware/ratelimit"
	"wealthwise/internal/middleware/security"
	"wealthwise/internal/middleware/trace"
	"wealthwise/internal/services"
	"wealthwise/internal/store"
	appweb "wealthwise/web"
)

// Deps carries everything the server needs to serve requests.
type Deps struct {
	Transactions *store.TransactionStore
	Budgets      *store.BudgetStore
	Goals        *store.GoalStore
	Profile      *store.ProfileStore
	Currency     *currency.Service
	Advisor      *services.AdvisorService
	Report       *services.ReportService
	Logger       *log.Logger

	RateLimitPerMinute int
	Now                func() time.Time
}

type Server struct {
	http.Server
	templates *template.Template
	logger    *log.Logger

	transactions *store.TransactionStore
	budgets      *store.BudgetStore
	goals        *store.GoalStore
	profile      *store.ProfileStore
	currency     *currency.Service
	advisor      *services.AdvisorService
	report       *services.ReportService

	limiter      *ratelimit.Limiter
	clientIP     *security.ClientIPExtractor
	now          func() time.Time
	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, deps Deps) *Server {
	mux := http.NewServeMux()

	logger := deps.Logger
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:       logger.WithComponent(log.ComponentHTTP),
		transactions: deps.Transactions,
		budgets:      deps.Budgets,
		goals:        deps.Goals,
		profile:      deps.Profile,
		currency:     deps.Currency,
		advisor:      deps.Advisor,
		report:       deps.Report,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: deps.RateLimitPerMinute,
		}),
		clientIP: security.NewClientIPExtractor(),
		now:      now,
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		s.logger.Warn("Failed parsing templates", log.FieldError, err.Error())
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", log.FieldError, err.Error())
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	// Pages
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("GET /transactions", s.handleTransactionsPage)
	mux.HandleFunc("GET /budgets", s.handleBudgetsPage)
	mux.HandleFunc("GET /goals", s.handleGoalsPage)
	mux.HandleFunc("GET /recommendations", s.handleRecommendationsPage)
	mux.HandleFunc("GET /report", s.handleReportPage)
	mux.HandleFunc("GET /profile", s.handleProfilePage)
	mux.HandleFunc("GET /education", s.handleEducationPage)

	// Mutations
	mux.HandleFunc("POST /transactions", s.handleCreateTransaction)
	mux.HandleFunc("POST /transactions/delete", s.handleDeleteTransaction)
	mux.HandleFunc("POST /budgets", s.handleSaveBudget)
	mux.HandleFunc("POST /budgets/delete", s.handleDeleteBudget)
	mux.HandleFunc("POST /goals", s.handleSaveGoal)
	mux.HandleFunc("POST /goals/delete", s.handleDeleteGoal)
	mux.HandleFunc("POST /goals/distribute", s.handleDistributeGoals)
	mux.HandleFunc("POST /currency", s.handleSetCurrency)
	mux.HandleFunc("POST /profile", s.handleUpdateProfile)

	// Model-backed partials
	mux.HandleFunc("POST /recommendations/generate", s.handleGenerateStrategy)
	mux.HandleFunc("POST /report/summarize", s.handleSummarizeReport)

	// JSON endpoints for the dashboard charts
	mux.HandleFunc("GET /api/performance", s.handlePerformanceData)
	mux.HandleFunc("GET /api/allocation", s.handleAllocationData)

	headersMw := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	traceMw := trace.NewMiddleware(s.clientIP.ExtractClientIP)
	limitMw := s.limiter.Middleware(s.clientIP.ExtractClientIP, nil)

	s.Server.Handler = headersMw.Middleware(traceMw.Middleware(s.postOnly(limitMw)(mux)))

	return s
}

// postOnly restricts a middleware to mutating requests so page loads
// and chart polling never count against the limit.
func (s *Server) postOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
