package api

import (
	"context"
	"io"
	"net/http"
	"time"

	planner_service "github.com/erfan-rahmanian/barnameh/internal/business/planner"
	"github.com/erfan-rahmanian/barnameh/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	jwts          jwtManager
	refreshTokens refreshTokenRepository
	planner       plannerService

	registry       *prometheus.Registry
	requestsTotal  *prometheus.CounterVec
	eventMutations *prometheus.CounterVec
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type plannerService interface {
	AddEvent(ctx context.Context, date time.Time, info *model.EventCreate) (*model.Event, error)
	ToggleComplete(ctx context.Context, date time.Time, eventID string) error
	DeleteEvent(ctx context.Context, date time.Time, eventID string) error
	MonthView(date, now time.Time) *planner_service.MonthView
	WeekView(date, now time.Time) *planner_service.WeekView
	DayAgenda(date time.Time) *planner_service.Agenda
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	jwts jwtManager,
	refreshTokens refreshTokenRepository,
	planner plannerService,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		randSource:    randSource,
		jwts:          jwts,
		refreshTokens: refreshTokens,
		planner:       planner,
	}
	a.setupMetrics()
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes, a.metricsMiddleware)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", a.loginHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(a.auth)

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/month", a.getMonthViewHandler)
			r.Get("/week", a.getWeekViewHandler)
		})

		r.Route("/days/{date}", func(r chi.Router) {
			r.Get("/agenda", a.getDayAgendaHandler)
			r.Post("/events", a.createEventHandler)
			r.Post("/events/{eventID}/toggle", a.toggleEventHandler)
			r.Delete("/events/{eventID}", a.deleteEventHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
