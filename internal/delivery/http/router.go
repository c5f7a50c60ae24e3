package http

import (
	"net/http"

	"oncall-roster/internal/delivery/http/handler"
	"oncall-roster/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	periodHandler       *handler.PeriodHandler
	availabilityHandler *handler.AvailabilityHandler
	preferenceHandler   *handler.PreferenceHandler
	rosterHandler       *handler.RosterHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	periodHandler *handler.PeriodHandler,
	availabilityHandler *handler.AvailabilityHandler,
	preferenceHandler *handler.PreferenceHandler,
	rosterHandler *handler.RosterHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		periodHandler:       periodHandler,
		availabilityHandler: availabilityHandler,
		preferenceHandler:   preferenceHandler,
		rosterHandler:       rosterHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Shared read routes (any authenticated user)
	shared := api.PathPrefix("").Subrouter()
	shared.Use(r.authMiddleware.Authenticate)
	shared.Use(middleware.RequireAdminOrPhysician)
	shared.HandleFunc("/periods", r.periodHandler.List).Methods(http.MethodGet)
	shared.HandleFunc("/periods/{id}", r.periodHandler.Get).Methods(http.MethodGet)
	shared.HandleFunc("/periods/{periodId}/roster/assignments", r.rosterHandler.Assignments).Methods(http.MethodGet)

	// Physician routes (availability and preferences)
	physician := api.PathPrefix("").Subrouter()
	physician.Use(r.authMiddleware.Authenticate)
	physician.Use(middleware.RequirePhysician)
	physician.HandleFunc("/availability", r.availabilityHandler.Set).Methods(http.MethodPut)
	physician.HandleFunc("/availability/batch", r.availabilityHandler.SetBatch).Methods(http.MethodPut)
	physician.HandleFunc("/periods/{periodId}/availability", r.availabilityHandler.ListMine).Methods(http.MethodGet)
	physician.HandleFunc("/periods/{periodId}/preference", r.preferenceHandler.Set).Methods(http.MethodPut)
	physician.HandleFunc("/periods/{periodId}/preference", r.preferenceHandler.GetMine).Methods(http.MethodGet)
	physician.HandleFunc("/periods/{periodId}/preference/monthly-targets", r.preferenceHandler.SetMonthlyTargets).Methods(http.MethodPut)

	// Admin routes (period and roster management)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/physicians", r.authHandler.Register).Methods(http.MethodPost)
	admin.HandleFunc("/periods", r.periodHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/periods/{id}", r.periodHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/periods/{periodId}/roster/summary", r.rosterHandler.Summary).Methods(http.MethodGet)
	admin.HandleFunc("/periods/{periodId}/roster/run", r.rosterHandler.Run).Methods(http.MethodPost)
	admin.HandleFunc("/periods/{periodId}/roster/notify", r.rosterHandler.Notify).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecent).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
