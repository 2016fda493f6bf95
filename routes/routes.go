package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jobify-dev/jobs-api/controllers"
	"github.com/jobify-dev/jobs-api/middleware"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/jobify-dev/jobs-api/token"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Store       repository.Store
	Tokens      *token.Service
	AuthLimiter *middleware.RateLimiter
	StaticDir   string
}

// SetupRoutes configures the application routes.
func SetupRoutes(d Deps) *mux.Router {
	r := mux.NewRouter()
	fallback := fallbackHandler(d.StaticDir)
	r.NotFoundHandler = fallback
	r.MethodNotAllowedHandler = fallback

	r.HandleFunc("/healthz", controllers.HealthHandler(d.Store)).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Authentication Routes (Public, rate limited) ---
	api.Handle("/auth/register", d.AuthLimiter.Middleware(controllers.RegisterHandler(d.Store, d.Tokens))).Methods(http.MethodPost)
	api.Handle("/auth/login", d.AuthLimiter.Middleware(controllers.LoginHandler(d.Store, d.Tokens))).Methods(http.MethodPost)

	// --- Protected Routes (Auth Required) ---
	authRouter := api.PathPrefix("").Subrouter()
	authRouter.Use(middleware.Authenticate(d.Tokens))

	readOnly := middleware.RejectTestUser

	authRouter.Handle("/auth/updateUser", readOnly(controllers.UpdateUserHandler(d.Store, d.Tokens))).Methods(http.MethodPatch)

	authRouter.HandleFunc("/jobs", controllers.GetAllJobsHandler(d.Store)).Methods(http.MethodGet)
	authRouter.Handle("/jobs", readOnly(controllers.CreateJobHandler(d.Store))).Methods(http.MethodPost)
	// stats must be registered before the {id} routes
	authRouter.HandleFunc("/jobs/stats", controllers.ShowStatsHandler(d.Store)).Methods(http.MethodGet)
	authRouter.HandleFunc("/jobs/{id}", controllers.GetJobHandler(d.Store)).Methods(http.MethodGet)
	authRouter.Handle("/jobs/{id}", readOnly(controllers.UpdateJobHandler(d.Store))).Methods(http.MethodPatch)
	authRouter.Handle("/jobs/{id}", readOnly(controllers.DeleteJobHandler(d.Store))).Methods(http.MethodDelete)

	return r
}
