package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"

	_ "github.com/aussiebroadwan/harvest/api/market" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.RateLimitProfiles

	store              store.Store
	Gate               *service.Gate
	AuthService        *service.AuthService
	UserService        *service.UserService
	ApprovalService    *service.ApprovalService
	BootstrapService   *service.BootstrapService
	ProfileService     *service.ProfileService
	ProductService     *service.ProductService
	OrderService       *service.OrderService
	AppointmentService *service.AppointmentService
	PrebookingService  *service.PrebookingService
	RatingService      *service.RatingService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	limits httpx.RateLimitProfiles,
	allowedOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		limits:       limits,
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBootstrap()
	r.registerAdmin()
	r.registerProfiles()
	r.registerProducts()
	r.registerOrders()
	r.registerAppointments()
	r.registerPrebookings()
	r.registerRatings()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Harvest Marketplace API
//	@version		0.1.0
//	@description	Agriculture marketplace connecting farmers, experts and dealers.
//	@description
//	@description				New accounts start pending and must be approved by an admin before they can log in. Tokens are HS256-signed JWTs.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/harvest
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(httpx.Metrics()(r.Mux), r.middlewares...).ServeHTTP(w, req)
}

// gated wraps h with the access gate, a per-user rate limit and, when roles
// is non-empty, a role check.
func (r *Router) gated(h http.HandlerFunc, limit httpx.RateLimitConfig, roles ...domain.Role) http.Handler {
	mws := []httpx.Middleware{
		Authn(r.Gate),
		httpx.RateLimitByUser(limit),
	}
	for _, role := range roles {
		mws = append(mws, RequireRole(role))
	}
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /register - strict rate limit by IP (public signup)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)

	// POST /login - strict, keyed by IP + email to slow down guessing
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.limits.Strict, "email"),
		),
	)

	r.Mux.Handle("GET /v1/auth/me", r.gated(h.HandleMe, r.limits.Lenient))
	r.Mux.Handle("POST /v1/auth/refresh", r.gated(h.HandleRefresh, r.limits.Moderate))
	r.Mux.Handle("PUT /v1/users/me", r.gated(h.HandleUpdateMe, r.limits.Moderate))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{UserService: r.UserService, ApprovalService: r.ApprovalService}

	r.Mux.Handle("GET /v1/admin/users/pending", r.gated(h.HandleListPending, r.limits.Moderate, domain.RoleAdmin))
	r.Mux.Handle("GET /v1/admin/users", r.gated(h.HandleListUsers, r.limits.Moderate, domain.RoleAdmin))
	r.Mux.Handle("PUT /v1/admin/users/{id}/approve", r.gated(h.HandleApprove, r.limits.Moderate, domain.RoleAdmin))
	r.Mux.Handle("PUT /v1/admin/users/{id}/reject", r.gated(h.HandleReject, r.limits.Moderate, domain.RoleAdmin))
	r.Mux.Handle("PUT /v1/admin/users/{id}/active", r.gated(h.HandleSetActive, r.limits.Moderate, domain.RoleAdmin))
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{ProfileService: r.ProfileService}
	read, write := r.limits.Lenient, r.limits.Moderate

	r.Mux.Handle("GET /v1/farmers", r.gated(h.HandleListFarmers, read))
	r.Mux.Handle("GET /v1/farmers/{id}", r.gated(h.HandleGetFarmer, read))
	r.Mux.Handle("GET /v1/farmers/me", r.gated(h.HandleGetMyFarmer, read, domain.RoleFarmer))
	r.Mux.Handle("POST /v1/farmers/me", r.gated(h.HandleCreateFarmer, write, domain.RoleFarmer))
	r.Mux.Handle("PUT /v1/farmers/me", r.gated(h.HandleUpdateFarmer, write, domain.RoleFarmer))

	r.Mux.Handle("GET /v1/experts", r.gated(h.HandleListExperts, read))
	r.Mux.Handle("GET /v1/experts/{id}", r.gated(h.HandleGetExpert, read))
	r.Mux.Handle("GET /v1/experts/me", r.gated(h.HandleGetMyExpert, read, domain.RoleExpert))
	r.Mux.Handle("POST /v1/experts/me", r.gated(h.HandleCreateExpert, write, domain.RoleExpert))
	r.Mux.Handle("PUT /v1/experts/me", r.gated(h.HandleUpdateExpert, write, domain.RoleExpert))

	r.Mux.Handle("GET /v1/dealers", r.gated(h.HandleListDealers, read))
	r.Mux.Handle("GET /v1/dealers/{id}", r.gated(h.HandleGetDealer, read))
	r.Mux.Handle("GET /v1/dealers/me", r.gated(h.HandleGetMyDealer, read, domain.RoleDealer))
	r.Mux.Handle("POST /v1/dealers/me", r.gated(h.HandleCreateDealer, write, domain.RoleDealer))
	r.Mux.Handle("PUT /v1/dealers/me", r.gated(h.HandleUpdateDealer, write, domain.RoleDealer))
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	// Catalogue reads are public
	r.Mux.Handle("GET /v1/products",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(r.limits.Public)),
	)
	r.Mux.Handle("GET /v1/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(r.limits.Public)),
	)

	r.Mux.Handle("POST /v1/products", r.gated(h.HandleCreate, r.limits.Moderate, domain.RoleDealer))
	r.Mux.Handle("PUT /v1/products/{id}", r.gated(h.HandleUpdate, r.limits.Moderate, domain.RoleDealer))
	r.Mux.Handle("DELETE /v1/products/{id}", r.gated(h.HandleDelete, r.limits.Moderate, domain.RoleDealer))
}

func (r *Router) registerOrders() {
	h := &OrdersHandler{OrderService: r.OrderService}

	r.Mux.Handle("POST /v1/orders", r.gated(h.HandlePlace, r.limits.Moderate, domain.RoleFarmer))
	r.Mux.Handle("GET /v1/orders", r.gated(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("GET /v1/orders/{id}", r.gated(h.HandleGet, r.limits.Lenient))
	r.Mux.Handle("PUT /v1/orders/{id}/status", r.gated(h.HandleUpdateStatus, r.limits.Moderate))
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{AppointmentService: r.AppointmentService}

	r.Mux.Handle("POST /v1/appointments", r.gated(h.HandleBook, r.limits.Moderate, domain.RoleFarmer))
	r.Mux.Handle("GET /v1/appointments", r.gated(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("PUT /v1/appointments/{id}/status", r.gated(h.HandleUpdateStatus, r.limits.Moderate))
}

func (r *Router) registerPrebookings() {
	h := &PrebookingsHandler{PrebookingService: r.PrebookingService}

	r.Mux.Handle("POST /v1/prebookings", r.gated(h.HandleCreate, r.limits.Moderate, domain.RoleFarmer))
	r.Mux.Handle("GET /v1/prebookings", r.gated(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("GET /v1/prebookings/{id}", r.gated(h.HandleGet, r.limits.Lenient))
	r.Mux.Handle("PUT /v1/prebookings/{id}/status", r.gated(h.HandleUpdateStatus, r.limits.Moderate))
}

func (r *Router) registerRatings() {
	h := &RatingsHandler{RatingService: r.RatingService}

	r.Mux.Handle("POST /v1/farmers/{id}/ratings", r.gated(h.HandleRate, r.limits.Moderate))
	r.Mux.Handle("GET /v1/farmers/{id}/ratings", r.gated(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("DELETE /v1/ratings/{id}", r.gated(h.HandleDelete, r.limits.Moderate))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /metrics", httpx.MetricsHandler())
}
