package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/metrics"
	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/httpx"
	"github.com/aussiebroadwan/yup/pkg/jwtx"
	"github.com/aussiebroadwan/yup/pkg/slogx"

	_ "github.com/aussiebroadwan/yup/api/yup" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeyManager
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metrics.Metrics

	store             store.Store
	Access            *service.AccessPolicy
	UserService       *service.UserService
	SessionService    *service.SessionService
	EventService      *service.EventService
	ResponseService   *service.ResponseService
	InvitationService *service.InvitationService
	AdminService      *service.AdminService

	// LoginURL and UpgradeURL are where premium pages send anonymous and
	// non-premium callers.
	LoginURL   string
	UpgradeURL string

	// SecureCookies marks the session cookie Secure. Off for plain-http
	// local development only.
	SecureCookies bool
}

func NewRouter(
	keys *jwtx.KeyManager,
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		keys:          keys,
		verifier:      keys.Verifier,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		store:         st,
		metrics:       m,
		logger:        logger,
		LoginURL:      "/login",
		UpgradeURL:    "/upgrade",
		SecureCookies: true,
	}

	// The metrics middleware must wrap the mux directly so the matched
	// pattern is visible once the handler returns.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		m.InstrumentHandler,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerUsers()
	r.registerBranding()
	r.registerEvents()
	r.registerResponses()
	r.registerInvitations()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Yup RSVP Service API
//	@version		0.1.0
//	@description	Event pages, invitations and RSVPs. Hosts create events and invite guests;
//	@description	guests answer yup, nope or maybe with or without an account.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/yup
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from POST /v1/sessions. Format: "Bearer {token}". Browsers may send the yup_session cookie instead.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{
		SessionService: r.SessionService,
		SecureCookies:  r.SecureCookies,
	}

	// POST /sessions - strict rate limit by IP (password guessing)
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// DELETE /sessions - only clears the cookie, no session needed
	r.Mux.Handle("DELETE /v1/sessions",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService:  r.UserService,
		EventService: r.EventService,
	}

	// POST /users - strict rate limit by IP (public signup)
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/users/me", read(h.HandleMe))
	r.Mux.Handle("PATCH /v1/users/me", write(h.HandleUpdateProfile))
	r.Mux.Handle("GET /v1/users/me/events", read(h.HandleMyEvents))
	r.Mux.Handle("PUT /v1/users/me/sms", write(h.HandleSMSPreference))

	// Phone verification sends messages, so both steps get the strict profile.
	r.Mux.Handle("POST /v1/users/me/phone/verification",
		httpx.Chain(http.HandlerFunc(h.HandleStartPhoneVerification),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/users/me/phone/verification/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirmPhoneVerification),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerBranding() {
	h := &UsersHandler{UserService: r.UserService}

	// Premium pages redirect instead of answering 401/403.
	gated := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.OptionalAuthn(r.verifier),
			httpx.RequireOrRedirect(r.Access.HasPremium, r.LoginURL, r.UpgradeURL),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/users/me/branding", gated(h.HandleGetBranding))
	r.Mux.Handle("PUT /v1/users/me/branding", gated(h.HandleUpdateBranding))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{EventService: r.EventService}

	// GET /events - public listing
	r.Mux.Handle("GET /v1/events",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// GET /events/{slug} - anonymous viewers allowed, session unlocks private events
	r.Mux.Handle("GET /v1/events/{slug}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.OptionalAuthn(r.verifier),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/events", write(h.HandleCreate))
	r.Mux.Handle("PATCH /v1/events/{slug}", write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/events/{slug}", write(h.HandleDelete))
}

func (r *Router) registerResponses() {
	h := &ResponsesHandler{ResponseService: r.ResponseService}

	// POST /events/{slug}/responses - guests allowed; limited per IP and event
	r.Mux.Handle("POST /v1/events/{slug}/responses",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.OptionalAuthn(r.verifier),
			httpx.RateLimitByIPAndPath(httpx.PublicLimit, "slug"),
		),
	)

	r.Mux.Handle("GET /v1/events/{slug}/responses",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/events/{slug}/responses/me",
		httpx.Chain(http.HandlerFunc(h.HandleMine),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{
		InvitationService: r.InvitationService,
	}

	// Creating and resending send messages, moderate limit by host
	r.Mux.Handle("POST /v1/events/{slug}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/events/{slug}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/events/{slug}/invitations/{id}/resend",
		httpx.Chain(http.HandlerFunc(h.HandleResend),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /invitations/{token}/view - public, tokens are unguessable but
	// keep probing slow
	r.Mux.Handle("POST /v1/invitations/{token}/view",
		httpx.Chain(http.HandlerFunc(h.HandleView),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}

	admin := func(fn http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireOrForbid(r.Access.IsAdmin),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/admin/users", admin(h.HandleListUsers, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/admin/users/{id}/flags", admin(h.HandleSetFlags, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
