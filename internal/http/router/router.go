package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/naf3/admin-console-api/internal/auth"
	"github.com/naf3/admin-console-api/internal/config"
	"github.com/naf3/admin-console-api/internal/http/handler"
	"github.com/naf3/admin-console-api/internal/http/middleware"
	"go.uber.org/zap"
)

type Router struct {
	cfg                *config.Config
	logger             *zap.Logger
	rateLimiter        *middleware.RateLimiter
	authHandler        *handler.AuthHandler
	partnerHandler     *handler.PartnerHandler
	charityHandler     *handler.CharityHandler
	donorHandler       *handler.DonorHandler
	recipientHandler   *handler.RecipientHandler
	transactionHandler *handler.TransactionHandler
	proxyHandler       *handler.ProxyHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	partnerHandler *handler.PartnerHandler,
	charityHandler *handler.CharityHandler,
	donorHandler *handler.DonorHandler,
	recipientHandler *handler.RecipientHandler,
	transactionHandler *handler.TransactionHandler,
	proxyHandler *handler.ProxyHandler,
) *Router {
	return &Router{
		cfg:                cfg,
		logger:             logger,
		rateLimiter:        rateLimiter,
		authHandler:        authHandler,
		partnerHandler:     partnerHandler,
		charityHandler:     charityHandler,
		donorHandler:       donorHandler,
		recipientHandler:   recipientHandler,
		transactionHandler: transactionHandler,
		proxyHandler:       proxyHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": rt.cfg.App.Name,
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Login needs no token; everything else relays the caller's bearer
		// token to the backend, which enforces authorization.
		r.Post("/auth/login", rt.authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.TokenRelay)

			// Auth
			r.Get("/auth/me", rt.authHandler.Me)

			// Partners
			r.Route("/partners", func(r chi.Router) {
				r.Get("/", rt.partnerHandler.ListPartners)
				r.Post("/redeem-points", rt.partnerHandler.RedeemPoints)
				r.Get("/{id}", rt.partnerHandler.GetPartner)
			})

			// Charities
			r.Route("/charities", func(r chi.Router) {
				r.Get("/", rt.charityHandler.ListCharities)
				r.Get("/{id}", rt.charityHandler.GetCharity)
			})

			// Donors
			r.Route("/donors", func(r chi.Router) {
				r.Get("/", rt.donorHandler.ListDonors)
				r.Get("/{id}", rt.donorHandler.GetDonor)
			})

			// Recipients
			r.Route("/recipients", func(r chi.Router) {
				r.Get("/", rt.recipientHandler.ListRecipients)
				r.Get("/{id}", rt.recipientHandler.GetRecipient)
			})

			// Transactions (merged activity feed)
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", rt.transactionHandler.ListTransactions)
				r.Get("/{id}", rt.transactionHandler.GetTransaction)
			})
		})
	})

	// Raw pass-through for console screens that need unnormalized backend
	// responses, one mount per upstream base.
	r.HandleFunc("/proxy/*", rt.proxyHandler.ForwardAPI)
	r.HandleFunc("/admin-proxy/*", rt.proxyHandler.ForwardAdmin)

	return r
}
