package handler

import (
	"marketplace-settlement/internal/adapter/http/middleware"
	"marketplace-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentEvents  ports.PaymentEventService
	Bridge         ports.ShippingBridge
	Payouts        ports.PayoutService
	Returns        ports.ReturnService
	SigSvc         ports.SignatureService
	TokenSvc       ports.TokenService
	PaymentSecret  string
	CarrierToken   string                    // empty = carrier webhook disabled
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Gatherer       prometheus.Gatherer // nil = no /metrics
	AuditSvc       ports.AuditService  // nil = audit logging disabled
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Gatherer != nil {
		r.GET("/metrics", Metrics(deps.Gatherer))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	webhookHandler := NewWebhookHandler(deps.PaymentEvents, deps.Bridge, deps.Logger)
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/payments",
			rl("webhooks_payment"),
			middleware.WebhookSignature(deps.PaymentSecret, deps.SigSvc, deps.Logger),
			webhookHandler.PaymentEvent)
		if deps.CarrierToken != "" {
			webhooks.POST("/carrier",
				rl("webhooks_carrier"),
				middleware.CarrierToken(deps.CarrierToken),
				webhookHandler.CarrierEvent)
		}
	}

	admin := r.Group("/admin", middleware.JWTAuth(deps.TokenSvc), middleware.RequireAdmin(), rl("admin"))
	if deps.AuditSvc != nil {
		admin.Use(middleware.AuditLog(deps.AuditSvc))
	}

	payoutHandler := NewPayoutHandler(deps.Payouts)
	bills := admin.Group("/payout-bills")
	{
		bills.GET("", payoutHandler.ListBills)
		bills.GET("/:id", payoutHandler.GetBill)
		bills.POST("/:id/review", payoutHandler.Review)
		bills.POST("/:id/pay", payoutHandler.MarkPaid)
	}

	returnHandler := NewReturnHandler(deps.Returns)
	admin.POST("/returns/:id/resolve", returnHandler.Resolve)

	return r
}
