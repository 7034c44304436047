package api

import (
	conversionHandler "affiliate-server/internal/conversions/handler"
	notificationHandler "affiliate-server/internal/notifications/handler"
	referralHandler "affiliate-server/internal/referral/handler"
	withdrawalHandler "affiliate-server/internal/withdrawals/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	referralHandler     referralHandler.Handler
	conversionHandler   conversionHandler.Handler
	withdrawalHandler   withdrawalHandler.Handler
	notificationHandler notificationHandler.Handler
}

func New(
	router *gin.RouterGroup,
	referralHandler referralHandler.Handler,
	conversionHandler conversionHandler.Handler,
	withdrawalHandler withdrawalHandler.Handler,
	notificationHandler notificationHandler.Handler,
) API {
	return API{
		router:              router,
		referralHandler:     referralHandler,
		conversionHandler:   conversionHandler,
		withdrawalHandler:   withdrawalHandler,
		notificationHandler: notificationHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Public referral redirect
	a.router.GET("/ref/:code", a.referralHandler.HandleRedirect)

	apiGroup := a.router.Group("/api")
	{
		webhooksGroup := apiGroup.Group("/webhooks")
		webhooksGroup.POST("/paystack", a.conversionHandler.HandlePaystackWebhook)
		webhooksGroup.POST("/stripe", a.conversionHandler.HandleStripeWebhook)
		webhooksGroup.POST("/admin-alerts", a.notificationHandler.HandleAdminAlert)
	}

	apiGroup.POST("/links", a.referralHandler.HandleCreateLink)
	apiGroup.POST("/withdrawals", a.withdrawalHandler.HandleCreateWithdrawal)

	adminGroup := apiGroup.Group("/admin")
	{
		adminGroup.POST("/withdrawals/:id/status", a.withdrawalHandler.HandleUpdateStatus)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
