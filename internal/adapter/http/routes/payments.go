package routes

import (
	"payflux/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPay     = "/pay"
	PathHistory = "/history"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.POST(PathPay, paymentHandler.Pay)
	rg.GET(PathHistory, paymentHandler.History)
}
