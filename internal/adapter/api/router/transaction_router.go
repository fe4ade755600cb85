package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupTransactionRouter(e *echo.Echo, transactionHandler *handler.TransactionHandler, m Middlewares) {
	transactions := e.Group("/v1/transactions", m.protected()...)

	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.SpendPoints)
}
