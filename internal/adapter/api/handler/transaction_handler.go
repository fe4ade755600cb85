package handler

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/middleware"
	"shareheart/internal/domain/entity"
	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type TransactionHandler struct {
	walletUseCase *usecase.WalletUseCase
}

func NewTransactionHandler(walletUseCase *usecase.WalletUseCase) *TransactionHandler {
	return &TransactionHandler{
		walletUseCase: walletUseCase,
	}
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	txns, err := h.walletUseCase.List(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, txns)
}

type spendPointsRequest struct {
	Amount      int                    `json:"amount" validate:"required,gt=0"`
	Description string                 `json:"description" validate:"required,max=200"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type transactionResult struct {
	Transaction *entity.Transaction `json:"transaction"`
	Balance     int                 `json:"balance"`
}

// SpendPoints records a debit against the caller. Credits only come from the
// system or an admin.
func (h *TransactionHandler) SpendPoints(c echo.Context) error {
	var req spendPointsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	txn, balance, err := h.walletUseCase.Record(c.Request().Context(), middleware.UID(c), usecase.RecordInput{
		Type:        entity.TransactionDebit,
		Amount:      req.Amount,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, transactionResult{Transaction: txn, Balance: balance})
}
