// Package ledgerdelivery manages delivery layer of deposits and withdrawals.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"
	"github.com/go-petr/bank-ledger/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Deposit(ctx context.Context, accountID int32, amount string) (domain.LedgerTxResult, error)
	Withdraw(ctx context.Context, accountID int32, amount string) (domain.LedgerTxResult, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) Handler {
	return Handler{service: ls}
}

type mutationRequest struct {
	AccountID int32  `json:"account_id" binding:"required,min=1"`
	Amount    string `json:"amount" binding:"required"`
}

type data struct {
	Account     domain.Account     `json:"account"`
	Transaction domain.Transaction `json:"transaction"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Deposit handles http request to deposit money into an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.mutate(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money from an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.mutate(gctx, h.service.Withdraw)
}

func (h *Handler) mutate(gctx *gin.Context, op func(ctx context.Context, accountID int32, amount string) (domain.LedgerTxResult, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req mutationRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	result, err := op(ctx, req.AccountID, req.Amount)
	if err != nil {
		var insufficientErr *domain.InsufficientBalanceError
		if errors.As(err, &insufficientErr) {
			gctx.JSON(http.StatusBadRequest, web.Response{
				Error: domain.ErrInsufficientBalance.Error(),
				Detail: &web.ErrorDetail{
					AccountID:       insufficientErr.AccountID,
					CurrentBalance:  insufficientErr.Balance,
					RequestedAmount: insufficientErr.Requested,
				},
			})

			return
		}

		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Response{
				Error:  err.Error(),
				Detail: &web.ErrorDetail{AccountID: req.AccountID},
			})

			return
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrInsufficientBalance:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{
			Account:     result.Account,
			Transaction: result.Transaction,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
