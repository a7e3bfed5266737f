// Package transactiondelivery manages delivery layer of transaction history.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/transactionservice"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"
	"github.com/go-petr/bank-ledger/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	List(ctx context.Context, accountID, limit int32) ([]domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type listURI struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type listQuery struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=1000"`
}

type historyData struct {
	AccountID         int32                `json:"account_id"`
	Transactions      []domain.Transaction `json:"transactions"`
	TotalTransactions int32                `json:"total_transactions"`
}
type historyResponse struct {
	Data historyData `json:"data,omitempty"`
}

// List handles http request to get transaction history of an account.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri listURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
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

	query := listQuery{Limit: transactionservice.DefaultLimit}
	if err := gctx.ShouldBindQuery(&query); err != nil {
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

	transactions, err := h.service.List(ctx, uri.ID, query.Limit)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Response{
				Error:  err.Error(),
				Detail: &web.ErrorDetail{AccountID: uri.ID},
			})

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := historyResponse{
		Data: historyData{
			AccountID:         uri.ID,
			Transactions:      transactions,
			TotalTransactions: int32(len(transactions)),
		},
	}

	gctx.JSON(http.StatusOK, res)
}
