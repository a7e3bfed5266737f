package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/bank-ledger/pkg/web"
)

// APIKeyHeader is the request header checked by the gatekeeper.
const APIKeyHeader = "X-API-Key"

var (
	// ErrAPIKeyNotProvided indicates that the request has no API key header.
	ErrAPIKeyNotProvided = errors.New("missing API key, provide the X-API-Key header")
	// ErrInvalidAPIKey indicates that the provided API key does not match.
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// APIKeyAuth verifies the caller before any handler runs.
//
// The core never sees a request that fails this check.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		provided := gctx.GetHeader(APIKeyHeader)
		if provided == "" {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrAPIKeyNotProvided))
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrInvalidAPIKey))
			return
		}

		gctx.Next()
	}
}

// AddAuthorization sets the API key header on a request. Test helper.
func AddAuthorization(r *http.Request, apiKey string) {
	r.Header.Set(APIKeyHeader, apiKey)
}
