// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/internal/accountdelivery"
	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/accountservice"
	"github.com/go-petr/bank-ledger/internal/events/kafka"
	"github.com/go-petr/bank-ledger/internal/ledgerdelivery"
	"github.com/go-petr/bank-ledger/internal/ledgerrepo"
	"github.com/go-petr/bank-ledger/internal/ledgerservice"
	"github.com/go-petr/bank-ledger/internal/middleware"
	"github.com/go-petr/bank-ledger/internal/transactiondelivery"
	"github.com/go-petr/bank-ledger/internal/transactionrepo"
	"github.com/go-petr/bank-ledger/internal/transactionservice"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB        *sql.DB
	Engine    *gin.Engine
	Config    configpkg.Config
	publisher *kafka.Publisher
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Close releases resources held by the server besides the db connection.
func (s *Server) Close() error {
	if s.publisher != nil {
		return s.publisher.Close()
	}

	return nil
}

// root describes the API surface for callers probing the service.
func root(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, gin.H{
		"message": "Bank Ledger API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"create_account": "POST /accounts",
			"deposit":        "POST /accounts/deposit",
			"withdraw":       "POST /accounts/withdraw",
			"balance":        "GET /accounts/:id/balance",
			"transactions":   "GET /accounts/:id/transactions",
		},
	})
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := accountrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)

	var publisher *kafka.Publisher

	// Event publishing is optional; the ledger works without a broker.
	var ledgerPublisher ledgerservice.Publisher
	if config.KafkaBrokers != "" {
		publisher = kafka.NewPublisher(strings.Split(config.KafkaBrokers, ","), config.KafkaTopic)
		ledgerPublisher = publisher
	}

	accountService := accountservice.New(accountRepo)
	ledgerService := ledgerservice.New(ledgerRepo, ledgerPublisher)
	transactionService := transactionservice.New(transactionRepo, accountService)

	accountHandler := accountdelivery.NewHandler(accountService)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	authRoutes := engine.Group("/").Use(middleware.APIKeyAuth(config.APIKey))

	authRoutes.GET("/", root)
	authRoutes.POST("/accounts", accountHandler.Create)
	authRoutes.POST("/accounts/deposit", ledgerHandler.Deposit)
	authRoutes.POST("/accounts/withdraw", ledgerHandler.Withdraw)
	authRoutes.GET("/accounts/:id/balance", accountHandler.GetBalance)
	authRoutes.GET("/accounts/:id/transactions", transactionHandler.List)

	server := &Server{
		DB:        conn,
		Engine:    engine,
		Config:    config,
		publisher: publisher,
	}

	return server, nil
}
