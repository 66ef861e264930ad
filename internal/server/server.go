package server

import (
	"context"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/openmsig/msig-client/internal/wallet"
	"github.com/openmsig/msig-client/pkg/db/models"
	"github.com/openmsig/msig-client/pkg/types"
)

// WalletSession is the surface of the wallet service the HTTP layer
// drives.
type WalletSession interface {
	Engine() *wallet.Engine
	Gateway() *wallet.Gateway
	Connection() types.ConnectionState
	Reconfigure(ctx context.Context, conn types.ConnectionState) error
}

// ActionHistory reads the persisted audit trail.
type ActionHistory interface {
	FindActionRecords(sessionID string, limit int) ([]models.ActionRecord, error)
}

type Server struct {
	echo    *echo.Echo
	session WalletSession
	history ActionHistory
}

func NewServer(session WalletSession, history ActionHistory) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:    e,
		session: session,
		history: history,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.echo.Group("/api/v1")
	api.GET("/transactions", s.listTransactions)
	api.POST("/transactions", s.addTransaction)
	api.POST("/transactions/:id/confirm", s.confirmTransaction)
	api.POST("/transactions/:id/revoke", s.revokeConfirmation)
	api.GET("/owners", s.listOwners)
	api.POST("/owners", s.addOwner)
	api.PUT("/owners", s.replaceOwner)
	api.GET("/actions", s.listActions)
	api.GET("/connection", s.getConnection)
	api.PUT("/connection", s.putConnection)
}

func (s *Server) Start(listenAddr string) error {
	log.Info().Str("listenAddr", listenAddr).Msg("[Server] [Start] HTTP API listening")
	return s.echo.Start(listenAddr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) listTransactions(c echo.Context) error {
	return c.JSON(http.StatusOK, s.session.Engine().Snapshot())
}

type addTransactionRequest struct {
	Destination string                 `json:"destination"`
	ABI         string                 `json:"abi"`
	Method      string                 `json:"method"`
	Args        map[string]interface{} `json:"args"`
	Value       string                 `json:"value"`
}

func (s *Server) addTransaction(c echo.Context) error {
	var req addTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	value := big.NewInt(0)
	if req.Value != "" {
		parsed, ok := new(big.Int).SetString(req.Value, 10)
		if !ok {
			return actionError(c, &wallet.ValidationError{Field: "value", Message: "not a decimal integer"})
		}
		value = parsed
	}
	receipt, err := s.session.Gateway().AddNewTransaction(c.Request().Context(), req.Destination, req.ABI, req.Method, req.Args, value)
	if err != nil {
		return actionError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (s *Server) confirmTransaction(c echo.Context) error {
	id, err := parseTxID(c.Param("id"))
	if err != nil {
		return actionError(c, err)
	}
	receipt, err := s.session.Gateway().ConfirmTransaction(c.Request().Context(), id)
	if err != nil {
		return actionError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (s *Server) revokeConfirmation(c echo.Context) error {
	id, err := parseTxID(c.Param("id"))
	if err != nil {
		return actionError(c, err)
	}
	receipt, err := s.session.Gateway().RevokeConfirmation(c.Request().Context(), id)
	if err != nil {
		return actionError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (s *Server) listOwners(c echo.Context) error {
	owners, err := s.session.Gateway().Owners(c.Request().Context())
	if err != nil {
		return actionError(c, err)
	}
	hexOwners := make([]string, 0, len(owners))
	for _, owner := range owners {
		hexOwners = append(hexOwners, owner.Hex())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"owners": hexOwners})
}

type addOwnerRequest struct {
	Owner string `json:"owner"`
}

func (s *Server) addOwner(c echo.Context) error {
	var req addOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	receipt, err := s.session.Gateway().AddOwner(c.Request().Context(), req.Owner)
	if err != nil {
		return actionError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}

type replaceOwnerRequest struct {
	OldOwner string `json:"oldOwner"`
	NewOwner string `json:"newOwner"`
}

func (s *Server) replaceOwner(c echo.Context) error {
	var req replaceOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	receipt, err := s.session.Gateway().ReplaceOwner(c.Request().Context(), req.OldOwner, req.NewOwner)
	if err != nil {
		return actionError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (s *Server) listActions(c echo.Context) error {
	if s.history == nil {
		return c.JSON(http.StatusOK, []models.ActionRecord{})
	}
	sessionID := c.QueryParam("sessionId")
	if sessionID == "" {
		sessionID = s.session.Engine().SessionKey().String()
	}
	records, err := s.history.FindActionRecords(sessionID, 50)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read action history")
	}
	return c.JSON(http.StatusOK, records)
}

func (s *Server) getConnection(c echo.Context) error {
	conn := s.session.Connection()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"chainId":       conn.ChainID,
		"account":       conn.Account.Hex(),
		"walletAddress": conn.WalletAddress.Hex(),
		"isConnected":   conn.IsConnected,
		"state":         s.session.Engine().State().String(),
	})
}

type connectionRequest struct {
	ChainID       uint64 `json:"chainId"`
	Account       string `json:"account"`
	WalletAddress string `json:"walletAddress"`
	IsConnected   bool   `json:"isConnected"`
}

func (s *Server) putConnection(c echo.Context) error {
	var req connectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.IsConnected && !common.IsHexAddress(req.WalletAddress) {
		return actionError(c, &wallet.ValidationError{Field: "walletAddress", Message: "not a valid address"})
	}
	conn := types.ConnectionState{
		ChainID:       req.ChainID,
		Account:       common.HexToAddress(req.Account),
		WalletAddress: common.HexToAddress(req.WalletAddress),
		IsConnected:   req.IsConnected,
	}
	if err := s.session.Reconfigure(c.Request().Context(), conn); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"state": s.session.Engine().State().String(),
	})
}
