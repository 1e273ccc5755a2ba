// Package storefront is the HTTP/JSON surface of the menu and cart.
package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/queries/get_product"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/queries/list_menu"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/checkout"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/clear_cart"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/commit_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/configure_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/create_session"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/decrement_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/increment_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/remove_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/select_product"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/set_search"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/toggle_cart"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	CreateSession *create_session.Interactor
	SetSearch     *set_search.Interactor
	SelectProduct *select_product.Interactor
	Configure     *configure_item.Interactor
	Commit        *commit_item.Interactor
	Increment     *increment_item.Interactor
	Decrement     *decrement_item.Interactor
	Remove        *remove_item.Interactor
	Clear         *clear_cart.Interactor
	ToggleCart    *toggle_cart.Interactor
	Checkout      *checkout.Interactor
}

// SessionReader reads a session without changing it.
type SessionReader interface {
	Get(id string) (session.State, error)
}

// Queries groups read handlers.
type Queries struct {
	Product  *get_product.Handler
	Menu     *list_menu.Handler
	Sessions SessionReader
}

// Handler is a thin HTTP adapter.
// It validates input, maps JSON <-> application types and delegates to the usecases.
type Handler struct {
	commands Commands
	queries  Queries
	validate *validatorv10.Validate
	logger   *zap.Logger
}

func NewHandler(cmd Commands, qry Queries, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{commands: cmd, queries: qry, validate: newValidator(), logger: logger}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) GetMenu(c *gin.Context) {
	menu, err := h.queries.Menu.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapMenuDTO(menu))
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.queries.Product.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProductDTO(p))
}

func (h *Handler) CreateSession(c *gin.Context) {
	id, st, err := h.commands.CreateSession.Execute(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Debug("session created", zap.String("session_id", id))
	c.Header("Location", "/sessions/"+id)
	c.JSON(http.StatusCreated, mapSession(id, st))
}

func (h *Handler) GetSession(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.queries.Sessions.Get(sid)
	h.respond(c, sid, st, err)
}

func (h *Handler) SetSearch(c *gin.Context) {
	var req searchRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	sid := c.Param("sid")
	st, err := h.commands.SetSearch.Execute(c.Request.Context(), set_search.Request{SessionID: sid, Term: req.Term})
	h.respond(c, sid, st, err)
}

func (h *Handler) SelectProduct(c *gin.Context) {
	var req selectProductRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	sid := c.Param("sid")
	st, err := h.commands.SelectProduct.Execute(c.Request.Context(), select_product.Request{SessionID: sid, ProductID: req.ProductID})
	h.respond(c, sid, st, err)
}

func (h *Handler) ToggleAddOn(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.commands.Configure.Execute(c.Request.Context(), configure_item.Request{
		SessionID:   sid,
		ToggleAddOn: c.Param("addon_id"),
	})
	h.respond(c, sid, st, err)
}

func (h *Handler) UpdateDialog(c *gin.Context) {
	var req dialogRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	sid := c.Param("sid")
	st, err := h.commands.Configure.Execute(c.Request.Context(), configure_item.Request{
		SessionID:    sid,
		Quantity:     req.Quantity,
		Observations: req.Observations,
	})
	h.respond(c, sid, st, err)
}

func (h *Handler) CloseDialog(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.commands.Configure.Execute(c.Request.Context(), configure_item.Request{SessionID: sid, Close: true})
	h.respond(c, sid, st, err)
}

func (h *Handler) CommitDialog(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.commands.Commit.Execute(c.Request.Context(), commit_item.Request{SessionID: sid})
	h.respond(c, sid, st, err)
}

func (h *Handler) IncrementItem(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.commands.Increment.Execute(c.Request.Context(), increment_item.Request{SessionID: sid, ItemID: c.Param("item_id")})
	h.respond(c, sid, st, err)
}

func (h *Handler) DecrementItem(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.commands.Decrement.Execute(c.Request.Context(), decrement_item.Request{SessionID: sid, ItemID: c.Param("item_id")})
	h.respond(c, sid, st, err)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.commands.Remove.Execute(c.Request.Context(), remove_item.Request{SessionID: sid, ItemID: c.Param("item_id")})
	h.respond(c, sid, st, err)
}

func (h *Handler) ClearCart(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.commands.Clear.Execute(c.Request.Context(), clear_cart.Request{SessionID: sid})
	h.respond(c, sid, st, err)
}

func (h *Handler) ToggleCart(c *gin.Context) {
	sid := c.Param("sid")
	st, err := h.commands.ToggleCart.Execute(c.Request.Context(), toggle_cart.Request{SessionID: sid})
	h.respond(c, sid, st, err)
}

func (h *Handler) Checkout(c *gin.Context) {
	sid := c.Param("sid")
	res, err := h.commands.Checkout.Execute(c.Request.Context(), checkout.Request{SessionID: sid})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapCheckout(sid, res))
}

func (h *Handler) respond(c *gin.Context, sid string, st session.State, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSession(sid, st))
}
