package internal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/DrGermanius/Shopmart/internal/model"
)

const (
	localUserID = "uid"
	localRole   = "role"
)

type Handlers struct {
	Service   IService
	caps      *Capabilities
	keepAlive time.Duration
	logger    *zap.SugaredLogger
}

func NewHandlers(service IService, caps *Capabilities, keepAlive time.Duration, logger *zap.SugaredLogger) *Handlers {
	if keepAlive <= 0 {
		keepAlive = 15 * time.Second
	}
	return &Handlers{Service: service, caps: caps, keepAlive: keepAlive, logger: logger}
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var i model.LoginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return badRequest(c, "login", err)
	}

	t, err := h.Service.Login(c.Context(), i.Login, i.Password)
	if err != nil {
		return h.fail(c, "login", err)
	}

	setAuthCookie(c, t)
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) Register(c *fiber.Ctx) error {
	var i model.LoginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on register request: %s", err.Error())
		return badRequest(c, "register", err)
	}

	t, err := h.Service.Register(c.Context(), i.Login, i.Password)
	if err != nil {
		return h.fail(c, "register", err)
	}

	setAuthCookie(c, t)
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) Menu(c *fiber.Ctx) error {
	role := userRole(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": role, "items": h.caps.MenuFor(role)})
}

func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var i model.CreateOrderInput

	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "create order", err)
	}

	o, err := h.Service.CreateOrder(c.Context(), userID(c), i)
	if err != nil {
		return h.fail(c, "create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrders(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, "get orders", err)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	t, err := h.Service.GetOrder(c.Context(), userID(c), c.Params("number"))
	if err != nil {
		return h.fail(c, "get order", err)
	}

	return c.Status(fiber.StatusOK).JSON(t)
}

func (h *Handlers) TrackOrder(c *fiber.Ctx) error {
	t, err := h.Service.TrackOrder(c.Context(), c.Params("ref"))
	if err != nil {
		return h.fail(c, "track order", err)
	}

	return c.Status(fiber.StatusOK).JSON(t)
}

func (h *Handlers) UpdateOrderStatus(c *fiber.Ctx) error {
	var i model.StatusUpdateInput

	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "update order status", err)
	}

	o, err := h.Service.UpdateOrderStatus(c.Context(), userID(c), userRole(c), c.Params("number"), i)
	if err != nil {
		return h.fail(c, "update order status", err)
	}

	return c.Status(fiber.StatusOK).JSON(o)
}

func (h *Handlers) ListProducts(c *fiber.Ctx) error {
	merchantID := 0
	if m := c.Query("merchant"); m != "" {
		id, err := strconv.Atoi(m)
		if err != nil {
			return badRequest(c, "list products", err)
		}
		merchantID = id
	}

	ps, err := h.Service.ListProducts(c.Context(), merchantID)
	if err != nil {
		return h.fail(c, "list products", err)
	}

	return c.Status(fiber.StatusOK).JSON(ps)
}

func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	var i model.ProductInput

	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "create product", err)
	}

	p, err := h.Service.CreateProduct(c.Context(), userID(c), i)
	if err != nil {
		return h.fail(c, "create product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handlers) GetBalance(c *fiber.Ctx) error {
	bw, err := h.Service.GetBalanceByUserID(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, "get balance", err)
	}

	return c.Status(fiber.StatusOK).JSON(bw)
}

func (h *Handlers) BalanceSummary(c *fiber.Ctx) error {
	s, err := h.Service.GetBalanceSummary(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, "balance summary", err)
	}

	return c.Status(fiber.StatusOK).JSON(s)
}

func (h *Handlers) Recharge(c *fiber.Ctx) error {
	var i model.RechargeInput

	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "recharge", err)
	}

	bw, err := h.Service.Recharge(c.Context(), userID(c), i)
	if err != nil {
		return h.fail(c, "recharge", err)
	}

	return c.Status(fiber.StatusOK).JSON(bw)
}

func (h *Handlers) RechargeHistory(c *fiber.Ctx) error {
	rs, err := h.Service.GetRecharges(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, "recharge history", err)
	}

	return c.Status(fiber.StatusOK).JSON(rs)
}

func (h *Handlers) Withdraw(c *fiber.Ctx) error {
	var i model.WithdrawInput

	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "withdraw", err)
	}

	if err := h.Service.Withdraw(c.Context(), i, userID(c)); err != nil {
		return h.fail(c, "withdraw", err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) WithdrawHistory(c *fiber.Ctx) error {
	wh, err := h.Service.GetWithdrawHistory(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, "withdraw history", err)
	}

	return c.Status(fiber.StatusOK).JSON(wh)
}

func (h *Handlers) SendMessage(c *fiber.Ctx) error {
	var i model.MessageInput

	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "send message", err)
	}

	m, err := h.Service.SendMessage(c.Context(), userID(c), i)
	if err != nil {
		return h.fail(c, "send message", err)
	}

	return c.Status(fiber.StatusCreated).JSON(m)
}

func (h *Handlers) GetConversation(c *fiber.Ctx) error {
	peer, err := c.ParamsInt("peer")
	if err != nil || peer <= 0 {
		return badRequest(c, "get conversation", fmt.Errorf("invalid peer %q", c.Params("peer")))
	}

	ms, err := h.Service.GetConversation(c.Context(), userID(c), peer)
	if err != nil {
		return h.fail(c, "get conversation", err)
	}

	return c.Status(fiber.StatusOK).JSON(ms)
}

func (h *Handlers) MarkConversationRead(c *fiber.Ctx) error {
	peer, err := c.ParamsInt("peer")
	if err != nil || peer <= 0 {
		return badRequest(c, "mark conversation read", fmt.Errorf("invalid peer %q", c.Params("peer")))
	}

	n, err := h.Service.MarkConversationRead(c.Context(), userID(c), peer)
	if err != nil {
		return h.fail(c, "mark conversation read", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"updated": n})
}

func (h *Handlers) UnreadMessages(c *fiber.Ctx) error {
	n, err := h.Service.UnreadMessages(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, "unread messages", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"unread": n})
}

func (h *Handlers) GetNotifications(c *fiber.Ctx) error {
	ns, err := h.Service.GetNotifications(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, "get notifications", err)
	}

	return c.Status(fiber.StatusOK).JSON(ns)
}

func (h *Handlers) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.Service.MarkNotificationRead(c.Context(), userID(c), c.Params("id")); err != nil {
		return h.fail(c, "mark notification read", err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// Events streams the user's hub events as server-sent events. The
// subscription lives until a write to the client fails or the server stops.
func (h *Handlers) Events(c *fiber.Ctx) error {
	uid := userID(c)
	events, unsubscribe := h.Service.Subscribe(uid)
	done := c.Context().Done()
	keepAlive := h.keepAlive
	logger := h.logger

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()

		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()

		if err := writeComment(w, "connected"); err != nil {
			return
		}

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := writeComment(w, "keepalive"); err != nil {
					logger.Debugf("Events: user %d went away: %s", uid, err.Error())
					return
				}
			case e, ok := <-events:
				if !ok {
					return
				}
				if err := writeEvent(w, e); err != nil {
					logger.Debugf("Events: user %d went away: %s", uid, err.Error())
					return
				}
			}
		}
	}))

	return nil
}

func writeEvent(w *bufio.Writer, e model.Event) error {
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, data); err != nil {
		return err
	}
	return w.Flush()
}

func writeComment(w *bufio.Writer, text string) error {
	if _, err := fmt.Fprintf(w, ": %s\n\n", text); err != nil {
		return err
	}
	return w.Flush()
}

// fail maps service errors onto HTTP statuses.
func (h *Handlers) fail(c *fiber.Ctx, op string, err error) error {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on " + op + " request", "data": ve.Fields})
	case errors.Is(err, ErrNoRecords):
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return c.SendStatus(fiber.StatusUnauthorized)
	case errors.Is(err, ErrForbidden):
		return c.SendStatus(fiber.StatusForbidden)
	case errors.Is(err, ErrLoginIsAlreadyTaken):
		return errorJSON(c, fiber.StatusConflict, op, err)
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrNotificationNotFound), errors.Is(err, ErrRecipientNotFound):
		return errorJSON(c, fiber.StatusNotFound, op, err)
	case errors.Is(err, ErrLuhnInvalid), errors.Is(err, ErrProductNotFound):
		return errorJSON(c, fiber.StatusUnprocessableEntity, op, err)
	case errors.Is(err, ErrInsufficientFunds):
		return errorJSON(c, fiber.StatusPaymentRequired, op, err)
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrMessageToSelf):
		return errorJSON(c, fiber.StatusBadRequest, op, err)
	}

	h.logger.Errorf("Error on %s request: %s", op, err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on " + op + " request"})
}

func errorJSON(c *fiber.Ctx, status int, op string, err error) error {
	return c.Status(status).JSON(fiber.Map{"status": "error", "message": "Error on " + op + " request", "data": err.Error()})
}

func badRequest(c *fiber.Ctx, op string, err error) error {
	return errorJSON(c, fiber.StatusBadRequest, op, err)
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	}

	c.Cookie(cookie)
}

func userID(c *fiber.Ctx) int {
	id, _ := c.Locals(localUserID).(int)
	return id
}

func userRole(c *fiber.Ctx) string {
	role, _ := c.Locals(localRole).(string)
	return role
}
