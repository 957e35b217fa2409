package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/Shopmart/internal/model"
)

const (
	orderFields = "id, order_number, user_id, status, payment_status, total_amount, " +
		"COALESCE(shipping_address, ''), COALESCE(payment_method, ''), COALESCE(tracking_number, ''), " +
		"created_at, updated_at, shipped_at, delivered_at"
	itemFields         = "oi.id, p.id, p.merchant_id, p.title, COALESCE(p.image_url, ''), oi.unit_price, oi.quantity, oi.total"
	productFields      = "id, merchant_id, title, COALESCE(image_url, ''), price"
	withdrawFields     = "order_number, amount, processed_at"
	rechargeFields     = "id, amount, created_at"
	messageFields      = "id, sender_id, recipient_id, body, read, created_at"
	notificationFields = "id, user_id, title, body, read, created_at"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type IRepository interface {
	Register(context.Context, string, string, string) (int, error)
	IsUserExist(context.Context, string) (bool, error)
	CheckCredentials(context.Context, string, string) (model.User, error)

	GetProductsByIDs(context.Context, []int) ([]model.Product, error)
	ListProducts(context.Context, int) ([]model.Product, error)
	CreateProduct(context.Context, model.Product) (int, error)

	CreateOrder(context.Context, model.Order) error
	GetOrders(context.Context, int) ([]model.Order, error)
	GetOrderByNumber(context.Context, string) (model.Order, error)
	FindOrder(context.Context, string) (model.Order, error)
	UpdateOrderStatus(context.Context, string, model.StatusChange) (model.Order, error)
	MarkDelivered(context.Context, string, string, time.Time) (model.Order, error)
	GetShippedOrders(context.Context) ([]model.ShipmentRequest, error)

	GetBalanceByUserID(context.Context, int) (model.BalanceWithdrawn, error)
	Withdraw(context.Context, model.WithdrawInput, int, time.Time) error
	GetWithdrawHistory(context.Context, int) ([]model.WithdrawOutput, error)
	Recharge(context.Context, int, decimal.Decimal, time.Time) error
	GetRecharges(context.Context, int) ([]model.Recharge, error)

	CreateMessage(context.Context, model.Message) error
	GetConversation(context.Context, int, int) ([]model.Message, error)
	MarkConversationRead(context.Context, int, int) (int64, error)
	CountUnreadMessages(context.Context, int) (int, error)

	CreateNotification(context.Context, model.Notification) error
	GetNotifications(context.Context, int) ([]model.Notification, error)
	MarkNotificationRead(context.Context, int, string) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		return nil, err
	}

	if err = Migrate(conn); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) Close() error {
	return r.Conn.Close()
}

func (r Repository) Register(ctx context.Context, login, password, role string) (int, error) {
	var id int
	row := r.Conn.QueryRowContext(ctx, "INSERT INTO users (login, password, role) VALUES ($1, $2, $3) RETURNING id", login, password, role)

	err := row.Scan(&id)
	if pgErrorCode(err) == uniqueViolation {
		return 0, ErrLoginIsAlreadyTaken
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r Repository) IsUserExist(ctx context.Context, login string) (bool, error) {
	exist := false

	row := r.Conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)", login)
	err := row.Scan(&exist)
	if err != nil {
		return false, err
	}

	return exist, nil
}

func (r Repository) CheckCredentials(ctx context.Context, login string, password string) (model.User, error) {
	var u model.User
	row := r.Conn.QueryRowContext(ctx, "SELECT id, login, role FROM users WHERE login = $1 AND password = $2", login, password)

	err := row.Scan(&u.ID, &u.Login, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}

	return u, nil
}

func (r Repository) GetProductsByIDs(ctx context.Context, ids []int) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = id
	}

	rows, err := r.Conn.QueryContext(ctx, "SELECT "+productFields+" FROM products WHERE id IN ("+strings.Join(placeholders, ", ")+")", args...)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

// ListProducts returns every product when merchantID is zero.
func (r Repository) ListProducts(ctx context.Context, merchantID int) ([]model.Product, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if merchantID == 0 {
		rows, err = r.Conn.QueryContext(ctx, "SELECT "+productFields+" FROM products ORDER BY id")
	} else {
		rows, err = r.Conn.QueryContext(ctx, "SELECT "+productFields+" FROM products WHERE merchant_id = $1 ORDER BY id", merchantID)
	}
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r Repository) CreateProduct(ctx context.Context, p model.Product) (int, error) {
	var id int
	row := r.Conn.QueryRowContext(ctx, "INSERT INTO products (merchant_id, title, image_url, price) VALUES ($1, $2, $3, $4) RETURNING id",
		p.MerchantID, p.Title, p.Image, p.Price)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r Repository) CreateOrder(ctx context.Context, o model.Order) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, "INSERT INTO orders (id, order_number, user_id, status, payment_status, total_amount, shipping_address, payment_method, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		o.ID, o.OrderNumber, o.UserID, o.Status, o.PaymentStatus, o.TotalAmount, o.ShippingAddress, o.PaymentMethod, o.CreatedAt, o.UpdatedAt)
	if pgErrorCode(err) == uniqueViolation {
		return ErrOrderNumberConflict
	}
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx, "INSERT INTO order_items (order_id, product_id, unit_price, quantity, total) VALUES ($1, $2, $3, $4, $5)",
			o.ID, it.Product.ID, it.Product.Price, it.Quantity, it.Total)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r Repository) GetOrders(ctx context.Context, uid int) ([]model.Order, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+orderFields+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r Repository) GetOrderByNumber(ctx context.Context, number string) (model.Order, error) {
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE order_number = $1", number)
	return r.orderWithItems(ctx, row)
}

// FindOrder looks the order up by its number or by the carrier tracking number.
func (r Repository) FindOrder(ctx context.Context, ref string) (model.Order, error) {
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE order_number = $1 OR tracking_number = $1 LIMIT 1", ref)
	return r.orderWithItems(ctx, row)
}

func (r Repository) UpdateOrderStatus(ctx context.Context, number string, ch model.StatusChange) (model.Order, error) {
	var tracking, shippedAt, deliveredAt interface{}
	if ch.TrackingNumber != "" {
		tracking = ch.TrackingNumber
	}
	switch ch.Status {
	case model.OrderStatusShipped:
		shippedAt = ch.At
	case model.OrderStatusDelivered:
		deliveredAt = ch.At
	}

	query := "UPDATE orders SET status = $1, updated_at = $2, tracking_number = COALESCE($3, tracking_number), " +
		"shipped_at = COALESCE(shipped_at, $4), delivered_at = COALESCE(delivered_at, $5) WHERE order_number = $6"
	args := []interface{}{ch.Status, ch.At, tracking, shippedAt, deliveredAt, number}
	if ch.MerchantID != 0 {
		query += " AND EXISTS (SELECT 1 FROM order_items oi JOIN products p ON p.id = oi.product_id " +
			"WHERE oi.order_id = orders.id AND p.merchant_id = $7)"
		args = append(args, ch.MerchantID)
	}

	row := r.Conn.QueryRowContext(ctx, query+" RETURNING "+orderFields, args...)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	return o, err
}

// MarkDelivered only moves an order that is still shipped under trackingNumber.
// Anything else, a cancelled order or one shipped again under a new number,
// is reported as ErrOrderNotFound.
func (r Repository) MarkDelivered(ctx context.Context, number, trackingNumber string, at time.Time) (model.Order, error) {
	row := r.Conn.QueryRowContext(ctx, "UPDATE orders SET status = $1, updated_at = $2, delivered_at = COALESCE(delivered_at, $2) "+
		"WHERE order_number = $3 AND status = $4 AND tracking_number = $5 RETURNING "+orderFields,
		model.OrderStatusDelivered, at, number, model.OrderStatusShipped, trackingNumber)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	return o, err
}

// GetShippedOrders lists the shipments the carrier still has to deliver.
func (r Repository) GetShippedOrders(ctx context.Context) ([]model.ShipmentRequest, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT order_number, tracking_number FROM orders "+
		"WHERE status = $1 AND tracking_number IS NOT NULL AND tracking_number <> '' AND delivered_at IS NULL ORDER BY updated_at", model.OrderStatusShipped)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rs []model.ShipmentRequest
	for rows.Next() {
		var sr model.ShipmentRequest
		if err = rows.Scan(&sr.OrderNumber, &sr.TrackingNumber); err != nil {
			return nil, err
		}
		rs = append(rs, sr)
	}

	return rs, rows.Err()
}

func (r Repository) GetBalanceByUserID(ctx context.Context, uid int) (model.BalanceWithdrawn, error) {
	var bw model.BalanceWithdrawn

	err := r.Conn.QueryRowContext(ctx, "SELECT balance, withdrawn FROM users WHERE id = $1", uid).Scan(&bw.Balance, &bw.Withdrawn)
	if err != nil {
		return model.BalanceWithdrawn{}, err
	}

	return bw, nil
}

// Withdraw debits the balance only if it still covers the sum at commit time.
func (r Repository) Withdraw(ctx context.Context, i model.WithdrawInput, uid int, at time.Time) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "UPDATE users SET balance = balance - $1, withdrawn = withdrawn + $1 WHERE id = $2 AND balance >= $1", i.Sum, uid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientFunds
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO withdraw_history (order_number, user_id, amount, processed_at) VALUES ($1, $2, $3, $4)", i.OrderNumber, uid, i.Sum, at)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r Repository) GetWithdrawHistory(ctx context.Context, uid int) ([]model.WithdrawOutput, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+withdrawFields+" FROM withdraw_history WHERE user_id = $1 ORDER BY processed_at DESC", uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wh []model.WithdrawOutput
	for rows.Next() {
		var w model.WithdrawOutput
		err = rows.Scan(&w.OrderNumber, &w.Sum, &w.ProcessedAt)
		if err != nil {
			return nil, err
		}

		wh = append(wh, w)
	}

	return wh, rows.Err()
}

func (r Repository) Recharge(ctx context.Context, uid int, amount decimal.Decimal, at time.Time) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, "INSERT INTO recharges (user_id, amount, created_at) VALUES ($1, $2, $3)", uid, amount, at)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "UPDATE users SET balance = balance + $1 WHERE id = $2", amount, uid)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r Repository) GetRecharges(ctx context.Context, uid int) ([]model.Recharge, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+rechargeFields+" FROM recharges WHERE user_id = $1 ORDER BY created_at DESC", uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rs []model.Recharge
	for rows.Next() {
		var rc model.Recharge
		if err = rows.Scan(&rc.ID, &rc.Amount, &rc.CreatedAt); err != nil {
			return nil, err
		}
		rs = append(rs, rc)
	}

	return rs, rows.Err()
}

func (r Repository) CreateMessage(ctx context.Context, m model.Message) error {
	_, err := r.Conn.ExecContext(ctx, "INSERT INTO messages (id, sender_id, recipient_id, body, created_at) VALUES ($1, $2, $3, $4, $5)",
		m.ID, m.SenderID, m.RecipientID, m.Body, m.CreatedAt)
	if pgErrorCode(err) == foreignKeyViolation {
		return ErrRecipientNotFound
	}
	return err
}

func (r Repository) GetConversation(ctx context.Context, uid, peer int) ([]model.Message, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+messageFields+" FROM messages WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1) ORDER BY created_at", uid, peer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms []model.Message
	for rows.Next() {
		var m model.Message
		if err = rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}

	return ms, rows.Err()
}

func (r Repository) MarkConversationRead(ctx context.Context, uid, peer int) (int64, error) {
	res, err := r.Conn.ExecContext(ctx, "UPDATE messages SET read = TRUE WHERE recipient_id = $1 AND sender_id = $2 AND NOT read", uid, peer)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r Repository) CountUnreadMessages(ctx context.Context, uid int) (int, error) {
	var n int
	err := r.Conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND NOT read", uid).Scan(&n)
	return n, err
}

func (r Repository) CreateNotification(ctx context.Context, n model.Notification) error {
	_, err := r.Conn.ExecContext(ctx, "INSERT INTO notifications (id, user_id, title, body, created_at) VALUES ($1, $2, $3, $4, $5)",
		n.ID, n.UserID, n.Title, n.Body, n.CreatedAt)
	return err
}

func (r Repository) GetNotifications(ctx context.Context, uid int) ([]model.Notification, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+notificationFields+" FROM notifications WHERE user_id = $1 ORDER BY created_at DESC", uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ns []model.Notification
	for rows.Next() {
		var n model.Notification
		if err = rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}

	return ns, rows.Err()
}

func (r Repository) MarkNotificationRead(ctx context.Context, uid int, id string) error {
	res, err := r.Conn.ExecContext(ctx, "UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2", id, uid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r Repository) orderWithItems(ctx context.Context, row *sql.Row) (model.Order, error) {
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}

	o.Items, err = r.getOrderItems(ctx, o.ID)
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r Repository) getOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+itemFields+" FROM order_items oi JOIN products p ON p.id = oi.product_id WHERE oi.order_id = $1 ORDER BY oi.id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		err = rows.Scan(&it.ID, &it.Product.ID, &it.Product.MerchantID, &it.Product.Title, &it.Product.Image, &it.Product.Price, &it.Quantity, &it.Total)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s scanner) (model.Order, error) {
	var (
		o                  model.Order
		shipped, delivered sql.NullTime
	)
	err := s.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentStatus, &o.TotalAmount,
		&o.ShippingAddress, &o.PaymentMethod, &o.TrackingNumber, &o.CreatedAt, &o.UpdatedAt, &shipped, &delivered)
	if err != nil {
		return model.Order{}, err
	}

	if shipped.Valid {
		t := shipped.Time
		o.ShippedAt = &t
	}
	if delivered.Valid {
		t := delivered.Time
		o.DeliveredAt = &t
	}
	return o, nil
}

func scanProducts(rows *sql.Rows) ([]model.Product, error) {
	defer rows.Close()

	var ps []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.MerchantID, &p.Title, &p.Image, &p.Price); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, rows.Err()
}
