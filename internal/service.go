package internal

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/DrGermanius/Shopmart/internal/model"
)

const tokenTTL = 72 * time.Hour

type IService interface {
	Register(context.Context, string, string) (string, error)
	Login(context.Context, string, string) (string, error)
	GetJWTToken(int, string) (string, error)
	ParseToken(string) (Claims, error)

	CreateOrder(context.Context, int, model.CreateOrderInput) (model.Order, error)
	GetOrders(context.Context, int) ([]model.Order, error)
	GetOrder(context.Context, int, string) (model.OrderTracking, error)
	TrackOrder(context.Context, string) (model.PublicTracking, error)
	UpdateOrderStatus(context.Context, int, string, string, model.StatusUpdateInput) (model.Order, error)
	ApplyShipment(context.Context, model.ShipmentRequest, model.Shipment) error

	ListProducts(context.Context, int) ([]model.Product, error)
	CreateProduct(context.Context, int, model.ProductInput) (model.Product, error)

	GetBalanceByUserID(context.Context, int) (model.BalanceWithdrawn, error)
	Withdraw(context.Context, model.WithdrawInput, int) error
	GetWithdrawHistory(context.Context, int) ([]model.WithdrawOutput, error)
	Recharge(context.Context, int, model.RechargeInput) (model.BalanceWithdrawn, error)
	GetRecharges(context.Context, int) ([]model.Recharge, error)
	GetBalanceSummary(context.Context, int) (model.BalanceSummary, error)

	SendMessage(context.Context, int, model.MessageInput) (model.Message, error)
	GetConversation(context.Context, int, int) ([]model.Message, error)
	MarkConversationRead(context.Context, int, int) (int64, error)
	UnreadMessages(context.Context, int) (int, error)

	GetNotifications(context.Context, int) ([]model.Notification, error)
	MarkNotificationRead(context.Context, int, string) error

	Subscribe(int) (<-chan model.Event, func())
}

type Claims struct {
	UserID int    `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	Repository IRepository
	Carrier    ICarrier
	Publisher  IPublisher
	Hub        *Hub

	secret   []byte
	validate *validator.Validate
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewService(repository IRepository, carrier ICarrier, publisher IPublisher, hub *Hub, secret string, logger *zap.SugaredLogger) *Service {
	return &Service{
		Repository: repository,
		Carrier:    carrier,
		Publisher:  publisher,
		Hub:        hub,
		secret:     []byte(secret),
		validate:   NewValidator(),
		logger:     logger,
		now:        time.Now,
	}
}

func (s Service) Register(ctx context.Context, login, password string) (string, error) {
	if err := validate(s.validate, model.LoginInput{Login: login, Password: password}); err != nil {
		return "", err
	}

	exist, err := s.Repository.IsUserExist(ctx, login)
	if err != nil {
		return "", err
	}

	if exist {
		return "", ErrLoginIsAlreadyTaken
	}

	h := GetHash(password)
	id, err := s.Repository.Register(ctx, login, h, model.RoleCustomer)
	if err != nil {
		return "", err
	}

	return s.GetJWTToken(id, model.RoleCustomer)
}

func (s Service) Login(ctx context.Context, login, password string) (string, error) {
	h := GetHash(password)
	u, err := s.Repository.CheckCredentials(ctx, login, h)
	if err != nil {
		return "", err
	}

	return s.GetJWTToken(u.ID, u.Role)
}

func (s Service) GetJWTToken(uid int, role string) (string, error) {
	claims := Claims{
		UserID: uid,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return t, nil
}

func (s Service) ParseToken(tokenString string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, ErrUnauthorized
	}
	if claims.UserID == 0 {
		return Claims{}, ErrUnauthorized
	}

	return claims, nil
}

func (s Service) GetBalanceByUserID(ctx context.Context, uid int) (model.BalanceWithdrawn, error) {
	bw, err := s.Repository.GetBalanceByUserID(ctx, uid)
	if err != nil {
		return bw, err
	}

	return bw, nil
}

func (s Service) Withdraw(ctx context.Context, i model.WithdrawInput, uid int) error {
	if err := validate(s.validate, i); err != nil {
		return err
	}

	if !ValidOrderNumber(i.OrderNumber) {
		return ErrLuhnInvalid
	}

	bw, err := s.Repository.GetBalanceByUserID(ctx, uid)
	if err != nil {
		return err
	}

	if bw.Balance.LessThan(i.Sum) {
		return ErrInsufficientFunds
	}

	return s.Repository.Withdraw(ctx, i, uid, s.now().UTC())
}

func (s Service) GetWithdrawHistory(ctx context.Context, uid int) ([]model.WithdrawOutput, error) {
	wh, err := s.Repository.GetWithdrawHistory(ctx, uid)
	if err != nil {
		return nil, err
	}

	if len(wh) == 0 {
		return nil, ErrNoRecords
	}
	return wh, nil
}

func (s Service) Recharge(ctx context.Context, uid int, i model.RechargeInput) (model.BalanceWithdrawn, error) {
	if err := validate(s.validate, i); err != nil {
		return model.BalanceWithdrawn{}, err
	}

	if err := s.Repository.Recharge(ctx, uid, i.Amount, s.now().UTC()); err != nil {
		return model.BalanceWithdrawn{}, err
	}

	return s.Repository.GetBalanceByUserID(ctx, uid)
}

func (s Service) GetRecharges(ctx context.Context, uid int) ([]model.Recharge, error) {
	rs, err := s.Repository.GetRecharges(ctx, uid)
	if err != nil {
		return nil, err
	}

	if len(rs) == 0 {
		return nil, ErrNoRecords
	}
	return rs, nil
}

func (s Service) GetBalanceSummary(ctx context.Context, uid int) (model.BalanceSummary, error) {
	bw, err := s.Repository.GetBalanceByUserID(ctx, uid)
	if err != nil {
		return model.BalanceSummary{}, err
	}

	orders, err := s.Repository.GetOrders(ctx, uid)
	if err != nil {
		return model.BalanceSummary{}, err
	}

	recharges, err := s.Repository.GetRecharges(ctx, uid)
	if err != nil {
		return model.BalanceSummary{}, err
	}

	withdrawals, err := s.Repository.GetWithdrawHistory(ctx, uid)
	if err != nil {
		return model.BalanceSummary{}, err
	}

	return SummarizeBalance(bw, orders, recharges, withdrawals), nil
}

func (s Service) Subscribe(uid int) (<-chan model.Event, func()) {
	return s.Hub.Subscribe(uid)
}

func GetHash(s string) string {
	h := sha256.Sum256([]byte(s))
	return base64.StdEncoding.EncodeToString(h[:])
}
