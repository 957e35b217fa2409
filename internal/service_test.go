package internal_test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Shopmart/internal"
	mock_internal "github.com/DrGermanius/Shopmart/internal/mock"
	"github.com/DrGermanius/Shopmart/internal/model"
)

var _ = Describe("Service", func() {
	var (
		ctrl *gomock.Controller
		srv  internal.IService
		rep  *mock_internal.MockIRepository
		car  *mock_internal.MockICarrier
		pub  *mock_internal.MockIPublisher
		hub  *internal.Hub
		ctx  context.Context
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		rep = mock_internal.NewMockIRepository(ctrl)
		car = mock_internal.NewMockICarrier(ctrl)
		pub = mock_internal.NewMockIPublisher(ctrl)
		hub = internal.NewHub(0, logger.Sugar())
		ctx = context.Background()

		srv = internal.NewService(rep, car, pub, hub, "secret", logger.Sugar())
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Auth", func() {
		It("Login without error", func() {
			l, p := "login", "pass"
			h := internal.GetHash(p)

			rep.EXPECT().CheckCredentials(ctx, l, h).Return(model.User{ID: 1, Login: l, Role: model.RoleMerchant}, nil)

			t, err := srv.Login(ctx, l, p)
			Expect(err).ShouldNot(HaveOccurred())

			claims, err := srv.ParseToken(t)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(claims.UserID).Should(Equal(1))
			Expect(claims.Role).Should(Equal(model.RoleMerchant))
		})
		It("Login with error", func() {
			l, p := "login", "pass"
			h := internal.GetHash(p)

			rep.EXPECT().CheckCredentials(ctx, l, h).Return(model.User{}, internal.ErrInvalidCredentials)

			_, err := srv.Login(ctx, l, p)
			Expect(err).Should(Equal(internal.ErrInvalidCredentials))
		})
		It("Register without error", func() {
			l, p := "login", "pass"
			h := internal.GetHash(p)

			rep.EXPECT().IsUserExist(ctx, l).Return(false, nil)
			rep.EXPECT().Register(ctx, l, h, model.RoleCustomer).Return(2, nil)

			t, err := srv.Register(ctx, l, p)
			Expect(err).ShouldNot(HaveOccurred())

			claims, err := srv.ParseToken(t)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(claims.UserID).Should(Equal(2))
			Expect(claims.Role).Should(Equal(model.RoleCustomer))
		})
		It("Register with error already registered", func() {
			l, p := "login", "pass"

			rep.EXPECT().IsUserExist(ctx, l).Return(true, nil)

			_, err := srv.Register(ctx, l, p)
			Expect(err).Should(Equal(internal.ErrLoginIsAlreadyTaken))
		})
		It("Register with empty login", func() {
			_, err := srv.Register(ctx, "", "pass")

			var ve *internal.ValidationError
			Expect(errors.As(err, &ve)).Should(BeTrue())
			Expect(ve.Fields).Should(HaveKey("LoginInput.Login"))
		})
		It("ParseToken rejects foreign tokens", func() {
			other := internal.NewService(rep, car, pub, hub, "other", zap.NewNop().Sugar())
			t, err := other.GetJWTToken(1, model.RoleAdmin)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = srv.ParseToken(t)
			Expect(err).Should(Equal(internal.ErrUnauthorized))

			_, err = srv.ParseToken("garbage")
			Expect(err).Should(Equal(internal.ErrUnauthorized))
		})
	})

	Context("Wallet", func() {
		It("Withdraw without error", func() {
			uid := 1
			i := model.WithdrawInput{OrderNumber: "79927398713", Sum: decimal.NewFromInt(5)}

			rep.EXPECT().GetBalanceByUserID(ctx, uid).Return(model.BalanceWithdrawn{Balance: decimal.NewFromInt(10)}, nil)
			rep.EXPECT().Withdraw(ctx, i, uid, gomock.Any()).Return(nil)

			err := srv.Withdraw(ctx, i, uid)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("Withdraw with invalid order number", func() {
			i := model.WithdrawInput{OrderNumber: "12345", Sum: decimal.NewFromInt(5)}

			err := srv.Withdraw(ctx, i, 1)
			Expect(err).Should(Equal(internal.ErrLuhnInvalid))
		})
		It("Withdraw with insufficient funds", func() {
			uid := 1
			i := model.WithdrawInput{OrderNumber: "79927398713", Sum: decimal.NewFromInt(50)}

			rep.EXPECT().GetBalanceByUserID(ctx, uid).Return(model.BalanceWithdrawn{Balance: decimal.NewFromInt(10)}, nil)

			err := srv.Withdraw(ctx, i, uid)
			Expect(err).Should(Equal(internal.ErrInsufficientFunds))
		})
		It("Withdraw with zero sum", func() {
			i := model.WithdrawInput{OrderNumber: "79927398713", Sum: decimal.Zero}

			err := srv.Withdraw(ctx, i, 1)
			var ve *internal.ValidationError
			Expect(errors.As(err, &ve)).Should(BeTrue())
		})
		It("GetWithdrawHistory without records", func() {
			rep.EXPECT().GetWithdrawHistory(ctx, 1).Return(nil, nil)

			_, err := srv.GetWithdrawHistory(ctx, 1)
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
		It("Recharge returns the new balance", func() {
			amount := decimal.NewFromInt(25)

			rep.EXPECT().Recharge(ctx, 1, amount, gomock.Any()).Return(nil)
			rep.EXPECT().GetBalanceByUserID(ctx, 1).Return(model.BalanceWithdrawn{Balance: amount}, nil)

			bw, err := srv.Recharge(ctx, 1, model.RechargeInput{Amount: amount})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(bw.Balance.Equal(amount)).Should(BeTrue())
		})
		It("GetBalanceSummary folds the history", func() {
			rep.EXPECT().GetBalanceByUserID(ctx, 1).Return(model.BalanceWithdrawn{Balance: decimal.NewFromInt(5)}, nil)
			rep.EXPECT().GetOrders(ctx, 1).Return([]model.Order{{Status: model.OrderStatusDelivered, TotalAmount: decimal.NewFromInt(20)}}, nil)
			rep.EXPECT().GetRecharges(ctx, 1).Return([]model.Recharge{{Amount: decimal.NewFromInt(30)}}, nil)
			rep.EXPECT().GetWithdrawHistory(ctx, 1).Return(nil, nil)

			s, err := srv.GetBalanceSummary(ctx, 1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.TotalSpent.Equal(decimal.NewFromInt(20))).Should(BeTrue())
			Expect(s.Savings.Equal(decimal.NewFromInt(10))).Should(BeTrue())
			Expect(s.RecommendedTopUp.Equal(decimal.NewFromInt(15))).Should(BeTrue())
		})
	})

	Context("Orders", func() {
		products := []model.Product{
			{ID: 1, MerchantID: 9, Title: "Mug", Price: decimal.RequireFromString("10.50")},
			{ID: 2, MerchantID: 9, Title: "Cup", Price: decimal.NewFromInt(3)},
		}
		input := model.CreateOrderInput{
			Items: []model.OrderItemInput{
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: 1},
				{ProductID: 1, Quantity: 1},
			},
			ShippingAddress: "Main st. 1",
			PaymentMethod:   model.PaymentMethodCard,
		}

		It("CreateOrder prices the items", func() {
			rep.EXPECT().GetProductsByIDs(ctx, []int{1, 2}).Return(products, nil)
			rep.EXPECT().CreateOrder(ctx, gomock.Any()).Return(nil)

			o, err := srv.CreateOrder(ctx, 4, input)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.UserID).Should(Equal(4))
			Expect(o.Status).Should(Equal(model.OrderStatusPending))
			Expect(o.PaymentStatus).Should(Equal(model.PaymentStatusPending))
			Expect(o.Items).Should(HaveLen(3))
			Expect(o.TotalAmount.Equal(decimal.RequireFromString("34.50"))).Should(BeTrue())
			Expect(o.ID).ShouldNot(BeEmpty())
			Expect(internal.ValidOrderNumber(o.OrderNumber)).Should(BeTrue())
		})
		It("CreateOrder retries a taken order number", func() {
			var first string
			rep.EXPECT().GetProductsByIDs(ctx, []int{1, 2}).Return(products, nil)
			gomock.InOrder(
				rep.EXPECT().CreateOrder(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o model.Order) error {
					first = o.OrderNumber
					return internal.ErrOrderNumberConflict
				}),
				rep.EXPECT().CreateOrder(ctx, gomock.Any()).Return(nil),
			)

			o, err := srv.CreateOrder(ctx, 4, input)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(internal.ValidOrderNumber(o.OrderNumber)).Should(BeTrue())
			Expect(o.OrderNumber).ShouldNot(Equal(first))
		})
		It("CreateOrder gives up after repeated order number clashes", func() {
			rep.EXPECT().GetProductsByIDs(ctx, []int{1, 2}).Return(products, nil)
			rep.EXPECT().CreateOrder(ctx, gomock.Any()).Return(internal.ErrOrderNumberConflict).Times(3)

			_, err := srv.CreateOrder(ctx, 4, input)
			Expect(err).Should(Equal(internal.ErrOrderNumberConflict))
		})
		It("CreateOrder with unknown product", func() {
			rep.EXPECT().GetProductsByIDs(ctx, []int{1, 2}).Return(products[:1], nil)

			_, err := srv.CreateOrder(ctx, 4, input)
			Expect(err).Should(Equal(internal.ErrProductNotFound))
		})
		It("CreateOrder with unsupported payment method", func() {
			in := input
			in.PaymentMethod = "barter"

			_, err := srv.CreateOrder(ctx, 4, in)
			var ve *internal.ValidationError
			Expect(errors.As(err, &ve)).Should(BeTrue())
			Expect(ve.Fields).Should(HaveKeyWithValue("CreateOrderInput.PaymentMethod", "oneof"))
		})
		It("CreateOrder without items", func() {
			in := input
			in.Items = nil

			_, err := srv.CreateOrder(ctx, 4, in)
			var ve *internal.ValidationError
			Expect(errors.As(err, &ve)).Should(BeTrue())
		})
		It("GetOrders without records", func() {
			rep.EXPECT().GetOrders(ctx, 1).Return(nil, nil)

			_, err := srv.GetOrders(ctx, 1)
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
		It("GetOrder of another user", func() {
			rep.EXPECT().GetOrderByNumber(ctx, "79927398713").Return(model.Order{UserID: 2}, nil)

			_, err := srv.GetOrder(ctx, 1, "79927398713")
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("TrackOrder builds the public tracking view", func() {
			shipped := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
			o := model.Order{
				OrderNumber:     "79927398713",
				UserID:          4,
				Status:          model.OrderStatusShipped,
				PaymentStatus:   model.PaymentStatusConfirmed,
				ShippingAddress: "Main st. 1",
				PaymentMethod:   model.PaymentMethodCard,
				Items:           []model.OrderItem{{Quantity: 1}},
				TrackingNumber:  "TRK-1",
				ShippedAt:       &shipped,
			}
			rep.EXPECT().FindOrder(ctx, "TRK-1").Return(o, nil)

			t, err := srv.TrackOrder(ctx, "TRK-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(t.Order).Should(Equal(model.PublicOrder{
				OrderNumber:    "79927398713",
				Status:         model.OrderStatusShipped,
				PaymentStatus:  model.PaymentStatusConfirmed,
				TrackingNumber: "TRK-1",
				ShippedAt:      &shipped,
			}))
			Expect(t.Timeline).Should(HaveLen(6))
			Expect(t.Timeline[3]).Should(Equal(model.TimelineStage{Label: "Shipped", Date: "2024-02-01T12:00:00.000Z", Completed: true}))
			Expect(t.StatusColor).Should(Equal(internal.StatusColor(model.OrderStatusShipped)))
			Expect(t.PaymentStatusColor).Should(Equal(internal.PaymentStatusColor(model.PaymentStatusConfirmed)))
		})
		It("TrackOrder with empty reference", func() {
			_, err := srv.TrackOrder(ctx, "")
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("TrackOrder with unknown reference", func() {
			rep.EXPECT().FindOrder(ctx, "nope").Return(model.Order{}, internal.ErrOrderNotFound)

			_, err := srv.TrackOrder(ctx, "nope")
			Expect(err).Should(MatchError("order not found"))
		})
		It("UpdateOrderStatus with unknown status", func() {
			_, err := srv.UpdateOrderStatus(ctx, 1, model.RoleAdmin, "79927398713", model.StatusUpdateInput{Status: "lost"})
			Expect(err).Should(Equal(internal.ErrInvalidStatus))
		})
		It("UpdateOrderStatus by a customer", func() {
			_, err := srv.UpdateOrderStatus(ctx, 4, model.RoleCustomer, "79927398713", model.StatusUpdateInput{Status: model.OrderStatusCancelled})
			Expect(err).Should(Equal(internal.ErrForbidden))
		})
		It("UpdateOrderStatus to shipped notifies everyone and starts polling", func() {
			now := time.Now()
			updated := model.Order{
				ID:             "o-1",
				OrderNumber:    "79927398713",
				UserID:         4,
				Status:         model.OrderStatusShipped,
				TrackingNumber: "TRK-1",
				UpdatedAt:      now,
				ShippedAt:      &now,
			}

			events, unsubscribe := hub.Subscribe(4)
			defer unsubscribe()

			rep.EXPECT().UpdateOrderStatus(ctx, "79927398713", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, ch model.StatusChange) (model.Order, error) {
					Expect(ch.Status).Should(Equal(model.OrderStatusShipped))
					Expect(ch.TrackingNumber).Should(Equal("TRK-1"))
					Expect(ch.MerchantID).Should(Equal(9))
					return updated, nil
				})
			rep.EXPECT().CreateNotification(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, n model.Notification) error {
					Expect(n.UserID).Should(Equal(4))
					Expect(n.Title).Should(Equal("Order 79927398713 shipped"))
					return nil
				})
			pub.EXPECT().PublishOrderStatus(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, e model.OrderStatusEvent) error {
					Expect(e.Status).Should(Equal(model.OrderStatusShipped))
					return nil
				})
			car.EXPECT().SendToQueue(model.ShipmentRequest{OrderNumber: "79927398713", TrackingNumber: "TRK-1"})

			o, err := srv.UpdateOrderStatus(ctx, 9, model.RoleMerchant, "79927398713", model.StatusUpdateInput{Status: model.OrderStatusShipped, TrackingNumber: "TRK-1"})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.Status).Should(Equal(model.OrderStatusShipped))

			Expect((<-events).Type).Should(Equal(model.EventNotification))
			Expect((<-events).Type).Should(Equal(model.EventOrderStatus))
		})
		It("UpdateOrderStatus by an admin reaches any order", func() {
			rep.EXPECT().UpdateOrderStatus(ctx, "79927398713", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, ch model.StatusChange) (model.Order, error) {
					Expect(ch.MerchantID).Should(BeZero())
					return model.Order{OrderNumber: "79927398713", UserID: 4, Status: model.OrderStatusConfirmed}, nil
				})
			rep.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil)
			pub.EXPECT().PublishOrderStatus(ctx, gomock.Any()).Return(nil)

			_, err := srv.UpdateOrderStatus(ctx, 1, model.RoleAdmin, "79927398713", model.StatusUpdateInput{Status: model.OrderStatusConfirmed})
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("UpdateOrderStatus by a merchant on another merchant's order", func() {
			rep.EXPECT().UpdateOrderStatus(ctx, "79927398713", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, ch model.StatusChange) (model.Order, error) {
					Expect(ch.MerchantID).Should(Equal(10))
					return model.Order{}, internal.ErrOrderNotFound
				})

			_, err := srv.UpdateOrderStatus(ctx, 10, model.RoleMerchant, "79927398713", model.StatusUpdateInput{Status: model.OrderStatusCancelled})
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("UpdateOrderStatus survives a broker failure", func() {
			rep.EXPECT().UpdateOrderStatus(ctx, "79927398713", gomock.Any()).
				Return(model.Order{OrderNumber: "79927398713", UserID: 4, Status: model.OrderStatusConfirmed}, nil)
			rep.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil)
			pub.EXPECT().PublishOrderStatus(ctx, gomock.Any()).Return(errors.New("broker down"))

			_, err := srv.UpdateOrderStatus(ctx, 1, model.RoleAdmin, "79927398713", model.StatusUpdateInput{Status: model.OrderStatusConfirmed})
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("UpdateOrderStatus of a missing order", func() {
			rep.EXPECT().UpdateOrderStatus(ctx, "1", gomock.Any()).Return(model.Order{}, internal.ErrOrderNotFound)

			_, err := srv.UpdateOrderStatus(ctx, 1, model.RoleAdmin, "1", model.StatusUpdateInput{Status: model.OrderStatusCancelled})
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("ApplyShipment marks the order delivered at the carrier time", func() {
			delivered := time.Date(2024, 2, 3, 8, 30, 0, 0, time.UTC)

			rep.EXPECT().MarkDelivered(ctx, "79927398713", "TRK-1", delivered).
				Return(model.Order{OrderNumber: "79927398713", UserID: 4, Status: model.OrderStatusDelivered, DeliveredAt: &delivered}, nil)
			rep.EXPECT().CreateNotification(ctx, gomock.Any()).Return(nil)
			pub.EXPECT().PublishOrderStatus(ctx, gomock.Any()).Return(nil)

			err := srv.ApplyShipment(ctx,
				model.ShipmentRequest{OrderNumber: "79927398713", TrackingNumber: "TRK-1"},
				model.Shipment{TrackingNumber: "TRK-1", Status: model.ShipmentStatusDelivered, DeliveredAt: &delivered})
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("ApplyShipment leaves a cancelled order cancelled", func() {
			events, unsubscribe := hub.Subscribe(4)
			defer unsubscribe()

			rep.EXPECT().MarkDelivered(ctx, "79927398713", "TRK-1", gomock.Any()).Return(model.Order{}, internal.ErrOrderNotFound)

			err := srv.ApplyShipment(ctx,
				model.ShipmentRequest{OrderNumber: "79927398713", TrackingNumber: "TRK-1"},
				model.Shipment{TrackingNumber: "TRK-1", Status: model.ShipmentStatusDelivered})
			Expect(err).ShouldNot(HaveOccurred())
			Consistently(events, 50*time.Millisecond).ShouldNot(Receive())
		})
		It("ApplyShipment passes repository failures on", func() {
			rep.EXPECT().MarkDelivered(ctx, "79927398713", "TRK-1", gomock.Any()).Return(model.Order{}, errors.New("db down"))

			err := srv.ApplyShipment(ctx,
				model.ShipmentRequest{OrderNumber: "79927398713", TrackingNumber: "TRK-1"},
				model.Shipment{TrackingNumber: "TRK-1", Status: model.ShipmentStatusDelivered})
			Expect(err).Should(MatchError("db down"))
		})
		It("ApplyShipment ignores shipments in transit", func() {
			err := srv.ApplyShipment(ctx,
				model.ShipmentRequest{OrderNumber: "79927398713", TrackingNumber: "TRK-1"},
				model.Shipment{Status: model.ShipmentStatusInTransit})
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("ResumeShipments queues orders still in transit", func() {
			pending := []model.ShipmentRequest{
				{OrderNumber: "79927398713", TrackingNumber: "TRK-1"},
				{OrderNumber: "12345678903", TrackingNumber: "TRK-2"},
			}
			rep.EXPECT().GetShippedOrders(ctx).Return(pending, nil)
			car.EXPECT().Resume(ctx, pending)

			n, err := srv.(*internal.Service).ResumeShipments(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(n).Should(Equal(2))
		})
		It("ResumeShipments with a failing repository", func() {
			rep.EXPECT().GetShippedOrders(ctx).Return(nil, errors.New("db down"))

			_, err := srv.(*internal.Service).ResumeShipments(ctx)
			Expect(err).Should(MatchError("db down"))
		})
	})

	Context("Products", func() {
		It("CreateProduct assigns the merchant", func() {
			rep.EXPECT().CreateProduct(ctx, model.Product{MerchantID: 9, Title: "Mug", Price: decimal.NewFromInt(10)}).Return(3, nil)

			p, err := srv.CreateProduct(ctx, 9, model.ProductInput{Title: "Mug", Price: decimal.NewFromInt(10)})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(p.ID).Should(Equal(3))
		})
		It("CreateProduct with a negative price", func() {
			_, err := srv.CreateProduct(ctx, 9, model.ProductInput{Title: "Mug", Price: decimal.NewFromInt(-1)})
			var ve *internal.ValidationError
			Expect(errors.As(err, &ve)).Should(BeTrue())
		})
		It("ListProducts never returns nil", func() {
			rep.EXPECT().ListProducts(ctx, 0).Return(nil, nil)

			ps, err := srv.ListProducts(ctx, 0)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ps).ShouldNot(BeNil())
			Expect(ps).Should(BeEmpty())
		})
	})

	Context("Messages", func() {
		It("SendMessage delivers to the recipient", func() {
			events, unsubscribe := hub.Subscribe(2)
			defer unsubscribe()

			rep.EXPECT().CreateMessage(ctx, gomock.Any()).Return(nil)

			m, err := srv.SendMessage(ctx, 1, model.MessageInput{RecipientID: 2, Body: "  hello  "})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(m.Body).Should(Equal("hello"))

			e := <-events
			Expect(e.Type).Should(Equal(model.EventMessage))
			Expect(e.Payload).Should(Equal(m))
		})
		It("SendMessage to self", func() {
			_, err := srv.SendMessage(ctx, 1, model.MessageInput{RecipientID: 1, Body: "hello"})
			Expect(err).Should(Equal(internal.ErrMessageToSelf))
		})
		It("SendMessage with a blank body", func() {
			_, err := srv.SendMessage(ctx, 1, model.MessageInput{RecipientID: 2, Body: "   "})
			var ve *internal.ValidationError
			Expect(errors.As(err, &ve)).Should(BeTrue())
		})
		It("MarkConversationRead tells the peer", func() {
			events, unsubscribe := hub.Subscribe(2)
			defer unsubscribe()

			rep.EXPECT().MarkConversationRead(ctx, 1, 2).Return(int64(3), nil)

			n, err := srv.MarkConversationRead(ctx, 1, 2)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(n).Should(Equal(int64(3)))
			Expect((<-events).Type).Should(Equal(model.EventMessagesRead))
		})
		It("MarkConversationRead stays quiet when nothing changed", func() {
			events, unsubscribe := hub.Subscribe(2)
			defer unsubscribe()

			rep.EXPECT().MarkConversationRead(ctx, 1, 2).Return(int64(0), nil)

			_, err := srv.MarkConversationRead(ctx, 1, 2)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(events).ShouldNot(Receive())
		})
		It("GetConversation never returns nil", func() {
			rep.EXPECT().GetConversation(ctx, 1, 2).Return(nil, nil)

			ms, err := srv.GetConversation(ctx, 1, 2)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ms).ShouldNot(BeNil())
		})
		It("MarkNotificationRead with a malformed id", func() {
			err := srv.MarkNotificationRead(ctx, 1, "not-a-uuid")
			Expect(err).Should(Equal(internal.ErrNotificationNotFound))
		})
	})
})
