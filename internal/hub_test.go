package internal_test

import (
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Shopmart/internal"
	"github.com/DrGermanius/Shopmart/internal/model"
)

var _ = Describe("Hub", func() {
	var hub *internal.Hub

	BeforeEach(func() {
		hub = internal.NewHub(2, zap.NewNop().Sugar())
	})

	It("delivers events in order to every subscription of the user", func() {
		a, unsubA := hub.Subscribe(1)
		defer unsubA()
		b, unsubB := hub.Subscribe(1)
		defer unsubB()
		other, unsubOther := hub.Subscribe(2)
		defer unsubOther()

		hub.Publish(1, model.Event{Type: model.EventMessage, Payload: "first"})
		hub.Publish(1, model.Event{Type: model.EventMessage, Payload: "second"})

		for _, ch := range []<-chan model.Event{a, b} {
			Expect((<-ch).Payload).Should(Equal("first"))
			Expect((<-ch).Payload).Should(Equal("second"))
		}
		Consistently(other).ShouldNot(Receive())
	})

	It("drops events for a full subscriber instead of blocking", func() {
		ch, unsubscribe := hub.Subscribe(1)
		defer unsubscribe()

		for i := 0; i < 5; i++ {
			hub.Publish(1, model.Event{Type: model.EventNotification, Payload: i})
		}

		Expect((<-ch).Payload).Should(Equal(0))
		Expect((<-ch).Payload).Should(Equal(1))
		Expect(ch).ShouldNot(Receive())
	})

	It("closes the channel on unsubscribe and tolerates repeats", func() {
		ch, unsubscribe := hub.Subscribe(1)
		Expect(hub.Subscribers(1)).Should(Equal(1))

		unsubscribe()
		unsubscribe()

		Expect(hub.Subscribers(1)).Should(Equal(0))
		Eventually(ch).Should(BeClosed())
		hub.Publish(1, model.Event{Type: model.EventMessage})
	})
})
