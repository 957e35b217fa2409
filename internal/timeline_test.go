package internal_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Shopmart/internal"
	"github.com/DrGermanius/Shopmart/internal/model"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	Expect(err).ShouldNot(HaveOccurred())
	return t
}

func stageByLabel(timeline []model.TimelineStage, label string) model.TimelineStage {
	for _, s := range timeline {
		if s.Label == label {
			return s
		}
	}
	Fail("no stage " + label)
	return model.TimelineStage{}
}

var _ = Describe("Timeline", func() {
	statuses := []string{
		model.OrderStatusPending,
		model.OrderStatusConfirmed,
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusCancelled,
		model.OrderStatusDelivered,
	}

	It("is deterministic", func() {
		shipped := mustTime("2024-02-01T12:00:00Z")
		o := model.Order{
			Status:    model.OrderStatusShipped,
			CreatedAt: mustTime("2024-01-01T00:00:00Z"),
			UpdatedAt: mustTime("2024-01-02T00:00:00Z"),
			ShippedAt: &shipped,
		}
		Expect(internal.DeriveTimeline(o)).Should(Equal(internal.DeriveTimeline(o)))
	})

	It("always has six stages in display order", func() {
		for _, st := range append(statuses, "unknown_value", "") {
			tl := internal.DeriveTimeline(model.Order{Status: st})
			labels := make([]string, 0, len(tl))
			for _, s := range tl {
				labels = append(labels, s.Label)
			}
			Expect(labels).Should(Equal([]string{"Pending", "Confirmed", "Processing", "Shipped", "Cancelled", "Delivered"}))
		}
	})

	It("completes exactly the stage of a known status", func() {
		now := mustTime("2024-01-01T00:00:00Z")
		for _, st := range statuses {
			tl := internal.DeriveTimeline(model.Order{Status: st, CreatedAt: now, UpdatedAt: now, ShippedAt: &now, DeliveredAt: &now})

			var completed []model.TimelineStage
			for _, s := range tl {
				if s.Completed {
					completed = append(completed, s)
				} else {
					Expect(s.Date).Should(BeEmpty())
				}
			}
			Expect(completed).Should(HaveLen(1))
			Expect(strings.ToLower(completed[0].Label)).Should(Equal(st))
		}
	})

	It("leaves every stage blank for an unknown status", func() {
		now := mustTime("2024-01-01T00:00:00Z")
		tl := internal.DeriveTimeline(model.Order{Status: "unknown_value", CreatedAt: now, UpdatedAt: now})
		for _, s := range tl {
			Expect(s.Completed).Should(BeFalse())
			Expect(s.Date).Should(BeEmpty())
		}
	})

	It("matches the status case-sensitively", func() {
		tl := internal.DeriveTimeline(model.Order{Status: "Pending", CreatedAt: mustTime("2024-01-01T00:00:00Z")})
		for _, s := range tl {
			Expect(s.Completed).Should(BeFalse())
		}
	})

	It("estimates confirmation 20 minutes after creation", func() {
		o := model.Order{Status: model.OrderStatusConfirmed, CreatedAt: mustTime("2024-01-01T00:00:00Z")}
		Expect(stageByLabel(internal.DeriveTimeline(o), "Confirmed").Date).Should(Equal("2024-01-01T00:20:00.000Z"))
	})

	It("estimates processing 20 minutes after the last update", func() {
		o := model.Order{Status: model.OrderStatusProcessing, UpdatedAt: mustTime("2024-03-05T10:00:00Z")}
		Expect(stageByLabel(internal.DeriveTimeline(o), "Processing").Date).Should(Equal("2024-03-05T10:20:00.000Z"))
	})

	It("passes shipped_at through unchanged", func() {
		shipped := mustTime("2024-02-01T12:00:00Z")
		o := model.Order{Status: model.OrderStatusShipped, ShippedAt: &shipped}
		Expect(stageByLabel(internal.DeriveTimeline(o), "Shipped").Date).Should(Equal("2024-02-01T12:00:00.000Z"))
	})

	It("has no shipped date without shipped_at", func() {
		s := stageByLabel(internal.DeriveTimeline(model.Order{Status: model.OrderStatusShipped}), "Shipped")
		Expect(s.Completed).Should(BeTrue())
		Expect(s.Date).Should(BeEmpty())
	})

	It("passes delivered_at through unchanged", func() {
		delivered := mustTime("2024-02-03T08:30:00Z")
		o := model.Order{Status: model.OrderStatusDelivered, DeliveredAt: &delivered}
		Expect(stageByLabel(internal.DeriveTimeline(o), "Delivered").Date).Should(Equal("2024-02-03T08:30:00.000Z"))
	})

	It("uses created_at verbatim for pending", func() {
		o := model.Order{Status: model.OrderStatusPending, CreatedAt: mustTime("2024-01-01T00:00:00Z")}
		Expect(stageByLabel(internal.DeriveTimeline(o), "Pending").Date).Should(Equal("2024-01-01T00:00:00.000Z"))
	})

	It("uses updated_at verbatim for cancelled", func() {
		o := model.Order{Status: model.OrderStatusCancelled, UpdatedAt: mustTime("2024-04-01T00:00:00Z")}
		Expect(stageByLabel(internal.DeriveTimeline(o), "Cancelled").Date).Should(Equal("2024-04-01T00:00:00.000Z"))
	})

	It("renders dates in UTC", func() {
		loc := time.FixedZone("UTC+3", 3*60*60)
		o := model.Order{Status: model.OrderStatusPending, CreatedAt: time.Date(2024, 1, 1, 3, 0, 0, 0, loc)}
		Expect(stageByLabel(internal.DeriveTimeline(o), "Pending").Date).Should(Equal("2024-01-01T00:00:00.000Z"))
	})

	It("has no confirmation estimate without created_at", func() {
		s := stageByLabel(internal.DeriveTimeline(model.Order{Status: model.OrderStatusConfirmed}), "Confirmed")
		Expect(s.Completed).Should(BeTrue())
		Expect(s.Date).Should(BeEmpty())
	})

	It("knows the six statuses", func() {
		for _, st := range statuses {
			Expect(internal.IsKnownStatus(st)).Should(BeTrue())
		}
		Expect(internal.IsKnownStatus("returned")).Should(BeFalse())
		Expect(internal.IsKnownStatus("PENDING")).Should(BeFalse())
	})
})

var _ = Describe("Colors", func() {
	It("maps order statuses", func() {
		Expect(internal.StatusColor(model.OrderStatusPending)).Should(Equal(model.ColorClass("bg-yellow-100 text-yellow-800")))
		Expect(internal.StatusColor(model.OrderStatusConfirmed)).Should(Equal(model.ColorClass("bg-blue-100 text-blue-800")))
		Expect(internal.StatusColor(model.OrderStatusProcessing)).Should(Equal(model.ColorClass("bg-purple-100 text-purple-800")))
		Expect(internal.StatusColor(model.OrderStatusShipped)).Should(Equal(model.ColorClass("bg-indigo-100 text-indigo-800")))
		Expect(internal.StatusColor(model.OrderStatusDelivered)).Should(Equal(model.ColorClass("bg-green-100 text-green-800")))
		Expect(internal.StatusColor(model.OrderStatusCancelled)).Should(Equal(model.ColorClass("bg-red-100 text-red-800")))
		Expect(internal.StatusColor("lost")).Should(Equal(model.ColorClass("bg-gray-100 text-gray-800")))
	})

	It("maps payment statuses", func() {
		Expect(internal.PaymentStatusColor(model.OrderStatusPending)).Should(Equal(model.ColorClass("bg-yellow-100 text-yellow-800")))
		Expect(internal.PaymentStatusColor(model.OrderStatusConfirmed)).Should(Equal(model.ColorClass("bg-green-100 text-green-800")))
		Expect(internal.PaymentStatusColor(model.OrderStatusShipped)).Should(Equal(model.ColorClass("bg-blue-100 text-blue-800")))
		Expect(internal.PaymentStatusColor(model.OrderStatusCancelled)).Should(Equal(model.ColorClass("bg-red-100 text-red-800")))
		Expect(internal.PaymentStatusColor("")).Should(Equal(model.ColorClass("bg-gray-100 text-gray-800")))
	})
})
