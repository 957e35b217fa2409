package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/Shopmart/internal/model"
)

const (
	carrierQueueSize   = 1024
	carrierMaxAttempts = 50
	defaultRetryAfter  = 10 * time.Second
)

type ICarrier interface {
	SendToQueue(model.ShipmentRequest)
	Resume(context.Context, []model.ShipmentRequest)
}

// ShipmentHandler is called once the carrier reports the shipment of r delivered.
type ShipmentHandler func(ctx context.Context, r model.ShipmentRequest, s model.Shipment) error

type CarrierService struct {
	logger       *zap.SugaredLogger
	url          string
	client       *http.Client
	queue        chan model.ShipmentRequest
	pollInterval time.Duration
}

func NewCarrierService(url string, pollInterval time.Duration, logger *zap.SugaredLogger) *CarrierService {
	return &CarrierService{
		logger:       logger,
		url:          url,
		client:       &http.Client{Timeout: 10 * time.Second},
		queue:        make(chan model.ShipmentRequest, carrierQueueSize),
		pollInterval: pollInterval,
	}
}

// SendToQueue is a no-op when no carrier system is configured.
func (s *CarrierService) SendToQueue(r model.ShipmentRequest) {
	if s.url == "" || r.TrackingNumber == "" {
		return
	}

	select {
	case s.queue <- r:
	default:
		s.logger.Errorf("SendToQueue error: queue is full, order %s dropped", r.OrderNumber)
	}
}

// Resume queues shipments left over from a previous run. Unlike SendToQueue it
// waits for room in the queue, so run it alongside Run.
func (s *CarrierService) Resume(ctx context.Context, rs []model.ShipmentRequest) {
	if s.url == "" {
		return
	}

	for _, r := range rs {
		if r.TrackingNumber == "" {
			continue
		}
		select {
		case s.queue <- r:
		case <-ctx.Done():
			return
		}
	}
}

// Run polls the carrier with the given number of workers until ctx is done.
func (s *CarrierService) Run(ctx context.Context, workers int, handle ShipmentHandler) {
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case r := <-s.queue:
					s.process(ctx, r, handle)
				}
			}
		}()
	}
	wg.Wait()
}

func (s *CarrierService) process(ctx context.Context, r model.ShipmentRequest, handle ShipmentHandler) {
	sh, err := s.GetShipment(ctx, r.TrackingNumber)
	if err != nil {
		var rl *rateLimitError
		if errors.As(err, &rl) {
			s.retry(ctx, r, rl.retryAfter)
			return
		}
		s.logger.Errorf("GetShipment error: %s", err.Error())
		s.retry(ctx, r, s.pollInterval)
		return
	}

	if sh.Status != model.ShipmentStatusDelivered {
		s.retry(ctx, r, s.pollInterval)
		return
	}

	if err = handle(ctx, r, sh); err != nil {
		s.logger.Errorf("ShipmentHandler error: %s", err.Error())
	}
}

func (s *CarrierService) retry(ctx context.Context, r model.ShipmentRequest, after time.Duration) {
	r.Attempts++
	if r.Attempts >= carrierMaxAttempts {
		s.logger.Warnf("Giving up on shipment %s of order %s after %d attempts", r.TrackingNumber, r.OrderNumber, r.Attempts)
		return
	}

	time.AfterFunc(after, func() {
		select {
		case s.queue <- r:
		case <-ctx.Done():
		}
	})
}

func (s *CarrierService) GetShipment(ctx context.Context, trackingNumber string) (model.Shipment, error) {
	body, err := s.makeRequest(ctx, trackingNumber)
	if err != nil {
		return model.Shipment{}, err
	}

	var sh model.Shipment
	if err = json.Unmarshal(body, &sh); err != nil {
		return model.Shipment{}, err
	}
	if sh.Status == "" {
		sh.Status = model.ShipmentStatusUnknown
	}
	return sh, nil
}

func (s *CarrierService) makeRequest(ctx context.Context, trackingNumber string) ([]byte, error) {
	u := s.url + "/api/shipments/" + url.PathEscape(trackingNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, &rateLimitError{retryAfter: parseRetryAfter(res.Header.Get("Retry-After"))}
	default:
		return nil, fmt.Errorf("carrier responded with status %d", res.StatusCode)
	}

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type rateLimitError struct {
	retryAfter time.Duration
}

func (e *rateLimitError) Error() string {
	return fmt.Sprintf("%s, retry after %s", ErrTooManyRequests, e.retryAfter)
}

func (e *rateLimitError) Unwrap() error {
	return ErrTooManyRequests
}

func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}
