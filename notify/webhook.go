package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dilshat/guest-book/service/dto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RateLimiter interface {
	// Wait blocks until the limiter permits an event to happen.
	Wait(ctx context.Context) error
}

type WebHook interface {
	Post(event dto.MessageEvent) error
}

type webHook struct {
	url         string
	httpClient  *http.Client
	rateLimiter RateLimiter
}

func NewWebHook(url string, tps int) WebHook {
	limit := rate.Inf
	if tps > 0 {
		limit = rate.Limit(tps)
	}
	return &webHook{
		url:         url,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		rateLimiter: rate.NewLimiter(limit, 1),
	}
}

func (w *webHook) Post(event dto.MessageEvent) error {
	//impose tps limit
	err := w.rateLimiter.Wait(context.Background())
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !(resp.StatusCode >= 200 && resp.StatusCode <= 202) {
		zap.L().Warn("Webhook returned unexpected status",
			zap.String("status", resp.Status),
			zap.Uint64("index", event.Index))
	}

	return nil
}
