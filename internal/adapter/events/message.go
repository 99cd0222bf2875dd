// Package events decodes stock-change notifications published by the
// inventory system and hands them to a Handler. Transport packages
// (kafka, amqp) share this decoding so both accept the same payloads.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// ErrMalformed marks a payload that can never be processed.
var ErrMalformed = errors.New("malformed stock event")

// Handler consumes decoded events.
type Handler interface {
	HandleStockChanged(ctx context.Context, ev domain.StockChanged) error
	HandleMalformed(ctx context.Context, body []byte, err error)
}

// stockChanged is the wire form of domain.StockChanged.
type stockChanged struct {
	EventID           string     `json:"eventId"`
	ProductID         string     `json:"productId"`
	AvailableQuantity *int       `json:"availableQuantity"`
	OccurredAt        *time.Time `json:"occurredAt"`
}

// cloudEvent is the subset of a CloudEvents 1.0 JSON envelope we read.
type cloudEvent struct {
	SpecVersion string          `json:"specversion"`
	ID          string          `json:"id"`
	Time        *time.Time      `json:"time"`
	Data        json.RawMessage `json:"data"`
}

// Decode parses body, which is either a bare StockChanged object or one
// wrapped in a CloudEvents envelope. Errors wrap ErrMalformed.
func Decode(body []byte) (domain.StockChanged, error) {
	var env cloudEvent
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.StockChanged{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	payload := body
	if env.SpecVersion != "" {
		if len(env.Data) == 0 {
			return domain.StockChanged{}, fmt.Errorf("%w: cloud event %q has no data", ErrMalformed, env.ID)
		}
		payload = env.Data
	}

	var w stockChanged
	if err := json.Unmarshal(payload, &w); err != nil {
		return domain.StockChanged{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if w.EventID == "" {
		w.EventID = env.ID
	}
	if w.OccurredAt == nil {
		w.OccurredAt = env.Time
	}

	if w.EventID == "" {
		return domain.StockChanged{}, fmt.Errorf("%w: eventId is required", ErrMalformed)
	}
	productID, err := uuid.Parse(w.ProductID)
	if err != nil {
		return domain.StockChanged{}, fmt.Errorf("%w: productId: %v", ErrMalformed, err)
	}
	if w.AvailableQuantity != nil && *w.AvailableQuantity < 0 {
		return domain.StockChanged{}, fmt.Errorf("%w: negative availableQuantity", ErrMalformed)
	}

	ev := domain.StockChanged{
		EventID:           w.EventID,
		ProductID:         productID,
		AvailableQuantity: w.AvailableQuantity,
	}
	if w.OccurredAt != nil {
		ev.OccurredAt = w.OccurredAt.UTC()
	}
	return ev, nil
}

// Dispatch decodes body and passes it to h. Malformed payloads are
// reported to h and swallowed so the transport acknowledges them.
func Dispatch(ctx context.Context, h Handler, body []byte) error {
	ev, err := Decode(body)
	if err != nil {
		h.HandleMalformed(ctx, body, err)
		return nil
	}
	return h.HandleStockChanged(ctx, ev)
}
