package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

const productID = "ba16da71-c7dd-4eac-9ead-5a4e0c8a7e01"

func TestDecode(t *testing.T) {
	t.Parallel()

	five := 5
	occurred := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		body    string
		want    domain.StockChanged
		wantErr bool
	}{
		{
			name: "bare event",
			body: `{"eventId":"e1","productId":"` + productID + `","availableQuantity":5,"occurredAt":"2026-04-01T10:00:00Z"}`,
			want: domain.StockChanged{EventID: "e1", AvailableQuantity: &five, OccurredAt: occurred},
		},
		{
			name: "quantity omitted",
			body: `{"eventId":"e2","productId":"` + productID + `"}`,
			want: domain.StockChanged{EventID: "e2"},
		},
		{
			name: "cloud event envelope",
			body: `{"specversion":"1.0","id":"ce-1","type":"stock.changed","time":"2026-04-01T10:00:00Z","data":{"productId":"` + productID + `","availableQuantity":5}}`,
			want: domain.StockChanged{EventID: "ce-1", AvailableQuantity: &five, OccurredAt: occurred},
		},
		{name: "not json", body: `{`, wantErr: true},
		{name: "missing event id", body: `{"productId":"` + productID + `"}`, wantErr: true},
		{name: "bad product id", body: `{"eventId":"e3","productId":"p-1"}`, wantErr: true},
		{name: "negative quantity", body: `{"eventId":"e4","productId":"` + productID + `","availableQuantity":-2}`, wantErr: true},
		{name: "cloud event without data", body: `{"specversion":"1.0","id":"ce-2"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode([]byte(tt.body))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.EventID, got.EventID)
			assert.Equal(t, productID, got.ProductID.String())
			assert.Equal(t, tt.want.AvailableQuantity, got.AvailableQuantity)
			assert.True(t, tt.want.OccurredAt.Equal(got.OccurredAt))
		})
	}
}

type mockHandler struct {
	HandleStockChangedFn func(ctx context.Context, ev domain.StockChanged) error
	malformed            [][]byte
}

func (m *mockHandler) HandleStockChanged(ctx context.Context, ev domain.StockChanged) error {
	return m.HandleStockChangedFn(ctx, ev)
}

func (m *mockHandler) HandleMalformed(_ context.Context, body []byte, _ error) {
	m.malformed = append(m.malformed, body)
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	var got []domain.StockChanged
	h := &mockHandler{HandleStockChangedFn: func(_ context.Context, ev domain.StockChanged) error {
		got = append(got, ev)
		return nil
	}}

	require.NoError(t, Dispatch(context.Background(), h, []byte(`{"eventId":"e1","productId":"`+productID+`"}`)))
	require.NoError(t, Dispatch(context.Background(), h, []byte(`garbage`)))

	assert.Len(t, got, 1)
	assert.Len(t, h.malformed, 1)
}

func TestDispatch_HandlerErrorPropagates(t *testing.T) {
	t.Parallel()
	boom := errors.New("cache down")
	h := &mockHandler{HandleStockChangedFn: func(context.Context, domain.StockChanged) error { return boom }}

	err := Dispatch(context.Background(), h, []byte(`{"eventId":"e1","productId":"`+productID+`"}`))

	assert.ErrorIs(t, err, boom)
}
