package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/internal/event"
)

const eventWriteTimeout = 5 * time.Second

type subscriber interface {
	Subscribe(kinds ...domain.Kind) *event.Subscription
}

// EventsHandler streams lifecycle events over a websocket.
type EventsHandler struct {
	bus     subscriber
	origins []string
	log     *slog.Logger
}

// NewEventsHandler creates an EventsHandler. origins are host patterns
// accepted for cross-origin handshakes.
func NewEventsHandler(bus subscriber, origins []string, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{bus: bus, origins: origins, log: logger.With("handler", "events")}
}

// Stream handles GET /events[?kind=epic,story]. Each event is sent as one
// JSON text message.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	kinds, err := parseKinds(r.URL.Query().Get("kind"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	// the stream outlives the server write timeout
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.origins})
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket handshake failed", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	sub := h.bus.Subscribe(kinds...)
	defer sub.Close()

	// Inbound frames are discarded; ctx ends when the client goes away.
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "stream closed") //nolint:errcheck
				return
			}
			if err := h.send(ctx, conn, ev); err != nil {
				h.log.DebugContext(r.Context(), "event stream ended", slog.String("error", err.Error()))
				return
			}
		}
	}
}

func (h *EventsHandler) send(ctx context.Context, conn *websocket.Conn, ev domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, eventWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, ev)
}

func parseKinds(raw string) ([]domain.Kind, error) {
	if raw == "" {
		return nil, nil
	}
	var kinds []domain.Kind
	for _, part := range strings.Split(raw, ",") {
		k, err := domain.ParseKind(strings.TrimSpace(part))
		if err != nil {
			return nil, domain.NewValidationError("kind", err.Error())
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
