package http

import (
	"net/http"
	"strconv"
	"time"

	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

// Event represents a domain event in the HTTP response.
type Event struct {
	EventID     string `json:"event_id"`
	EventType   string `json:"event_type"`
	AggregateID string `json:"aggregate_id"`
	Payload     string `json:"payload"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []Event `json:"events"`
	TotalCount int64   `json:"total_count"`
}

// ListEvents handles GET /api/v1/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	// Parse query parameters
	query := r.URL.Query()
	req := &pb.ListEventsRequest{
		Limit: 100, // Default limit
	}

	if eventType := query.Get("event_type"); eventType != "" {
		req.EventType = &eventType
	}
	if aggregateID := query.Get("aggregate_id"); aggregateID != "" {
		req.AggregateID = &aggregateID
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		req.Limit = int32(limit)
	}

	resp, err := h.client.ListEvents(ctx, req)
	if err != nil {
		h.handleGRPCError(w, r, err)
		return
	}

	events := make([]Event, 0, len(resp.Events))
	for _, e := range resp.Events {
		events = append(events, Event{
			EventID:     e.EventID,
			EventType:   e.EventType,
			AggregateID: e.AggregateID,
			Payload:     e.Payload,
			Status:      e.Status,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}

	respondJSON(w, http.StatusOK, ListEventsResponse{
		Events:     events,
		TotalCount: resp.TotalCount,
	})
}
