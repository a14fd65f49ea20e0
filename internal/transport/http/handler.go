// Package http exposes the read-only admin and kiosk endpoints. Handlers
// call the checkout service through its gRPC client.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

// CheckoutClient is the part of the checkout service the HTTP layer uses.
type CheckoutClient interface {
	ListEvents(ctx context.Context, in *pb.ListEventsRequest, opts ...grpc.CallOption) (*pb.ListEventsReply, error)
	GetBillPayload(ctx context.Context, in *pb.GetBillPayloadRequest, opts ...grpc.CallOption) (*pb.GetBillPayloadReply, error)
	ListVerifications(ctx context.Context, in *pb.ListVerificationsRequest, opts ...grpc.CallOption) (*pb.ListVerificationsReply, error)
}

// Handler serves the HTTP endpoints.
type Handler struct {
	client  CheckoutClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(client CheckoutClient, timeout time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Verification is one entry of the verification history.
type Verification struct {
	RecordID     string `json:"record_id"`
	BillID       string `json:"bill_id"`
	CustomerName string `json:"customer_name"`
	BillTotal    string `json:"bill_total"`
	VerifiedBy   string `json:"verified_by"`
	VerifiedAt   string `json:"verified_at"`
}

// ListVerificationsResponse is the body of GET /api/v1/verifications.
type ListVerificationsResponse struct {
	Verifications []Verification `json:"verifications"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BillPayload handles GET /api/v1/bills/{billID}/payload. The body is the
// scan payload itself, the text a kiosk renders as a QR code.
func (h *Handler) BillPayload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	billID := chi.URLParam(r, "billID")
	resp, err := h.client.GetBillPayload(ctx, &pb.GetBillPayloadRequest{BillID: billID})
	if err != nil {
		h.handleGRPCError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(resp.Payload)); err != nil {
		h.logger.Warn("failed to write payload", zap.Error(err))
	}
}

// ListVerifications handles GET /api/v1/verifications.
func (h *Handler) ListVerifications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	resp, err := h.client.ListVerifications(ctx, &pb.ListVerificationsRequest{})
	if err != nil {
		h.handleGRPCError(w, r, err)
		return
	}

	out := make([]Verification, 0, len(resp.Verifications))
	for _, v := range resp.Verifications {
		out = append(out, Verification{
			RecordID:     v.RecordID,
			BillID:       v.BillID,
			CustomerName: v.CustomerName,
			BillTotal:    v.BillTotal,
			VerifiedBy:   v.VerifiedBy,
			VerifiedAt:   v.VerifiedAt.Format(time.RFC3339),
		})
	}

	respondJSON(w, http.StatusOK, ListVerificationsResponse{Verifications: out})
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// handleGRPCError converts a gRPC status to an HTTP error response.
func (h *Handler) handleGRPCError(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)

	var httpStatus int
	var code string
	switch st.Code() {
	case codes.InvalidArgument:
		httpStatus, code = http.StatusBadRequest, "invalid_argument"
	case codes.NotFound:
		httpStatus, code = http.StatusNotFound, "not_found"
	case codes.AlreadyExists, codes.Aborted:
		httpStatus, code = http.StatusConflict, "conflict"
	case codes.FailedPrecondition:
		httpStatus, code = http.StatusUnprocessableEntity, "failed_precondition"
	case codes.Unavailable:
		httpStatus, code = http.StatusServiceUnavailable, "service_unavailable"
	case codes.DeadlineExceeded:
		httpStatus, code = http.StatusGatewayTimeout, "timeout"
	default:
		httpStatus, code = http.StatusInternalServerError, "internal_error"
		h.logger.Error("checkout service call failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	respondError(w, httpStatus, code, st.Message())
}
