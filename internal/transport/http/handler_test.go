package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

type clientMock struct {
	mock.Mock
}

func (m *clientMock) ListEvents(ctx context.Context, in *pb.ListEventsRequest, opts ...grpc.CallOption) (*pb.ListEventsReply, error) {
	args := m.Called(ctx, in)
	reply, _ := args.Get(0).(*pb.ListEventsReply)
	return reply, args.Error(1)
}

func (m *clientMock) GetBillPayload(ctx context.Context, in *pb.GetBillPayloadRequest, opts ...grpc.CallOption) (*pb.GetBillPayloadReply, error) {
	args := m.Called(ctx, in)
	reply, _ := args.Get(0).(*pb.GetBillPayloadReply)
	return reply, args.Error(1)
}

func (m *clientMock) ListVerifications(ctx context.Context, in *pb.ListVerificationsRequest, opts ...grpc.CallOption) (*pb.ListVerificationsReply, error) {
	args := m.Called(ctx, in)
	reply, _ := args.Get(0).(*pb.ListVerificationsReply)
	return reply, args.Error(1)
}

var testTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func serve(t *testing.T, client CheckoutClient, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(NewHandler(client, 5*time.Second, zap.NewNop()))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestHealth(t *testing.T) {
	rec := serve(t, &clientMock{}, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListEvents(t *testing.T) {
	t.Run("passes filters and converts events", func(t *testing.T) {
		client := &clientMock{}
		client.On("ListEvents", mock.Anything, mock.MatchedBy(func(req *pb.ListEventsRequest) bool {
			return req.EventType != nil && *req.EventType == "bill.issued" &&
				req.AggregateID == nil && req.Limit == 5
		})).Return(&pb.ListEventsReply{
			Events: []*pb.Event{{
				EventID:     "EVT-000001",
				EventType:   "bill.issued",
				AggregateID: "BILL-000001",
				Payload:     `{"total":"172.80"}`,
				Status:      "pending",
				CreatedAt:   testTime,
			}},
			TotalCount: 1,
		}, nil)

		rec := serve(t, client, "/api/v1/events?event_type=bill.issued&limit=5")
		require.Equal(t, http.StatusOK, rec.Code)

		var body ListEventsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(1), body.TotalCount)
		require.Len(t, body.Events, 1)
		assert.Equal(t, "BILL-000001", body.Events[0].AggregateID)
		assert.Equal(t, "2024-03-15T10:30:00Z", body.Events[0].CreatedAt)
		client.AssertExpectations(t)
	})

	t.Run("default limit", func(t *testing.T) {
		client := &clientMock{}
		client.On("ListEvents", mock.Anything, mock.MatchedBy(func(req *pb.ListEventsRequest) bool {
			return req.Limit == 100
		})).Return(&pb.ListEventsReply{}, nil)

		rec := serve(t, client, "/api/v1/events")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"events":[],"total_count":0}`, rec.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		client := &clientMock{}
		rec := serve(t, client, "/api/v1/events?limit=ten")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		client.AssertNotCalled(t, "ListEvents", mock.Anything, mock.Anything)
	})
}

func TestBillPayload(t *testing.T) {
	t.Run("returns the raw payload", func(t *testing.T) {
		payload := `{"billId":"BILL-000001","total":172.8}`
		client := &clientMock{}
		client.On("GetBillPayload", mock.Anything, &pb.GetBillPayloadRequest{BillID: "BILL-000001"}).
			Return(&pb.GetBillPayloadReply{Payload: payload}, nil)

		rec := serve(t, client, "/api/v1/bills/BILL-000001/payload")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, payload, rec.Body.String())
	})

	t.Run("unknown bill", func(t *testing.T) {
		client := &clientMock{}
		client.On("GetBillPayload", mock.Anything, mock.Anything).
			Return(nil, status.Error(codes.NotFound, "unknown bill"))

		rec := serve(t, client, "/api/v1/bills/nope/payload")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "not_found", body.Code)
		assert.Equal(t, "unknown bill", body.Error)
	})
}

func TestListVerifications(t *testing.T) {
	t.Run("converts records", func(t *testing.T) {
		client := &clientMock{}
		client.On("ListVerifications", mock.Anything, mock.Anything).Return(&pb.ListVerificationsReply{
			Verifications: []*pb.Verification{{
				RecordID:     "VER-000001",
				BillID:       "BILL-000001",
				CustomerName: "Dana",
				BillTotal:    "172.80",
				VerifiedBy:   "Alice",
				VerifiedAt:   testTime,
			}},
		}, nil)

		rec := serve(t, client, "/api/v1/verifications")
		require.Equal(t, http.StatusOK, rec.Code)

		var body ListVerificationsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Verifications, 1)
		assert.Equal(t, "Alice", body.Verifications[0].VerifiedBy)
		assert.Equal(t, "172.80", body.Verifications[0].BillTotal)
	})

	t.Run("service failure", func(t *testing.T) {
		client := &clientMock{}
		client.On("ListVerifications", mock.Anything, mock.Anything).
			Return(nil, status.Error(codes.Internal, "internal server error"))

		rec := serve(t, client, "/api/v1/verifications")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
