package checkout

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/bill_payload"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/get_bill"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/get_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/get_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/inventory_summary"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_bills"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_events"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_products"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_staff"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_verifications"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/sales_report"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/scan"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_staff"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_to_cart"
	checkoutuc "github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/checkout"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/clear_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/handle_scan"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/remove_from_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/remove_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/set_quantity"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/update_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/verify_bill"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/task"
	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

// UseCases groups the command interactors the handler delegates to.
type UseCases struct {
	AddProduct     *add_product.Interactor
	UpdateProduct  *update_product.Interactor
	RemoveProduct  *remove_product.Interactor
	AddToCart      *add_to_cart.Interactor
	RemoveFromCart *remove_from_cart.Interactor
	SetQuantity    *set_quantity.Interactor
	ClearCart      *clear_cart.Interactor
	Checkout       *checkoutuc.Interactor
	VerifyBill     *verify_bill.Interactor
	HandleScan     *handle_scan.Interactor
	AddStaff       *add_staff.Interactor
}

// Queries groups the read side.
type Queries struct {
	GetProduct        *get_product.Query
	ListProducts      *list_products.Query
	GetCart           *get_cart.Query
	GetBill           *get_bill.Query
	ListBills         *list_bills.Query
	BillPayload       *bill_payload.Query
	ListVerifications *list_verifications.Query
	ListStaff         *list_staff.Query
	InventorySummary  *inventory_summary.Query
	SalesReport       *sales_report.Query
	ListEvents        *list_events.Query
}

// Handler implements the gRPC CheckoutService interface.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	uc     UseCases
	q      Queries
	tasks  *task.Manager
	logger *zap.Logger
}

// NewHandler creates a new gRPC checkout handler.
func NewHandler(uc UseCases, q Queries, tasks *task.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		uc:     uc,
		q:      q,
		tasks:  tasks,
		logger: logger,
	}
}

var _ pb.CheckoutServiceServer = (*Handler)(nil)

// AddProduct adds a record to the catalog.
func (h *Handler) AddProduct(ctx context.Context, req *pb.AddProductRequest) (*pb.AddProductReply, error) {
	// 1. Validate request
	if err := validateAddProductRequest(req); err != nil {
		return nil, err
	}

	// 2. Map wire → application request
	listPrice, err := parseMoney("list_price", req.ListPrice)
	if err != nil {
		return nil, err
	}
	discounted, err := parseOptionalMoney("discounted_price", req.DiscountedPrice)
	if err != nil {
		return nil, err
	}

	appReq := &add_product.Request{
		ProductID:       req.ProductID,
		Name:            req.Name,
		Category:        req.Category,
		ListPrice:       listPrice,
		DiscountedPrice: discounted,
		Stock:           req.Stock,
	}

	// 3. Call usecase (usecase applies plan)
	productID, err := h.uc.AddProduct.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	// 4. Return response
	return &pb.AddProductReply{ProductID: productID}, nil
}

// UpdateProduct replaces a catalog record.
func (h *Handler) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.UpdateProductReply, error) {
	if err := validateUpdateProductRequest(req); err != nil {
		return nil, err
	}

	listPrice, err := parseMoney("list_price", req.ListPrice)
	if err != nil {
		return nil, err
	}
	discounted, err := parseOptionalMoney("discounted_price", req.DiscountedPrice)
	if err != nil {
		return nil, err
	}

	appReq := &update_product.Request{
		ProductID:       req.ProductID,
		Name:            req.Name,
		Category:        req.Category,
		ListPrice:       listPrice,
		DiscountedPrice: discounted,
		Stock:           req.Stock,
	}
	if err := h.uc.UpdateProduct.Execute(ctx, appReq); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.UpdateProductReply{}, nil
}

// RemoveProduct deletes a catalog record.
func (h *Handler) RemoveProduct(ctx context.Context, req *pb.RemoveProductRequest) (*pb.RemoveProductReply, error) {
	if err := required("product_id", req.ProductID); err != nil {
		return nil, err
	}

	if err := h.uc.RemoveProduct.Execute(ctx, &remove_product.Request{ProductID: req.ProductID}); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.RemoveProductReply{}, nil
}

// GetProduct retrieves a product by ID.
func (h *Handler) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductReply, error) {
	if err := required("product_id", req.ProductID); err != nil {
		return nil, err
	}

	dto, err := h.q.GetProduct.Execute(ctx, &get_product.Request{ProductID: req.ProductID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.GetProductReply{Product: dtoToProtoProduct(dto)}, nil
}

// ListProducts lists the catalog with pagination.
func (h *Handler) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsReply, error) {
	queryReq := &list_products.Request{
		Category:  req.Category,
		PageSize:  int(req.PageSize),
		PageToken: req.PageToken,
	}

	result, err := h.q.ListProducts.Execute(ctx, queryReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.ListProductsReply{
		Products:      dtosToProtoProducts(result.Products),
		NextPageToken: result.NextPageToken,
		TotalCount:    result.TotalCount,
	}, nil
}

// AddToCart reserves stock into a session cart.
func (h *Handler) AddToCart(ctx context.Context, req *pb.AddToCartRequest) (*pb.AddToCartReply, error) {
	if err := validateCartRequest(req.SessionID, req.ProductID); err != nil {
		return nil, err
	}
	if req.Quantity < 0 {
		return nil, status.Error(codes.InvalidArgument, "quantity must be positive")
	}

	appReq := &add_to_cart.Request{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := h.uc.AddToCart.Execute(ctx, appReq); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.AddToCartReply{}, nil
}

// RemoveFromCart drops an entry and returns its units to the shelf.
func (h *Handler) RemoveFromCart(ctx context.Context, req *pb.RemoveFromCartRequest) (*pb.RemoveFromCartReply, error) {
	if err := validateCartRequest(req.SessionID, req.ProductID); err != nil {
		return nil, err
	}

	appReq := &remove_from_cart.Request{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
	}
	if err := h.uc.RemoveFromCart.Execute(ctx, appReq); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.RemoveFromCartReply{}, nil
}

// SetQuantity changes the quantity of an existing entry.
func (h *Handler) SetQuantity(ctx context.Context, req *pb.SetQuantityRequest) (*pb.SetQuantityReply, error) {
	if err := validateCartRequest(req.SessionID, req.ProductID); err != nil {
		return nil, err
	}

	appReq := &set_quantity.Request{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := h.uc.SetQuantity.Execute(ctx, appReq); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.SetQuantityReply{}, nil
}

// ClearCart empties a session cart.
func (h *Handler) ClearCart(ctx context.Context, req *pb.ClearCartRequest) (*pb.ClearCartReply, error) {
	if err := required("session_id", req.SessionID); err != nil {
		return nil, err
	}

	if err := h.uc.ClearCart.Execute(ctx, &clear_cart.Request{SessionID: req.SessionID}); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.ClearCartReply{}, nil
}

// GetCart returns the priced view of a session cart.
func (h *Handler) GetCart(ctx context.Context, req *pb.GetCartRequest) (*pb.GetCartReply, error) {
	if err := required("session_id", req.SessionID); err != nil {
		return nil, err
	}

	dto, err := h.q.GetCart.Execute(ctx, &get_cart.Request{SessionID: req.SessionID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.GetCartReply{Cart: dtoToProtoCart(dto)}, nil
}

// Checkout prices the cart, takes payment and issues the bill. The call
// blocks for the whole payment.
func (h *Handler) Checkout(ctx context.Context, req *pb.CheckoutRequest) (*pb.CheckoutReply, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	bill, err := h.uc.Checkout.Execute(ctx, checkoutRequest(req))
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.CheckoutReply{Bill: billToProto(bill)}, nil
}

// StartCheckout runs checkout as a background task and returns its ID.
// Progress and the resulting bill are read with GetTask.
func (h *Handler) StartCheckout(ctx context.Context, req *pb.CheckoutRequest) (*pb.StartCheckoutReply, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	t := h.uc.Checkout.Start(checkoutRequest(req))
	h.logger.Info("checkout task started",
		zap.String("task_id", t.ID()),
		zap.String("session_id", req.SessionID),
	)
	return &pb.StartCheckoutReply{TaskID: t.ID()}, nil
}

func checkoutRequest(req *pb.CheckoutRequest) *checkoutuc.Request {
	return &checkoutuc.Request{
		SessionID:    req.SessionID,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
	}
}

// GetTask reports the state of a background task.
func (h *Handler) GetTask(ctx context.Context, req *pb.GetTaskRequest) (*pb.GetTaskReply, error) {
	if err := required("task_id", req.TaskID); err != nil {
		return nil, err
	}

	t, err := h.tasks.Get(req.TaskID)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.GetTaskReply{Task: snapshotToProtoTask(t.Snapshot())}, nil
}

// CancelTask cancels a running task and waits for it to stop.
func (h *Handler) CancelTask(ctx context.Context, req *pb.CancelTaskRequest) (*pb.CancelTaskReply, error) {
	if err := required("task_id", req.TaskID); err != nil {
		return nil, err
	}

	if err := h.tasks.Cancel(req.TaskID); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	h.logger.Info("task cancelled", zap.String("task_id", req.TaskID))

	return &pb.CancelTaskReply{}, nil
}

// GetBill retrieves a bill by ID.
func (h *Handler) GetBill(ctx context.Context, req *pb.GetBillRequest) (*pb.GetBillReply, error) {
	if err := required("bill_id", req.BillID); err != nil {
		return nil, err
	}

	dto, err := h.q.GetBill.Execute(ctx, &get_bill.Request{BillID: req.BillID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.GetBillReply{Bill: dtoToProtoBill(dto)}, nil
}

// ListBills lists bills in issue order.
func (h *Handler) ListBills(ctx context.Context, req *pb.ListBillsRequest) (*pb.ListBillsReply, error) {
	dtos, err := h.q.ListBills.Execute(ctx, &list_bills.Request{
		CustomerID: req.CustomerID,
		Status:     req.Status,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	bills := make([]*pb.Bill, 0, len(dtos))
	for _, dto := range dtos {
		bills = append(bills, dtoToProtoBill(dto))
	}

	return &pb.ListBillsReply{Bills: bills}, nil
}

// GetBillPayload returns the scan payload of a bill.
func (h *Handler) GetBillPayload(ctx context.Context, req *pb.GetBillPayloadRequest) (*pb.GetBillPayloadReply, error) {
	if err := required("bill_id", req.BillID); err != nil {
		return nil, err
	}

	raw, err := h.q.BillPayload.Execute(ctx, &bill_payload.Request{BillID: req.BillID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.GetBillPayloadReply{Payload: string(raw)}, nil
}

// VerifyBill marks a bill verified by ID.
func (h *Handler) VerifyBill(ctx context.Context, req *pb.VerifyBillRequest) (*pb.VerifyBillReply, error) {
	if err := validateVerifyBillRequest(req); err != nil {
		return nil, err
	}

	rec, err := h.uc.VerifyBill.Execute(ctx, &verify_bill.Request{
		BillID:   req.BillID,
		Verifier: req.Verifier,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.VerifyBillReply{Verification: recordToProto(rec)}, nil
}

// VerifyScan verifies the bill named by a scanned payload.
func (h *Handler) VerifyScan(ctx context.Context, req *pb.VerifyScanRequest) (*pb.VerifyScanReply, error) {
	if err := required("payload", req.Payload); err != nil {
		return nil, err
	}
	if err := required("verifier", req.Verifier); err != nil {
		return nil, err
	}

	rec, err := h.uc.VerifyBill.ExecuteScan(ctx, []byte(req.Payload), req.Verifier)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.VerifyScanReply{Verification: recordToProto(rec)}, nil
}

// HandleScan routes a raw scanner result: products go into the cart, bills
// are verified.
func (h *Handler) HandleScan(ctx context.Context, req *pb.HandleScanRequest) (*pb.HandleScanReply, error) {
	var result scan.Result
	switch req.Kind {
	case scan.KindProduct.String():
		if err := validateCartRequest(req.SessionID, req.ProductID); err != nil {
			return nil, err
		}
		result = scan.ProductScan(req.ProductID)
	case scan.KindBill.String():
		if err := required("verifier", req.Verifier); err != nil {
			return nil, err
		}
		payload, err := scan.DecodePayload([]byte(req.Payload))
		if err != nil {
			return nil, mapDomainErrorToGRPC(err)
		}
		result = scan.BillScan(payload)
	default:
		result = scan.None()
	}

	resp, err := h.uc.HandleScan.Execute(ctx, &handle_scan.Request{
		Result:    result,
		SessionID: req.SessionID,
		Verifier:  req.Verifier,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	reply := &pb.HandleScanReply{Kind: resp.Kind.String()}
	if resp.Record != nil {
		reply.Verification = recordToProto(resp.Record)
	}
	return reply, nil
}

// ListVerifications returns the verification history, oldest first.
func (h *Handler) ListVerifications(ctx context.Context, req *pb.ListVerificationsRequest) (*pb.ListVerificationsReply, error) {
	dtos, err := h.q.ListVerifications.Execute(ctx)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	out := make([]*pb.Verification, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dtoToProtoVerification(dto))
	}

	return &pb.ListVerificationsReply{Verifications: out}, nil
}

// AddStaff puts a person on the verification roster.
func (h *Handler) AddStaff(ctx context.Context, req *pb.AddStaffRequest) (*pb.AddStaffReply, error) {
	if err := validateAddStaffRequest(req); err != nil {
		return nil, err
	}

	member, err := h.uc.AddStaff.Execute(ctx, &add_staff.Request{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.AddStaffReply{Staff: staffToProto(member)}, nil
}

// ListStaff returns the roster in the order members were added.
func (h *Handler) ListStaff(ctx context.Context, req *pb.ListStaffRequest) (*pb.ListStaffReply, error) {
	dtos, err := h.q.ListStaff.Execute(ctx)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	out := make([]*pb.Staff, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dtoToProtoStaff(dto))
	}

	return &pb.ListStaffReply{Staff: out}, nil
}

// InventorySummary aggregates catalog stock.
func (h *Handler) InventorySummary(ctx context.Context, req *pb.InventorySummaryRequest) (*pb.InventorySummaryReply, error) {
	if req.LowStockThreshold < 0 {
		return nil, status.Error(codes.InvalidArgument, "low_stock_threshold cannot be negative")
	}

	dto, err := h.q.InventorySummary.Execute(ctx, &inventory_summary.Request{
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.InventorySummaryReply{
		ProductCount:   dto.ProductCount,
		TotalUnits:     dto.TotalUnits,
		InventoryValue: dto.InventoryValue,
		LowStockCount:  dto.LowStockCount,
		LowStock:       dtosToProtoProducts(dto.LowStock),
	}, nil
}

// SalesReport totals completed bills per day.
func (h *Handler) SalesReport(ctx context.Context, req *pb.SalesReportRequest) (*pb.SalesReportReply, error) {
	dtos, err := h.q.SalesReport.Execute(ctx)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	days := make([]*pb.DailySales, 0, len(dtos))
	for _, d := range dtos {
		days = append(days, &pb.DailySales{
			Date:      d.Date,
			BillCount: d.BillCount,
			Revenue:   d.Revenue,
		})
	}

	return &pb.SalesReportReply{Days: days}, nil
}

// ListEvents retrieves domain events from the outbox, newest first.
func (h *Handler) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (*pb.ListEventsReply, error) {
	queryReq := &list_events.Request{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Status:      req.Status,
		Limit:       int(req.Limit),
	}

	events, totalCount, err := h.q.ListEvents.Execute(ctx, queryReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	protoEvents := make([]*pb.Event, 0, len(events))
	for _, event := range events {
		protoEvents = append(protoEvents, outboxToProtoEvent(event))
	}

	return &pb.ListEventsReply{
		Events:     protoEvents,
		TotalCount: totalCount,
	}, nil
}
