package checkoutv1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "checkout.v1.CheckoutService"

// CheckoutServiceServer is the server API for CheckoutService.
type CheckoutServiceServer interface {
	AddProduct(context.Context, *AddProductRequest) (*AddProductReply, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*UpdateProductReply, error)
	RemoveProduct(context.Context, *RemoveProductRequest) (*RemoveProductReply, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductReply, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsReply, error)
	AddToCart(context.Context, *AddToCartRequest) (*AddToCartReply, error)
	RemoveFromCart(context.Context, *RemoveFromCartRequest) (*RemoveFromCartReply, error)
	SetQuantity(context.Context, *SetQuantityRequest) (*SetQuantityReply, error)
	ClearCart(context.Context, *ClearCartRequest) (*ClearCartReply, error)
	GetCart(context.Context, *GetCartRequest) (*GetCartReply, error)
	Checkout(context.Context, *CheckoutRequest) (*CheckoutReply, error)
	StartCheckout(context.Context, *CheckoutRequest) (*StartCheckoutReply, error)
	GetTask(context.Context, *GetTaskRequest) (*GetTaskReply, error)
	CancelTask(context.Context, *CancelTaskRequest) (*CancelTaskReply, error)
	GetBill(context.Context, *GetBillRequest) (*GetBillReply, error)
	ListBills(context.Context, *ListBillsRequest) (*ListBillsReply, error)
	GetBillPayload(context.Context, *GetBillPayloadRequest) (*GetBillPayloadReply, error)
	VerifyBill(context.Context, *VerifyBillRequest) (*VerifyBillReply, error)
	VerifyScan(context.Context, *VerifyScanRequest) (*VerifyScanReply, error)
	HandleScan(context.Context, *HandleScanRequest) (*HandleScanReply, error)
	ListVerifications(context.Context, *ListVerificationsRequest) (*ListVerificationsReply, error)
	AddStaff(context.Context, *AddStaffRequest) (*AddStaffReply, error)
	ListStaff(context.Context, *ListStaffRequest) (*ListStaffReply, error)
	InventorySummary(context.Context, *InventorySummaryRequest) (*InventorySummaryReply, error)
	SalesReport(context.Context, *SalesReportRequest) (*SalesReportReply, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsReply, error)
}

// CheckoutServiceClient is the client API for CheckoutService.
type CheckoutServiceClient interface {
	AddProduct(ctx context.Context, in *AddProductRequest, opts ...grpc.CallOption) (*AddProductReply, error)
	UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*UpdateProductReply, error)
	RemoveProduct(ctx context.Context, in *RemoveProductRequest, opts ...grpc.CallOption) (*RemoveProductReply, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductReply, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsReply, error)
	AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*AddToCartReply, error)
	RemoveFromCart(ctx context.Context, in *RemoveFromCartRequest, opts ...grpc.CallOption) (*RemoveFromCartReply, error)
	SetQuantity(ctx context.Context, in *SetQuantityRequest, opts ...grpc.CallOption) (*SetQuantityReply, error)
	ClearCart(ctx context.Context, in *ClearCartRequest, opts ...grpc.CallOption) (*ClearCartReply, error)
	GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*GetCartReply, error)
	Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*CheckoutReply, error)
	StartCheckout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*StartCheckoutReply, error)
	GetTask(ctx context.Context, in *GetTaskRequest, opts ...grpc.CallOption) (*GetTaskReply, error)
	CancelTask(ctx context.Context, in *CancelTaskRequest, opts ...grpc.CallOption) (*CancelTaskReply, error)
	GetBill(ctx context.Context, in *GetBillRequest, opts ...grpc.CallOption) (*GetBillReply, error)
	ListBills(ctx context.Context, in *ListBillsRequest, opts ...grpc.CallOption) (*ListBillsReply, error)
	GetBillPayload(ctx context.Context, in *GetBillPayloadRequest, opts ...grpc.CallOption) (*GetBillPayloadReply, error)
	VerifyBill(ctx context.Context, in *VerifyBillRequest, opts ...grpc.CallOption) (*VerifyBillReply, error)
	VerifyScan(ctx context.Context, in *VerifyScanRequest, opts ...grpc.CallOption) (*VerifyScanReply, error)
	HandleScan(ctx context.Context, in *HandleScanRequest, opts ...grpc.CallOption) (*HandleScanReply, error)
	ListVerifications(ctx context.Context, in *ListVerificationsRequest, opts ...grpc.CallOption) (*ListVerificationsReply, error)
	AddStaff(ctx context.Context, in *AddStaffRequest, opts ...grpc.CallOption) (*AddStaffReply, error)
	ListStaff(ctx context.Context, in *ListStaffRequest, opts ...grpc.CallOption) (*ListStaffReply, error)
	InventorySummary(ctx context.Context, in *InventorySummaryRequest, opts ...grpc.CallOption) (*InventorySummaryReply, error)
	SalesReport(ctx context.Context, in *SalesReportRequest, opts ...grpc.CallOption) (*SalesReportReply, error)
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsReply, error)
}

// RegisterCheckoutServiceServer registers srv on s.
func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

// CheckoutService_ServiceDesc is the grpc.ServiceDesc for CheckoutService.
var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("AddProduct", CheckoutServiceServer.AddProduct),
		unary("UpdateProduct", CheckoutServiceServer.UpdateProduct),
		unary("RemoveProduct", CheckoutServiceServer.RemoveProduct),
		unary("GetProduct", CheckoutServiceServer.GetProduct),
		unary("ListProducts", CheckoutServiceServer.ListProducts),
		unary("AddToCart", CheckoutServiceServer.AddToCart),
		unary("RemoveFromCart", CheckoutServiceServer.RemoveFromCart),
		unary("SetQuantity", CheckoutServiceServer.SetQuantity),
		unary("ClearCart", CheckoutServiceServer.ClearCart),
		unary("GetCart", CheckoutServiceServer.GetCart),
		unary("Checkout", CheckoutServiceServer.Checkout),
		unary("StartCheckout", CheckoutServiceServer.StartCheckout),
		unary("GetTask", CheckoutServiceServer.GetTask),
		unary("CancelTask", CheckoutServiceServer.CancelTask),
		unary("GetBill", CheckoutServiceServer.GetBill),
		unary("ListBills", CheckoutServiceServer.ListBills),
		unary("GetBillPayload", CheckoutServiceServer.GetBillPayload),
		unary("VerifyBill", CheckoutServiceServer.VerifyBill),
		unary("VerifyScan", CheckoutServiceServer.VerifyScan),
		unary("HandleScan", CheckoutServiceServer.HandleScan),
		unary("ListVerifications", CheckoutServiceServer.ListVerifications),
		unary("AddStaff", CheckoutServiceServer.AddStaff),
		unary("ListStaff", CheckoutServiceServer.ListStaff),
		unary("InventorySummary", CheckoutServiceServer.InventorySummary),
		unary("SalesReport", CheckoutServiceServer.SalesReport),
		unary("ListEvents", CheckoutServiceServer.ListEvents),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "checkout/v1/checkout.proto",
}

// unary adapts a typed server method to a grpc.MethodDesc.
func unary[Req, Reply any](
	method string,
	call func(CheckoutServiceServer, context.Context, *Req) (*Reply, error),
) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CheckoutServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CheckoutServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

type checkoutServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCheckoutServiceClient creates a client that always speaks the JSON codec.
func NewCheckoutServiceClient(cc grpc.ClientConnInterface) CheckoutServiceClient {
	return &checkoutServiceClient{cc}
}

func (c *checkoutServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *checkoutServiceClient) AddProduct(ctx context.Context, in *AddProductRequest, opts ...grpc.CallOption) (*AddProductReply, error) {
	out := new(AddProductReply)
	if err := c.invoke(ctx, "AddProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*UpdateProductReply, error) {
	out := new(UpdateProductReply)
	if err := c.invoke(ctx, "UpdateProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) RemoveProduct(ctx context.Context, in *RemoveProductRequest, opts ...grpc.CallOption) (*RemoveProductReply, error) {
	out := new(RemoveProductReply)
	if err := c.invoke(ctx, "RemoveProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductReply, error) {
	out := new(GetProductReply)
	if err := c.invoke(ctx, "GetProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsReply, error) {
	out := new(ListProductsReply)
	if err := c.invoke(ctx, "ListProducts", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*AddToCartReply, error) {
	out := new(AddToCartReply)
	if err := c.invoke(ctx, "AddToCart", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) RemoveFromCart(ctx context.Context, in *RemoveFromCartRequest, opts ...grpc.CallOption) (*RemoveFromCartReply, error) {
	out := new(RemoveFromCartReply)
	if err := c.invoke(ctx, "RemoveFromCart", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) SetQuantity(ctx context.Context, in *SetQuantityRequest, opts ...grpc.CallOption) (*SetQuantityReply, error) {
	out := new(SetQuantityReply)
	if err := c.invoke(ctx, "SetQuantity", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) ClearCart(ctx context.Context, in *ClearCartRequest, opts ...grpc.CallOption) (*ClearCartReply, error) {
	out := new(ClearCartReply)
	if err := c.invoke(ctx, "ClearCart", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*GetCartReply, error) {
	out := new(GetCartReply)
	if err := c.invoke(ctx, "GetCart", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*CheckoutReply, error) {
	out := new(CheckoutReply)
	if err := c.invoke(ctx, "Checkout", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) StartCheckout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*StartCheckoutReply, error) {
	out := new(StartCheckoutReply)
	if err := c.invoke(ctx, "StartCheckout", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) GetTask(ctx context.Context, in *GetTaskRequest, opts ...grpc.CallOption) (*GetTaskReply, error) {
	out := new(GetTaskReply)
	if err := c.invoke(ctx, "GetTask", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) CancelTask(ctx context.Context, in *CancelTaskRequest, opts ...grpc.CallOption) (*CancelTaskReply, error) {
	out := new(CancelTaskReply)
	if err := c.invoke(ctx, "CancelTask", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) GetBill(ctx context.Context, in *GetBillRequest, opts ...grpc.CallOption) (*GetBillReply, error) {
	out := new(GetBillReply)
	if err := c.invoke(ctx, "GetBill", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) ListBills(ctx context.Context, in *ListBillsRequest, opts ...grpc.CallOption) (*ListBillsReply, error) {
	out := new(ListBillsReply)
	if err := c.invoke(ctx, "ListBills", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) GetBillPayload(ctx context.Context, in *GetBillPayloadRequest, opts ...grpc.CallOption) (*GetBillPayloadReply, error) {
	out := new(GetBillPayloadReply)
	if err := c.invoke(ctx, "GetBillPayload", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) VerifyBill(ctx context.Context, in *VerifyBillRequest, opts ...grpc.CallOption) (*VerifyBillReply, error) {
	out := new(VerifyBillReply)
	if err := c.invoke(ctx, "VerifyBill", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) VerifyScan(ctx context.Context, in *VerifyScanRequest, opts ...grpc.CallOption) (*VerifyScanReply, error) {
	out := new(VerifyScanReply)
	if err := c.invoke(ctx, "VerifyScan", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) HandleScan(ctx context.Context, in *HandleScanRequest, opts ...grpc.CallOption) (*HandleScanReply, error) {
	out := new(HandleScanReply)
	if err := c.invoke(ctx, "HandleScan", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) ListVerifications(ctx context.Context, in *ListVerificationsRequest, opts ...grpc.CallOption) (*ListVerificationsReply, error) {
	out := new(ListVerificationsReply)
	if err := c.invoke(ctx, "ListVerifications", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) AddStaff(ctx context.Context, in *AddStaffRequest, opts ...grpc.CallOption) (*AddStaffReply, error) {
	out := new(AddStaffReply)
	if err := c.invoke(ctx, "AddStaff", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) ListStaff(ctx context.Context, in *ListStaffRequest, opts ...grpc.CallOption) (*ListStaffReply, error) {
	out := new(ListStaffReply)
	if err := c.invoke(ctx, "ListStaff", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) InventorySummary(ctx context.Context, in *InventorySummaryRequest, opts ...grpc.CallOption) (*InventorySummaryReply, error) {
	out := new(InventorySummaryReply)
	if err := c.invoke(ctx, "InventorySummary", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) SalesReport(ctx context.Context, in *SalesReportRequest, opts ...grpc.CallOption) (*SalesReportReply, error) {
	out := new(SalesReportReply)
	if err := c.invoke(ctx, "SalesReport", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsReply, error) {
	out := new(ListEventsReply)
	if err := c.invoke(ctx, "ListEvents", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
