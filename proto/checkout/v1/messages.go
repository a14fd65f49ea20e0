package checkoutv1

import "time"

// Amounts are decimal strings with two fraction digits ("172.80").

type Product struct {
	ProductID       string    `json:"productId"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	ListPrice       string    `json:"listPrice"`
	DiscountedPrice *string   `json:"discountedPrice,omitempty"`
	DiscountPercent *string   `json:"discountPercent,omitempty"`
	EffectivePrice  string    `json:"effectivePrice"`
	Stock           int64     `json:"stock"`
	AddedOn         time.Time `json:"addedOn"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type AddProductRequest struct {
	ProductID       string  `json:"productId,omitempty"` // empty = server assigns
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	ListPrice       string  `json:"listPrice"`
	DiscountedPrice *string `json:"discountedPrice,omitempty"`
	Stock           int64   `json:"stock"`
}

type AddProductReply struct {
	ProductID string `json:"productId"`
}

// UpdateProductRequest replaces the whole record.
type UpdateProductRequest struct {
	ProductID       string  `json:"productId"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	ListPrice       string  `json:"listPrice"`
	DiscountedPrice *string `json:"discountedPrice,omitempty"`
	Stock           int64   `json:"stock"`
}

type UpdateProductReply struct{}

type RemoveProductRequest struct {
	ProductID string `json:"productId"`
}

type RemoveProductReply struct{}

type GetProductRequest struct {
	ProductID string `json:"productId"`
}

type GetProductReply struct {
	Product *Product `json:"product"`
}

type ListProductsRequest struct {
	Category  string `json:"category,omitempty"`
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListProductsReply struct {
	Products      []*Product `json:"products"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
	TotalCount    int64      `json:"totalCount"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type Cart struct {
	SessionID string      `json:"sessionId"`
	Items     []*CartItem `json:"items"`
	Units     int64       `json:"units"`
	Subtotal  string      `json:"subtotal"`
	Tax       string      `json:"tax"`
	Total     string      `json:"total"`
}

type AddToCartRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity,omitempty"` // 0 = 1
}

type AddToCartReply struct{}

type RemoveFromCartRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
}

type RemoveFromCartReply struct{}

type SetQuantityRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type SetQuantityReply struct{}

type ClearCartRequest struct {
	SessionID string `json:"sessionId"`
}

type ClearCartReply struct{}

type GetCartRequest struct {
	SessionID string `json:"sessionId"`
}

type GetCartReply struct {
	Cart *Cart `json:"cart"`
}

type BillLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type Bill struct {
	BillID             string      `json:"billId"`
	CustomerID         string      `json:"customerId"`
	CustomerName       string      `json:"customerName"`
	Lines              []*BillLine `json:"lines"`
	Subtotal           string      `json:"subtotal"`
	Tax                string      `json:"tax"`
	Total              string      `json:"total"`
	TaxRate            string      `json:"taxRate"`
	PaymentStatus      string      `json:"paymentStatus"`
	VerificationStatus string      `json:"verificationStatus"`
	VerifiedBy         string      `json:"verifiedBy,omitempty"`
	VerifiedAt         *time.Time  `json:"verifiedAt,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
}

type CheckoutRequest struct {
	SessionID    string `json:"sessionId"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

type CheckoutReply struct {
	Bill *Bill `json:"bill"`
}

type StartCheckoutReply struct {
	TaskID string `json:"taskId"`
}

// Task is a background operation. Bill is set once a checkout task completes.
type Task struct {
	TaskID      string     `json:"taskId"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	CurrentStep int32      `json:"currentStep"`
	TotalSteps  int32      `json:"totalSteps"`
	StepName    string     `json:"stepName,omitempty"`
	Percentage  float64    `json:"percentage"`
	Error       string     `json:"error,omitempty"`
	Bill        *Bill      `json:"bill,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type GetTaskRequest struct {
	TaskID string `json:"taskId"`
}

type GetTaskReply struct {
	Task *Task `json:"task"`
}

type CancelTaskRequest struct {
	TaskID string `json:"taskId"`
}

type CancelTaskReply struct{}

type GetBillRequest struct {
	BillID string `json:"billId"`
}

type GetBillReply struct {
	Bill *Bill `json:"bill"`
}

type ListBillsRequest struct {
	CustomerID string `json:"customerId,omitempty"`
	Status     string `json:"status,omitempty"` // verification status
}

type ListBillsReply struct {
	Bills []*Bill `json:"bills"`
}

type GetBillPayloadRequest struct {
	BillID string `json:"billId"`
}

// GetBillPayloadReply carries the scan payload as JSON text, ready to be
// rendered as a QR code.
type GetBillPayloadReply struct {
	Payload string `json:"payload"`
}

type Verification struct {
	RecordID     string    `json:"recordId"`
	BillID       string    `json:"billId"`
	CustomerName string    `json:"customerName"`
	BillTotal    string    `json:"billTotal"`
	VerifiedBy   string    `json:"verifiedBy"`
	VerifiedAt   time.Time `json:"verifiedAt"`
}

type VerifyBillRequest struct {
	BillID   string `json:"billId"`
	Verifier string `json:"verifier"`
}

type VerifyBillReply struct {
	Verification *Verification `json:"verification"`
}

// VerifyScanRequest carries the scanned payload text as decoded from the QR code.
type VerifyScanRequest struct {
	Payload  string `json:"payload"`
	Verifier string `json:"verifier"`
}

type VerifyScanReply struct {
	Verification *Verification `json:"verification"`
}

// HandleScanRequest is a raw scanner result. Kind is "product", "bill" or
// "none"; ProductID is read for product scans and Payload for bill scans.
type HandleScanRequest struct {
	Kind      string `json:"kind"`
	ProductID string `json:"productId,omitempty"`
	Payload   string `json:"payload,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Verifier  string `json:"verifier,omitempty"`
}

type HandleScanReply struct {
	Kind         string        `json:"kind"`
	Verification *Verification `json:"verification,omitempty"`
}

type ListVerificationsRequest struct{}

type ListVerificationsReply struct {
	Verifications []*Verification `json:"verifications"`
}

type Staff struct {
	StaffID string    `json:"staffId"`
	Name    string    `json:"name"`
	Role    string    `json:"role"` // "security" or "admin"
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
	AddedOn time.Time `json:"addedOn"`
}

type AddStaffRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type AddStaffReply struct {
	Staff *Staff `json:"staff"`
}

type ListStaffRequest struct{}

type ListStaffReply struct {
	Staff []*Staff `json:"staff"`
}

type InventorySummaryRequest struct {
	LowStockThreshold int64 `json:"lowStockThreshold,omitempty"` // 0 = 10
}

type InventorySummaryReply struct {
	ProductCount   int64      `json:"productCount"`
	TotalUnits     int64      `json:"totalUnits"`
	InventoryValue string     `json:"inventoryValue"`
	LowStockCount  int64      `json:"lowStockCount"`
	LowStock       []*Product `json:"lowStock"`
}

type DailySales struct {
	Date      string `json:"date"`
	BillCount int64  `json:"billCount"`
	Revenue   string `json:"revenue"`
}

type SalesReportRequest struct{}

type SalesReportReply struct {
	Days []*DailySales `json:"days"`
}

type Event struct {
	EventID     string    `json:"eventId"`
	EventType   string    `json:"eventType"`
	AggregateID string    `json:"aggregateId"`
	Payload     string    `json:"payload"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListEventsRequest struct {
	EventType   *string `json:"eventType,omitempty"`
	AggregateID *string `json:"aggregateId,omitempty"`
	Status      *string `json:"status,omitempty"`
	Limit       int32   `json:"limit,omitempty"`
}

type ListEventsReply struct {
	Events     []*Event `json:"events"`
	TotalCount int64    `json:"totalCount"`
}
