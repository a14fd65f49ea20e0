package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
)

// ProductDTO is a data transfer object for catalog queries.
// Amounts are decimal strings rounded to cents.
type ProductDTO struct {
	ProductID       string
	Name            string
	Category        string
	ListPrice       string
	DiscountedPrice *string
	DiscountPercent *string
	EffectivePrice  string
	Stock           int64
	AddedOn         time.Time
	UpdatedAt       time.Time
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	Category  string
	PageSize  int
	PageToken string
}

// ListResult contains paginated product list results.
type ListResult struct {
	Products      []*ProductDTO
	NextPageToken string
	TotalCount    int64
}

// CartItemDTO is one priced cart line.
type CartItemDTO struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice string
	LineTotal string
}

// CartDTO is the priced view of a session cart.
type CartDTO struct {
	SessionID string
	Items     []*CartItemDTO
	Units     int64
	Subtotal  string
	Tax       string
	Total     string
}

// BillLineDTO is one line of a bill.
type BillLineDTO struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice string
	LineTotal string
}

// BillDTO is the display form of a bill.
type BillDTO struct {
	BillID             string
	CustomerID         string
	CustomerName       string
	Lines              []*BillLineDTO
	Subtotal           string
	Tax                string
	Total              string
	TaxRate            string
	PaymentStatus      string
	VerificationStatus string
	VerifiedBy         string
	VerifiedAt         *time.Time
	CreatedAt          time.Time
}

// BillFilter selects bills.
type BillFilter struct {
	CustomerID string
	Status     string // verification status
}

// VerificationDTO is an entry of the verification history.
type VerificationDTO struct {
	RecordID     string
	BillID       string
	CustomerName string
	BillTotal    string
	VerifiedBy   string
	VerifiedAt   time.Time
}

// StaffDTO is a roster entry.
type StaffDTO struct {
	StaffID string
	Name    string
	Role    string
	Phone   string
	Email   string
	AddedOn time.Time
}

// InventorySummaryDTO is the admin dashboard's stock overview.
type InventorySummaryDTO struct {
	ProductCount   int64
	TotalUnits     int64
	InventoryValue string // at list price
	LowStockCount  int64
	LowStock       []*ProductDTO
}

// DailySalesDTO aggregates completed bills for one UTC day.
type DailySalesDTO struct {
	Date      string // YYYY-MM-DD
	BillCount int64
	Revenue   string
}

// ReadModel defines the interface for queries.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// GetProductByID returns domain.ErrProductNotFound when absent.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts returns catalog records in insertion order.
	ListProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)

	// GetBill returns domain.ErrUnknownBill when absent.
	GetBill(ctx context.Context, billID string) (*BillDTO, error)

	// ListBills returns bills in issue order.
	ListBills(ctx context.Context, filter *BillFilter) ([]*BillDTO, error)

	// ListVerifications returns the verification history, oldest first.
	ListVerifications(ctx context.Context) ([]*VerificationDTO, error)

	// ListStaff returns the roster in the order members were added.
	ListStaff(ctx context.Context) ([]*StaffDTO, error)

	// InventorySummary aggregates the catalog.
	InventorySummary(ctx context.Context, lowStockThreshold int64) (*InventorySummaryDTO, error)

	// SalesReport totals completed bills per UTC day, oldest day first.
	SalesReport(ctx context.Context) ([]*DailySalesDTO, error)
}

// NewBillDTO builds the display form of a bill aggregate.
func NewBillDTO(bill *domain.Bill) *BillDTO {
	dto := &BillDTO{
		BillID:             bill.ID(),
		CustomerID:         bill.CustomerID(),
		CustomerName:       bill.CustomerName(),
		Subtotal:           bill.Subtotal().String(),
		Tax:                bill.Tax().String(),
		Total:              bill.Total().String(),
		TaxRate:            bill.TaxRate().String(),
		PaymentStatus:      string(bill.PaymentStatus()),
		VerificationStatus: string(bill.VerificationStatus()),
		VerifiedBy:         bill.VerifiedBy(),
		VerifiedAt:         bill.VerifiedAt(),
		CreatedAt:          bill.CreatedAt(),
	}
	for _, l := range bill.Lines() {
		dto.Lines = append(dto.Lines, &BillLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			LineTotal: l.LineTotal().String(),
		})
	}
	return dto
}

// NewVerificationDTO builds the history entry for a verification record.
func NewVerificationDTO(rec *domain.VerificationRecord) *VerificationDTO {
	return &VerificationDTO{
		RecordID:     rec.ID(),
		BillID:       rec.BillID(),
		CustomerName: rec.CustomerName(),
		BillTotal:    rec.BillTotal().String(),
		VerifiedBy:   rec.VerifiedBy(),
		VerifiedAt:   rec.VerifiedAt(),
	}
}
