package repo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_bill"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_product"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_staff"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_verification"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ReadModelImpl implements ReadModel on the in-memory store.
type ReadModelImpl struct {
	db *memstore.DB
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(db *memstore.DB) contracts.ReadModel {
	return &ReadModelImpl{
		db: db,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.db.Get(m_product.TableName, productID)
	if err != nil {
		if errors.Is(err, memstore.ErrRowNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	return productToDTO(row.(*m_product.Data))
}

// ListProducts returns a page of products in insertion order. The page token
// is the offset of the next page.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	rows, err := rm.products(filter.Category)
	if err != nil {
		return nil, err
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := 0
	if filter.PageToken != "" {
		offset, err = strconv.Atoi(filter.PageToken)
		if err != nil || offset < 0 {
			return nil, fmt.Errorf("invalid page token %q", filter.PageToken)
		}
	}
	if offset > len(rows) {
		offset = len(rows)
	}

	end := offset + pageSize
	next := ""
	if end < len(rows) {
		next = strconv.Itoa(end)
	} else {
		end = len(rows)
	}

	products := make([]*contracts.ProductDTO, 0, end-offset)
	for _, data := range rows[offset:end] {
		dto, err := productToDTO(data)
		if err != nil {
			return nil, fmt.Errorf("failed to convert to DTO: %w", err)
		}
		products = append(products, dto)
	}

	return &contracts.ListResult{
		Products:      products,
		NextPageToken: next,
		TotalCount:    int64(len(rows)),
	}, nil
}

// products returns product rows in insertion order, optionally by category.
func (rm *ReadModelImpl) products(category string) ([]*m_product.Data, error) {
	if category == "" {
		rows, err := rm.db.Scan(m_product.TableName)
		if err != nil {
			return nil, err
		}
		out := make([]*m_product.Data, len(rows))
		for i, row := range rows {
			out[i] = row.(*m_product.Data)
		}
		return out, nil
	}

	txn := rm.db.Snapshot()
	defer txn.Abort()

	it, err := txn.Get(m_product.TableName, m_product.IndexCategory, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}

	var out []*m_product.Data
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, obj.(*m_product.Data))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

// GetBill retrieves a bill DTO by ID.
func (rm *ReadModelImpl) GetBill(ctx context.Context, billID string) (*contracts.BillDTO, error) {
	row, err := rm.db.Get(m_bill.TableName, billID)
	if err != nil {
		if errors.Is(err, memstore.ErrRowNotFound) {
			return nil, domain.ErrUnknownBill
		}
		return nil, fmt.Errorf("failed to read bill: %w", err)
	}

	return billToDTO(row.(*m_bill.Data))
}

// ListBills returns bills in issue order.
func (rm *ReadModelImpl) ListBills(ctx context.Context, filter *contracts.BillFilter) ([]*contracts.BillDTO, error) {
	rows, err := rm.bills(filter.CustomerID)
	if err != nil {
		return nil, err
	}

	bills := make([]*contracts.BillDTO, 0, len(rows))
	for _, data := range rows {
		if filter.Status != "" && data.VerificationStatus != filter.Status {
			continue
		}
		dto, err := billToDTO(data)
		if err != nil {
			return nil, err
		}
		bills = append(bills, dto)
	}
	return bills, nil
}

func (rm *ReadModelImpl) bills(customerID string) ([]*m_bill.Data, error) {
	txn := rm.db.Snapshot()
	defer txn.Abort()

	var out []*m_bill.Data
	if customerID == "" {
		it, err := txn.Get(m_bill.TableName, memstore.IndexSeq)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bills: %w", err)
		}
		for obj := it.Next(); obj != nil; obj = it.Next() {
			out = append(out, obj.(*m_bill.Data))
		}
		return out, nil
	}

	it, err := txn.Get(m_bill.TableName, m_bill.IndexCustomer, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills by customer: %w", err)
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, obj.(*m_bill.Data))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

// ListVerifications returns the verification history, oldest first.
func (rm *ReadModelImpl) ListVerifications(ctx context.Context) ([]*contracts.VerificationDTO, error) {
	rows, err := rm.db.Scan(m_verification.TableName)
	if err != nil {
		return nil, err
	}

	out := make([]*contracts.VerificationDTO, 0, len(rows))
	for _, row := range rows {
		data := row.(*m_verification.Data)
		total, err := moneyFromParts(data.BillTotalNumerator, data.BillTotalDenominator)
		if err != nil {
			return nil, err
		}
		out = append(out, &contracts.VerificationDTO{
			RecordID:     data.RecordID,
			BillID:       data.BillID,
			CustomerName: data.CustomerName,
			BillTotal:    total.String(),
			VerifiedBy:   data.VerifiedBy,
			VerifiedAt:   data.VerifiedAt,
		})
	}
	return out, nil
}

// ListStaff returns the roster, oldest member first.
func (rm *ReadModelImpl) ListStaff(ctx context.Context) ([]*contracts.StaffDTO, error) {
	rows, err := rm.db.Scan(m_staff.TableName)
	if err != nil {
		return nil, err
	}

	out := make([]*contracts.StaffDTO, 0, len(rows))
	for _, row := range rows {
		data := row.(*m_staff.Data)
		out = append(out, &contracts.StaffDTO{
			StaffID: data.StaffID,
			Name:    data.Name,
			Role:    data.Role,
			Phone:   data.Phone,
			Email:   data.Email,
			AddedOn: data.AddedOn,
		})
	}
	return out, nil
}

// InventorySummary aggregates stock levels across the catalog.
func (rm *ReadModelImpl) InventorySummary(ctx context.Context, lowStockThreshold int64) (*contracts.InventorySummaryDTO, error) {
	rows, err := rm.products("")
	if err != nil {
		return nil, err
	}

	summary := &contracts.InventorySummaryDTO{
		LowStock: make([]*contracts.ProductDTO, 0),
	}
	value := domain.Zero()
	for _, data := range rows {
		product, err := dataToProduct(data)
		if err != nil {
			return nil, err
		}

		summary.ProductCount++
		summary.TotalUnits += product.Stock()
		value = value.Add(product.ListPrice().MultiplyByInt(product.Stock()))

		if product.IsLowStock(lowStockThreshold) {
			dto, err := productToDTO(data)
			if err != nil {
				return nil, err
			}
			summary.LowStockCount++
			summary.LowStock = append(summary.LowStock, dto)
		}
	}
	summary.InventoryValue = value.String()

	return summary, nil
}

// SalesReport totals completed bills per UTC calendar day.
func (rm *ReadModelImpl) SalesReport(ctx context.Context) ([]*contracts.DailySalesDTO, error) {
	rows, err := rm.bills("")
	if err != nil {
		return nil, err
	}

	type day struct {
		count   int64
		revenue *domain.Money
	}
	days := make(map[string]*day)
	for _, data := range rows {
		if data.PaymentStatus != string(domain.PaymentCompleted) {
			continue
		}
		bill, err := dataToBill(data)
		if err != nil {
			return nil, err
		}

		key := data.CreatedAt.UTC().Format("2006-01-02")
		d, ok := days[key]
		if !ok {
			d = &day{revenue: domain.Zero()}
			days[key] = d
		}
		d.count++
		d.revenue = d.revenue.Add(bill.Total())
	}

	report := make([]*contracts.DailySalesDTO, 0, len(days))
	for key, d := range days {
		report = append(report, &contracts.DailySalesDTO{
			Date:      key,
			BillCount: d.count,
			Revenue:   d.revenue.String(),
		})
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Date < report[j].Date })

	return report, nil
}

// productToDTO converts a stored row to a ProductDTO.
func productToDTO(data *m_product.Data) (*contracts.ProductDTO, error) {
	listPrice, err := moneyFromParts(data.ListPriceNumerator, data.ListPriceDenominator)
	if err != nil {
		return nil, err
	}

	dto := &contracts.ProductDTO{
		ProductID:      data.ProductID,
		Name:           data.Name,
		Category:       data.Category,
		ListPrice:      listPrice.String(),
		EffectivePrice: listPrice.String(),
		Stock:          data.Stock,
		AddedOn:        data.AddedOn,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.HasDiscount {
		price, err := moneyFromParts(data.DiscountedPriceNumerator, data.DiscountedPriceDenominator)
		if err != nil {
			return nil, err
		}
		discount, err := domain.NewDiscount(listPrice, price)
		if err != nil {
			return nil, fmt.Errorf("invalid stored discount: %w", err)
		}

		discounted := price.String()
		pct := discount.PercentageString()
		dto.DiscountedPrice = &discounted
		dto.DiscountPercent = &pct
		dto.EffectivePrice = discounted
	}

	return dto, nil
}

// billToDTO converts a stored row to a BillDTO with recomputed totals.
func billToDTO(data *m_bill.Data) (*contracts.BillDTO, error) {
	bill, err := dataToBill(data)
	if err != nil {
		return nil, err
	}
	return contracts.NewBillDTO(bill), nil
}
