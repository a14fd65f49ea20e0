package m_bill

import (
	"time"
)

// LineData is one stored bill line with its unit price at checkout.
type LineData struct {
	ProductID            string
	Name                 string
	Quantity             int64
	UnitPriceNumerator   int64
	UnitPriceDenominator int64
}

// Data represents the stored row for the bills table. Totals are not stored:
// they are recomputed from the lines and the tax rate.
type Data struct {
	BillID             string
	CustomerID         string
	CustomerName       string
	Lines              []LineData
	TaxRateNumerator   int64
	TaxRateDenominator int64
	PaymentStatus      string
	VerificationStatus string
	VerifiedBy         string
	VerifiedAt         *time.Time
	CreatedAt          time.Time

	Seq     uint64
	Version int64
}

func (d *Data) PrimaryKey() string { return d.BillID }
func (d *Data) RowSeq() uint64     { return d.Seq }
func (d *Data) RowVersion() int64  { return d.Version }

func (d *Data) Stamp(seq uint64, version int64) {
	d.Seq = seq
	d.Version = version
}
