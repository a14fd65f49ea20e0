package m_product

import (
	"time"
)

// Data represents the stored row for the products table.
// Prices are exact rationals split into numerator and denominator.
type Data struct {
	ProductID                  string
	Name                       string
	Category                   string
	ListPriceNumerator         int64
	ListPriceDenominator       int64
	HasDiscount                bool
	DiscountedPriceNumerator   int64
	DiscountedPriceDenominator int64
	Stock                      int64
	AddedOn                    time.Time
	UpdatedAt                  time.Time

	Seq     uint64
	Version int64
}

func (d *Data) PrimaryKey() string { return d.ProductID }
func (d *Data) RowSeq() uint64     { return d.Seq }
func (d *Data) RowVersion() int64  { return d.Version }

func (d *Data) Stamp(seq uint64, version int64) {
	d.Seq = seq
	d.Version = version
}
