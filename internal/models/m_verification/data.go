package m_verification

import (
	"time"
)

// Data represents the stored row for the verifications table.
type Data struct {
	RecordID             string
	BillID               string
	CustomerName         string
	BillTotalNumerator   int64
	BillTotalDenominator int64
	VerifiedBy           string
	VerifiedAt           time.Time

	Seq     uint64
	Version int64
}

func (d *Data) PrimaryKey() string { return d.RecordID }
func (d *Data) RowSeq() uint64     { return d.Seq }
func (d *Data) RowVersion() int64  { return d.Version }

func (d *Data) Stamp(seq uint64, version int64) {
	d.Seq = seq
	d.Version = version
}
