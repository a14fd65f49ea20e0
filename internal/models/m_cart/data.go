package m_cart

import (
	"time"
)

// EntryData is one stored cart line.
type EntryData struct {
	ProductID string
	Listing   uint64
	Quantity  int64
}

// Data represents the stored row for the carts table, one row per session.
type Data struct {
	SessionID string
	Entries   []EntryData
	UpdatedAt time.Time

	Seq     uint64
	Version int64
}

func (d *Data) PrimaryKey() string { return d.SessionID }
func (d *Data) RowSeq() uint64     { return d.Seq }
func (d *Data) RowVersion() int64  { return d.Version }

func (d *Data) Stamp(seq uint64, version int64) {
	d.Seq = seq
	d.Version = version
}
