package m_staff

import (
	"time"
)

// Data represents the stored row for the staff table.
type Data struct {
	NameKey string
	StaffID string
	Name    string
	Role    string
	Phone   string
	Email   string
	AddedOn time.Time

	Seq     uint64
	Version int64
}

func (d *Data) PrimaryKey() string { return d.NameKey }
func (d *Data) RowSeq() uint64     { return d.Seq }
func (d *Data) RowVersion() int64  { return d.Version }

func (d *Data) Stamp(seq uint64, version int64) {
	d.Seq = seq
	d.Version = version
}
