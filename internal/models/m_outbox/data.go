package m_outbox

import (
	"time"
)

// Data represents the stored row for the outbox_events table.
type Data struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string // JSON
	Status      string
	CreatedAt   time.Time

	Seq     uint64
	Version int64
}

func (d *Data) PrimaryKey() string { return d.EventID }
func (d *Data) RowSeq() uint64     { return d.Seq }
func (d *Data) RowVersion() int64  { return d.Version }

func (d *Data) Stamp(seq uint64, version int64) {
	d.Seq = seq
	d.Version = version
}
