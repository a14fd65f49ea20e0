// Package memstore is the process-local transactional store backing the
// repositories. It wraps go-memdb so that every write goes through a single
// serialized write transaction while reads work on immutable snapshots.
package memstore

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-memdb"
)

// Index names shared by every table.
const (
	IndexID  = "id"
	IndexSeq = "seq"
)

// ErrRowNotFound is returned when a key has no row in a table.
var ErrRowNotFound = errors.New("row not found")

// Row is a record stored in a table. Stored rows must never be mutated;
// an update replaces the stored pointer with a new row.
type Row interface {
	PrimaryKey() string
	RowSeq() uint64
	RowVersion() int64

	// Stamp assigns the insertion sequence and row version. Called by the
	// committer right before the row is written.
	Stamp(seq uint64, version int64)
}

// TableSchema builds the schema for a table whose primary key lives in
// keyField. Every row type carries a Seq field used for insertion ordering.
func TableSchema(name, keyField string) *memdb.TableSchema {
	return &memdb.TableSchema{
		Name: name,
		Indexes: map[string]*memdb.IndexSchema{
			IndexID: {
				Name:    IndexID,
				Unique:  true,
				Indexer: &memdb.StringFieldIndex{Field: keyField},
			},
			IndexSeq: {
				Name:    IndexSeq,
				Unique:  true,
				Indexer: &memdb.UintFieldIndex{Field: "Seq"},
			},
		},
	}
}

// DB is the in-memory database.
type DB struct {
	mem *memdb.MemDB
	seq atomic.Uint64
}

// New creates a database with the given tables.
func New(tables ...*memdb.TableSchema) (*DB, error) {
	schema := &memdb.DBSchema{Tables: make(map[string]*memdb.TableSchema, len(tables))}
	for _, t := range tables {
		schema.Tables[t.Name] = t
	}

	mem, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &DB{mem: mem}, nil
}

// Snapshot opens a read-only transaction. Callers should Abort it when done.
func (d *DB) Snapshot() *memdb.Txn {
	return d.mem.Txn(false)
}

// Write opens the write transaction. Only one can be open at a time.
func (d *DB) Write() *memdb.Txn {
	return d.mem.Txn(true)
}

// NextSeq allocates the next insertion sequence number.
func (d *DB) NextSeq() uint64 {
	return d.seq.Add(1)
}

// Get reads one row by primary key from a fresh snapshot.
func (d *DB) Get(table, key string) (Row, error) {
	txn := d.Snapshot()
	defer txn.Abort()
	return First(txn, table, key)
}

// Scan returns every row of a table in insertion order.
func (d *DB) Scan(table string) ([]Row, error) {
	txn := d.Snapshot()
	defer txn.Abort()

	it, err := txn.Get(table, IndexSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}

	var rows []Row
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rows = append(rows, obj.(Row))
	}
	return rows, nil
}

// First looks a row up by primary key inside an open transaction.
func First(txn *memdb.Txn, table, key string) (Row, error) {
	obj, err := txn.First(table, IndexID, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", table, key, err)
	}
	if obj == nil {
		return nil, ErrRowNotFound
	}
	return obj.(Row), nil
}
