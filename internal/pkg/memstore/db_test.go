package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID      string
	Seq     uint64
	Version int64
}

func (r *testRow) PrimaryKey() string { return r.ID }
func (r *testRow) RowSeq() uint64     { return r.Seq }
func (r *testRow) RowVersion() int64  { return r.Version }
func (r *testRow) Stamp(seq uint64, version int64) {
	r.Seq = seq
	r.Version = version
}

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(TableSchema("things", "ID"))
	require.NoError(t, err)
	return db
}

func insert(t *testing.T, db *DB, ids ...string) {
	t.Helper()
	txn := db.Write()
	defer txn.Abort()
	for _, id := range ids {
		row := &testRow{ID: id}
		row.Stamp(db.NextSeq(), 1)
		require.NoError(t, txn.Insert("things", row))
	}
	txn.Commit()
}

func TestDB_Get(t *testing.T) {
	db := newTestDB(t)
	insert(t, db, "a")

	t.Run("existing row", func(t *testing.T) {
		row, err := db.Get("things", "a")
		require.NoError(t, err)
		assert.Equal(t, "a", row.PrimaryKey())
		assert.Equal(t, int64(1), row.RowVersion())
	})

	t.Run("missing row", func(t *testing.T) {
		_, err := db.Get("things", "zzz")
		assert.ErrorIs(t, err, ErrRowNotFound)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := db.Get("nope", "a")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrRowNotFound)
	})
}

func TestDB_ScanKeepsInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	insert(t, db, "c", "a")
	insert(t, db, "b")

	rows, err := db.Scan("things")
	require.NoError(t, err)

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.PrimaryKey())
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestDB_AbortedWriteIsInvisible(t *testing.T) {
	db := newTestDB(t)

	txn := db.Write()
	row := &testRow{ID: "a"}
	row.Stamp(db.NextSeq(), 1)
	require.NoError(t, txn.Insert("things", row))
	txn.Abort()

	rows, err := db.Scan("things")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
