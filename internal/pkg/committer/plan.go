// Package committer implements the Golden Mutation Pattern on top of the
// in-memory store.
//
// Domain aggregates change state in memory, repositories turn those changes
// into mutations without applying them, use cases collect the mutations into
// a CommitPlan, and the Committer applies the whole plan in one write
// transaction. Either every mutation lands or none does.
//
//	// 1. Load aggregates
//	product, err := productRepo.GetByID(ctx, productID)
//	cart, err := cartRepo.GetBySession(ctx, sessionID)
//
//	// 2. Call domain logic
//	if err := domain.AddToCart(cart, product, qty); err != nil {
//	    return err
//	}
//
//	// 3. Collect mutations
//	plan := committer.NewPlan()
//	plan.Add(productRepo.UpdateMut(product))
//	plan.Add(cartRepo.SaveMut(cart))
//
//	// 4. Apply atomically
//	return comm.Apply(ctx, plan)
//
// Update mutations carry the version the row had when it was loaded. A
// mismatch at commit time means another writer got there first and the plan
// is rejected with ErrVersionConflict (optimistic locking).
package committer

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// Commit errors.
var (
	ErrDuplicateKey    = errors.New("row already exists")
	ErrRowMissing      = errors.New("row does not exist")
	ErrVersionConflict = errors.New("version mismatch (concurrent modification detected)")
)

// Op is the kind of write a Mutation performs.
type Op int

const (
	OpInsert Op = iota + 1
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Mutation is a single pending write.
type Mutation struct {
	Table string
	Op    Op
	Key   string
	Row   memstore.Row

	// ExpectedVersion is checked for updates; zero skips the check.
	ExpectedVersion int64
}

// Insert creates a mutation that fails if the key already exists.
func Insert(table string, row memstore.Row) *Mutation {
	return &Mutation{Table: table, Op: OpInsert, Key: row.PrimaryKey(), Row: row}
}

// Update creates a mutation replacing an existing row loaded at expectedVersion.
func Update(table string, row memstore.Row, expectedVersion int64) *Mutation {
	return &Mutation{Table: table, Op: OpUpdate, Key: row.PrimaryKey(), Row: row, ExpectedVersion: expectedVersion}
}

// Delete creates a mutation removing an existing row.
func Delete(table, key string) *Mutation {
	return &Mutation{Table: table, Op: OpDelete, Key: key}
}

// CommitPlan collects mutations from multiple sources and applies them atomically.
type CommitPlan struct {
	mutations []*Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	db *memstore.DB
}

// NewCommitter creates a new Committer.
func NewCommitter(db *memstore.DB) *Committer {
	return &Committer{db: db}
}

// Apply executes the CommitPlan atomically.
//
// The context is checked after the write lock is taken and before the first
// row is touched, so a cancelled operation never leaves partial state.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	txn := c.db.Write()
	defer txn.Abort()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit cancelled: %w", err)
	}

	for _, mut := range plan.Mutations() {
		if err := c.apply(txn, mut); err != nil {
			return fmt.Errorf("failed to apply commit plan: %w", err)
		}
	}

	txn.Commit()
	return nil
}

func (c *Committer) apply(txn *memdb.Txn, mut *Mutation) error {
	current, err := memstore.First(txn, mut.Table, mut.Key)
	if err != nil && !errors.Is(err, memstore.ErrRowNotFound) {
		return err
	}
	exists := err == nil

	switch mut.Op {
	case OpInsert:
		if exists {
			return fmt.Errorf("%s %s/%s: %w", mut.Op, mut.Table, mut.Key, ErrDuplicateKey)
		}
		mut.Row.Stamp(c.db.NextSeq(), 1)
		return txn.Insert(mut.Table, mut.Row)

	case OpUpdate:
		if !exists {
			return fmt.Errorf("%s %s/%s: %w", mut.Op, mut.Table, mut.Key, ErrRowMissing)
		}
		if mut.ExpectedVersion != 0 && current.RowVersion() != mut.ExpectedVersion {
			return fmt.Errorf("%s %s/%s: expected version %d, got %d: %w",
				mut.Op, mut.Table, mut.Key, mut.ExpectedVersion, current.RowVersion(), ErrVersionConflict)
		}
		mut.Row.Stamp(current.RowSeq(), current.RowVersion()+1)
		return txn.Insert(mut.Table, mut.Row)

	case OpDelete:
		if !exists {
			return fmt.Errorf("%s %s/%s: %w", mut.Op, mut.Table, mut.Key, ErrRowMissing)
		}
		return txn.Delete(mut.Table, current)

	default:
		return fmt.Errorf("unknown mutation op %d", mut.Op)
	}
}
