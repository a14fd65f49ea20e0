package scan

import (
	"context"
	"time"
)

// Kind says what a scan produced.
type Kind int

const (
	KindNone Kind = iota
	KindProduct
	KindBill
)

func (k Kind) String() string {
	switch k {
	case KindProduct:
		return "product"
	case KindBill:
		return "bill"
	default:
		return "none"
	}
}

// Result is what a scanner hands over. The producer sets Kind; consumers
// switch on it instead of inspecting the value.
type Result struct {
	Kind      Kind
	ProductID string   // KindProduct
	Payload   *Payload // KindBill
}

// None is a scan that found nothing.
func None() Result { return Result{Kind: KindNone} }

// ProductScan is a scanned product code.
func ProductScan(productID string) Result {
	return Result{Kind: KindProduct, ProductID: productID}
}

// BillScan is a scanned bill payload.
func BillScan(p *Payload) Result {
	return Result{Kind: KindBill, Payload: p}
}

// Simulator stands in for camera acquisition: it waits for the configured
// delay and then yields the prepared result. Cancelling ctx during the wait
// yields None and ctx's error.
type Simulator struct {
	delay time.Duration
}

// NewSimulator creates a simulator with the given acquisition delay.
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// Acquire waits and returns r.
func (s *Simulator) Acquire(ctx context.Context, r Result) (Result, error) {
	if s.delay <= 0 {
		if err := ctx.Err(); err != nil {
			return None(), err
		}
		return r, nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return r, nil
	case <-ctx.Done():
		return None(), ctx.Err()
	}
}
