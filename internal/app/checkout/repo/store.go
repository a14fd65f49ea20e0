package repo

import (
	"github.com/light-bringer/selfcheckout-service/internal/models/m_bill"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_cart"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_outbox"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_product"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_staff"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_verification"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// NewStore creates the in-memory database with every checkout table.
func NewStore() (*memstore.DB, error) {
	return memstore.New(
		m_product.Schema(),
		m_cart.Schema(),
		m_bill.Schema(),
		m_verification.Schema(),
		m_staff.Schema(),
		m_outbox.Schema(),
	)
}
