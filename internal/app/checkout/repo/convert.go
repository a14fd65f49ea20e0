package repo

import (
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
)

// moneyParts splits an amount into storable numerator/denominator columns.
func moneyParts(m *domain.Money) (int64, int64, error) {
	num, numOK := m.Numerator()
	denom, denomOK := m.Denominator()
	if !numOK || !denomOK {
		return 0, 0, fmt.Errorf("amount %s: %w", m.Exact(), domain.ErrMoneyOverflow)
	}
	return num, denom, nil
}

func moneyFromParts(num, denom int64) (*domain.Money, error) {
	m, err := domain.NewMoney(num, denom)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %d/%d: %w", num, denom, err)
	}
	return m, nil
}

func taxRateParts(r domain.TaxRate) (int64, int64, error) {
	return moneyParts(domain.NewMoneyFromRat(r.Rat()))
}

func taxRateFromParts(num, denom int64) (domain.TaxRate, error) {
	m, err := moneyFromParts(num, denom)
	if err != nil {
		return domain.TaxRate{}, err
	}
	return domain.NewTaxRate(m.Rat())
}
