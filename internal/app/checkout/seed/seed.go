// Package seed loads the starting product catalog and staff roster from YAML.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry is one catalog record ready to be handed to add_product.
type Entry struct {
	ID   string
	Spec domain.ProductSpec
}

// StaffEntry is one roster member ready to be handed to add_staff.
type StaffEntry struct {
	Spec domain.StaffSpec
}

type catalogFile struct {
	Products []productRecord `yaml:"products"`
	Staff    []staffRecord   `yaml:"staff"`
}

type staffRecord struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

type productRecord struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Category        string `yaml:"category"`
	ListPrice       string `yaml:"list_price"`
	DiscountedPrice string `yaml:"discounted_price"`
	Stock           int64  `yaml:"stock"`
}

// Default returns the embedded demo catalog.
func Default() ([]Entry, error) {
	return parse(defaultCatalog)
}

// LoadFile reads a catalog from path. An empty path yields the embedded catalog.
func LoadFile(path string) ([]Entry, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parse(raw)
}

// LoadRosterFile reads the staff section of the catalog at path. An empty
// path yields the embedded roster; a document without one yields none.
func LoadRosterFile(path string) ([]StaffEntry, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseRoster(raw)
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return defaultCatalog, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return raw, nil
}

// Load parses a catalog document.
func Load(r io.Reader) ([]Entry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) ([]Entry, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Products))
	for i, rec := range doc.Products {
		listPrice, err := domain.ParseMoney(rec.ListPrice)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): list_price: %w", i, rec.Name, err)
		}

		spec := domain.ProductSpec{
			Name:      rec.Name,
			Category:  rec.Category,
			ListPrice: listPrice,
			Stock:     rec.Stock,
		}
		if rec.DiscountedPrice != "" {
			discounted, err := domain.ParseMoney(rec.DiscountedPrice)
			if err != nil {
				return nil, fmt.Errorf("catalog entry %d (%s): discounted_price: %w", i, rec.Name, err)
			}
			spec.DiscountedPrice = discounted
		}

		entries = append(entries, Entry{ID: rec.ID, Spec: spec})
	}
	return entries, nil
}

func parseRoster(raw []byte) ([]StaffEntry, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	entries := make([]StaffEntry, 0, len(doc.Staff))
	for i, rec := range doc.Staff {
		role, err := domain.ParseStaffRole(rec.Role)
		if err != nil {
			return nil, fmt.Errorf("staff entry %d (%s): %w", i, rec.Name, err)
		}
		entries = append(entries, StaffEntry{Spec: domain.StaffSpec{
			Name:  rec.Name,
			Role:  role,
			Phone: rec.Phone,
			Email: rec.Email,
		}})
	}
	return entries, nil
}
