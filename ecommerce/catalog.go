// Copyright (c) Microsoft. All rights reserved.

package ecommerce

import (
	"fmt"
	"strings"
)

// Product is a storefront catalog record.
type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Store is an in-memory product database with per-product discounts.
type Store struct {
	products  map[string]Product
	discounts map[string]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]Product),
		discounts: make(map[string]int),
	}
}

// DemoStore returns a store preloaded with the demo storefront inventory.
func DemoStore() *Store {
	s := NewStore()
	s.AddProduct("101", Product{Name: "Bluetooth Speaker", Description: "Portable speaker with deep bass", Price: 59.99})
	s.AddProduct("202", Product{Name: "Noise Cancelling Headphones", Description: "High fidelity wireless ANC headphones", Price: 129.99})
	s.AddProduct("303", Product{Name: "Smart Fitness Watch", Description: "Tracks heart rate, sleep, and activity", Price: 89.99})
	s.SetDiscount("101", 50)
	s.SetDiscount("202", 20)
	s.SetDiscount("303", 15)
	return s
}

// AddProduct registers a product under the given ID.
func (s *Store) AddProduct(id string, p Product) {
	s.products[id] = p
}

// SetDiscount sets the active discount percentage for a product.
func (s *Store) SetDiscount(id string, percentage int) {
	s.discounts[id] = percentage
}

// ProductInfo looks up a product by ID. A miss is a business outcome,
// reported in the payload.
func (s *Store) ProductInfo(id string) any {
	p, ok := s.products[id]
	if !ok {
		return map[string]string{"error": "Product not found"}
	}
	return p
}

// Discount returns the active discount percentage for a product.
// Unknown products have no discount.
func (s *Store) Discount(id string) any {
	return map[string]int{"discount_percentage": s.discounts[id]}
}

// CatalogEntry is a richer product record used by the content pipeline.
type CatalogEntry struct {
	Name           string
	Category       string
	Price          float64
	Specifications []Spec
	SupplierNotes  string
}

// Spec is a single name/value product specification. Order is preserved
// when rendering the entry.
type Spec struct {
	Key   string
	Value string
}

// Catalog maps product IDs to content-pipeline catalog entries.
type Catalog map[string]CatalogEntry

// DemoCatalog returns the catalog used by the content pipeline demo.
func DemoCatalog() Catalog {
	return Catalog{
		"PROD001": {
			Name:     "UltraGrip Pro Wireless Mouse",
			Category: "Computer Accessories",
			Price:    49.99,
			Specifications: []Spec{
				{"DPI", "16000"},
				{"Buttons", "8 programmable"},
				{"Battery", "70 hours"},
				{"Connectivity", "2.4GHz + Bluetooth"},
				{"Weight", "95g"},
			},
			SupplierNotes: "Premium gaming mouse with ergonomic design",
		},
		"PROD002": {
			Name:     "EcoBlend Bamboo Coffee Mug",
			Category: "Kitchen & Dining",
			Price:    24.99,
			Specifications: []Spec{
				{"Material", "Bamboo fiber composite"},
				{"Capacity", "350ml"},
				{"Insulation", "Double-walled"},
				{"Microwave Safe", "No"},
				{"Dishwasher Safe", "Yes"},
			},
			SupplierNotes: "Sustainable, BPA-free travel mug",
		},
	}
}

// Lookup renders the catalog entry for a product as text for the model,
// or an error line when the product is unknown.
func (c Catalog) Lookup(productID string) string {
	entry, ok := c[productID]
	if !ok {
		return fmt.Sprintf("Error: Product %s not found", productID)
	}

	specs := make([]string, 0, len(entry.Specifications))
	for _, s := range entry.Specifications {
		specs = append(specs, fmt.Sprintf("%s: %s", s.Key, s.Value))
	}

	return fmt.Sprintf(`
Product: %s
Category: %s
Price: $%g
Specifications: %s
Notes: %s
`, entry.Name, entry.Category, entry.Price, strings.Join(specs, ", "), entry.SupplierNotes)
}
