// Package catalog defines the product data model and the two pure engines
// that operate on it: Merge, which reconciles locally authored records with
// the remote catalog, and Project, which derives the filtered and sorted
// view consumed by presentation.
//
// Both engines are deterministic and side-effect free; all state handling
// lives in the session package.
package catalog

// Rating is the remote-sourced product rating. The core never writes to
// these fields.
type Rating struct {
	Rate  float64 `json:"rate" yaml:"rate"`
	Count int     `json:"count" yaml:"count"`
}

// Product is a single catalog record. Locally authored records and remote
// records share this shape; a product's ID is unique within any canonical
// list produced by Merge.
//
// Stock and InStock are not part of the remote schema. For remote records
// they are synthesized placeholders (see the remote package); for local
// records InStock is derived from Stock at creation time.
type Product struct {
	ID          int64   `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category" yaml:"category"`
	Image       string  `json:"image" yaml:"image"`
	Rating      Rating  `json:"rating" yaml:"rating"`
	Stock       int     `json:"stock" yaml:"stock"`
	InStock     bool    `json:"inStock" yaml:"in_stock"`
}

// Fields is a partial product used for creates and in-place updates.
// Nil pointers leave the corresponding product field untouched.
type Fields struct {
	Title       *string
	Price       *float64
	Description *string
	Category    *string
	Image       *string
	Stock       *int
}

// Apply merges the set fields into the product. Rating is remote-sourced
// and is never written through Fields.
func (p *Product) Apply(f Fields) {
	if f.Title != nil {
		p.Title = *f.Title
	}
	if f.Price != nil {
		p.Price = *f.Price
	}
	if f.Description != nil {
		p.Description = *f.Description
	}
	if f.Category != nil {
		p.Category = *f.Category
	}
	if f.Image != nil {
		p.Image = *f.Image
	}
	if f.Stock != nil {
		p.Stock = *f.Stock
	}
}
