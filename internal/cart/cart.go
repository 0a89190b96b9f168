// Package cart holds the basket of a single storefront session.
//
// A Cart is not safe for concurrent use; the session manager serialises
// access to it.
package cart

import (
	"encoding/json"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

type Cart struct {
	lines []domain.CartLine
	open  bool
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of product into the cart. A product already present has
// its quantity bumped; otherwise a line is appended.
func (c *Cart) Add(product domain.Product) {
	if i := c.index(product.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, domain.CartLine{Product: product, Quantity: 1})
}

// UpdateQuantity sets the quantity of an existing line. Zero or negative
// quantities remove the line. Unknown product ids are ignored.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.removeAt(i)
		return
	}
	c.lines[i].Quantity = quantity
}

func (c *Cart) Remove(productID int64) {
	if i := c.index(productID); i >= 0 {
		c.removeAt(i)
	}
}

// Clear drops every line. The panel visibility flag is left as is.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) SetOpen(open bool) {
	c.open = open
}

func (c *Cart) Open() bool {
	return c.open
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity returns the quantity of productID, or 0 when absent.
func (c *Cart) Quantity(productID int64) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.LineTotal()
	}
	return total
}

func (c *Cart) index(productID int64) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

type snapshot struct {
	Lines []domain.CartLine `json:"lines"`
	Open  bool              `json:"open"`
}

// View is the read model handed to clients: lines plus derived totals.
type View struct {
	Lines      []domain.CartLine `json:"lines"`
	Open       bool              `json:"open"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
}

func (c *Cart) View() View {
	return View{
		Lines:      c.Lines(),
		Open:       c.open,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return json.Marshal(snapshot{Lines: lines, Open: c.open})
}

// UnmarshalJSON restores a snapshot. Lines with a non-positive quantity or a
// repeated product id are dropped so a restored cart keeps its invariants.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	c.lines = nil
	c.open = s.Open
	for _, l := range s.Lines {
		if l.Quantity <= 0 || c.index(l.Product.ID) >= 0 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	return nil
}
