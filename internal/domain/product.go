package domain

import (
	"strconv"
	"strings"
)

// Product is a read-only catalog entry. Price is in whole rupees.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	PriceLabel  string   `json:"price_label,omitempty"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description,omitempty"`
	Details     []string `json:"details,omitempty"`
}

// DisplayPrice returns the label shown next to the product. A PriceLabel
// overrides the numeric price ("contact us" style products).
func (p Product) DisplayPrice() string {
	if p.PriceLabel != "" {
		return p.PriceLabel
	}
	return FormatRupees(p.Price)
}

// Image returns the primary image reference, if any.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// FormatRupees renders an amount with the rupee sign and Indian digit
// grouping: the last three digits, then groups of two (₹12,34,567).
func FormatRupees(amount int64) string {
	return "₹" + GroupIndian(amount)
}

func GroupIndian(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if len(digits) <= 3 {
		b.WriteString(digits)
		return b.String()
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	first := len(head) % 2
	if first > 0 {
		b.WriteString(head[:first])
	}
	for i := first; i < len(head); i += 2 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
