package checkout

import (
	"strings"

	"github.com/fjod/go_cart/storefront/internal/sanitize"
)

// CheckoutForm is the delivery form submitted with an order. Email and
// Notes are optional.
type CheckoutForm struct {
	FullName string `json:"fullName" validate:"min=2,max=100"`
	Phone    string `json:"phone" validate:"in_phone"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Address  string `json:"address" validate:"min=10,max=500"`
	City     string `json:"city" validate:"min=2,max=100"`
	State    string `json:"state" validate:"min=2,max=100"`
	Pincode  string `json:"pincode" validate:"pincode"`
	Notes    string `json:"notes" validate:"max=500"`
}

func (f *CheckoutForm) trim() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Pincode = strings.TrimSpace(f.Pincode)
}

func (f *CheckoutForm) scrub() {
	f.FullName = sanitize.Text(f.FullName)
	f.Address = sanitize.Text(f.Address)
	f.City = sanitize.Text(f.City)
	f.State = sanitize.Text(f.State)
	f.Notes = sanitize.Text(f.Notes)
}

// CustomOrderForm describes a gift the shop should make to order.
type CustomOrderForm struct {
	Name     string `json:"name" validate:"min=2,max=100"`
	Phone    string `json:"phone" validate:"in_phone"`
	Occasion string `json:"occasion" validate:"required,occasion"`
	Budget   string `json:"budget" validate:"required,budget"`
	Message  string `json:"message" validate:"max=1000"`
}

func (f *CustomOrderForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
}

func (f *CustomOrderForm) scrub() {
	f.Name = sanitize.Text(f.Name)
	f.Message = sanitize.Text(f.Message)
}
