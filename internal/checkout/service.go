// Package checkout turns the checkout and custom-order forms into messages
// for the shop's messaging channel.
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/handoff"
	"github.com/fjod/go_cart/storefront/internal/logger"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// Sender hands a formatted message to the messaging channel and returns the
// deep link that opens it.
type Sender interface {
	Handoff(ctx context.Context, msg handoff.Message) string
}

// LinkBuilder builds the follow-up chat links shown after submission.
type LinkBuilder interface {
	WhatsApp(text string) string
}

type Receipt struct {
	OrderNumber string            `json:"order_number"`
	HandoffURL  string            `json:"handoff_url"`
	TrackURL    string            `json:"track_url"`
	Message     string            `json:"message"`
	Items       []domain.CartLine `json:"items"`
	Total       int64             `json:"total"`
}

type CustomOrderReceipt struct {
	Reference   string `json:"reference"`
	HandoffURL  string `json:"handoff_url"`
	FollowUpURL string `json:"follow_up_url"`
	Message     string `json:"message"`
}

type Service struct {
	sender   Sender
	links    LinkBuilder
	validate *validator.Validate
	now      func() time.Time
}

func NewService(sender Sender, links LinkBuilder) *Service {
	return &Service{
		sender:   sender,
		links:    links,
		validate: newValidator(),
		now:      time.Now,
	}
}

// ValidateCheckout trims and validates form without side effects.
func (s *Service) ValidateCheckout(form CheckoutForm) error {
	form.trim()
	return validateForm(s.validate, form)
}

// PlaceOrder validates form, hands the order off and empties c. On any
// error the cart is left untouched.
func (s *Service) PlaceOrder(ctx context.Context, c *cart.Cart, form CheckoutForm) (*Receipt, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	form.trim()
	if err := validateForm(s.validate, form); err != nil {
		return nil, err
	}
	form.scrub()

	now := s.now()
	number := OrderNumber(now)
	lines := c.Lines()
	total := c.TotalPrice()
	text := OrderMessage(number, form, lines, total)

	link := s.sender.Handoff(ctx, handoff.Message{
		Kind:      handoff.KindOrder,
		Reference: number,
		Text:      text,
		CreatedAt: now,
	})
	c.Clear()

	logger.FromContext(ctx).Info("order handed off",
		zap.String("order_number", number),
		zap.Int("items", len(lines)),
		zap.Int64("total", total),
	)

	return &Receipt{
		OrderNumber: number,
		HandoffURL:  link,
		TrackURL:    s.links.WhatsApp(TrackText(number)),
		Message:     text,
		Items:       lines,
		Total:       total,
	}, nil
}

// SubmitCustomOrder validates form and hands the request off.
func (s *Service) SubmitCustomOrder(ctx context.Context, form CustomOrderForm) (*CustomOrderReceipt, error) {
	form.trim()
	if err := validateForm(s.validate, form); err != nil {
		return nil, err
	}
	form.scrub()

	now := s.now()
	reference := RequestNumber(now)
	text := CustomOrderMessage(reference, form)

	link := s.sender.Handoff(ctx, handoff.Message{
		Kind:      handoff.KindCustomOrder,
		Reference: reference,
		Text:      text,
		CreatedAt: now,
	})

	logger.FromContext(ctx).Info("custom order handed off",
		zap.String("reference", reference),
		zap.String("occasion", form.Occasion),
	)

	return &CustomOrderReceipt{
		Reference:   reference,
		HandoffURL:  link,
		FollowUpURL: s.links.WhatsApp(FollowUpText(form.Occasion)),
		Message:     text,
	}, nil
}
