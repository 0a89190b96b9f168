package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/handoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	sent []handoff.Message
}

func (m *mockSender) Handoff(_ context.Context, msg handoff.Message) string {
	m.sent = append(m.sent, msg)
	return "link:" + msg.Reference
}

type mockLinks struct{}

func (mockLinks) WhatsApp(text string) string { return "wa:" + text }

var fixedNow = time.UnixMilli(1_718_123_456_789)

func newService() (*Service, *mockSender) {
	sender := &mockSender{}
	s := NewService(sender, mockLinks{})
	s.now = func() time.Time { return fixedNow }
	return s, sender
}

func validCheckout() CheckoutForm {
	return CheckoutForm{
		FullName: "Asha Kulkarni",
		Phone:    "9876543210",
		Address:  "Flat 4, Rose Apartments, MG Road",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
	}
}

func validCustom() CustomOrderForm {
	return CustomOrderForm{
		Name:     "Ravi",
		Phone:    "+919876543210",
		Occasion: "Wedding",
		Budget:   "₹1000 - ₹2000",
	}
}

func filledCart() *cart.Cart {
	c := cart.New()
	hamper := domain.Product{ID: 1, Name: "Handmade Birthday Hamper", Price: 399}
	box := domain.Product{ID: 2, Name: "Personalized Gift Box", Price: 499}
	c.Add(hamper)
	c.Add(hamper)
	c.Add(box)
	return c
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields
}

func TestPlaceOrder_ShortPhoneBlocksSubmission(t *testing.T) {
	s, sender := newService()
	c := filledCart()
	form := validCheckout()
	form.Phone = "12345"

	receipt, err := s.PlaceOrder(context.Background(), c, form)

	assert.Nil(t, receipt)
	assert.Equal(t, map[string]string{
		"phone": "Please enter a valid 10-digit Indian phone number",
	}, fieldErrors(t, err))
	assert.Empty(t, sender.sent, "no outbound message")
	assert.Equal(t, 3, c.TotalItems(), "cart not cleared")
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	s, sender := newService()

	_, err := s.PlaceOrder(context.Background(), cart.New(), validCheckout())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, sender.sent)
}

func TestPlaceOrder_Success(t *testing.T) {
	s, sender := newService()
	c := filledCart()
	c.SetOpen(true)
	form := validCheckout()
	form.Email = "asha@example.com"
	form.Notes = "Ring the bell <script>"

	receipt, err := s.PlaceOrder(context.Background(), c, form)
	require.NoError(t, err)

	assert.Equal(t, "AN23456789", receipt.OrderNumber)
	assert.Equal(t, "link:AN23456789", receipt.HandoffURL)
	assert.Equal(t, "wa:"+TrackText("AN23456789"), receipt.TrackURL)
	assert.Equal(t, int64(1297), receipt.Total)
	assert.Len(t, receipt.Items, 2)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, handoff.KindOrder, msg.Kind)
	assert.Equal(t, receipt.Message, msg.Text)
	assert.Contains(t, msg.Text, "• Handmade Birthday Hamper (Qty: 2) - ₹798")
	assert.Contains(t, msg.Text, "💰 *Total: ₹1,297*")
	assert.Contains(t, msg.Text, "📧 Email: asha@example.com")
	assert.Contains(t, msg.Text, "📝 *Notes:* Ring the bell script")
	assert.Contains(t, msg.Text, "Pune, Maharashtra - 411001")

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Open(), "clearing keeps the panel flag")
}

func TestPlaceOrder_OptionalFieldsOmitted(t *testing.T) {
	s, sender := newService()

	_, err := s.PlaceOrder(context.Background(), filledCart(), validCheckout())
	require.NoError(t, err)

	text := sender.sent[0].Text
	assert.NotContains(t, text, "Email:")
	assert.NotContains(t, text, "Notes:")
	assert.True(t, strings.HasSuffix(text, "💵 *Payment: Cash on Delivery*"))
}

func TestValidateCheckout_FieldRules(t *testing.T) {
	s, _ := newService()

	form := CheckoutForm{
		FullName: " A ",
		Phone:    "5123456789",
		Email:    "not-an-email",
		Address:  "short",
		City:     "P",
		State:    "",
		Pincode:  "41100",
		Notes:    strings.Repeat("n", 501),
	}

	assert.Equal(t, map[string]string{
		"fullName": "Name must be at least 2 characters",
		"phone":    "Please enter a valid 10-digit Indian phone number",
		"email":    "Please enter a valid email address",
		"address":  "Address must be at least 10 characters",
		"city":     "City must be at least 2 characters",
		"state":    "State must be at least 2 characters",
		"pincode":  "Please enter a valid 6-digit pincode",
		"notes":    "Notes must be less than 500 characters",
	}, fieldErrors(t, s.ValidateCheckout(form)))
}

func TestValidateCheckout_AcceptsCountryCodeAndTrims(t *testing.T) {
	s, _ := newService()
	form := validCheckout()
	form.Phone = "  +919876543210 "
	form.Pincode = " 411001"

	assert.NoError(t, s.ValidateCheckout(form))
}

func TestSubmitCustomOrder_Success(t *testing.T) {
	s, sender := newService()
	form := validCustom()
	form.Message = `Add <b onclick=alert(1)>gold</b> ribbon`

	receipt, err := s.SubmitCustomOrder(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, "CO23456789", receipt.Reference)
	assert.Equal(t, "wa:"+FollowUpText("Wedding"), receipt.FollowUpURL)

	require.Len(t, sender.sent, 1)
	text := sender.sent[0].Text
	assert.Equal(t, handoff.KindCustomOrder, sender.sent[0].Kind)
	assert.Contains(t, text, "🎉 Occasion: Wedding")
	assert.Contains(t, text, "💰 Budget: ₹1000 - ₹2000")
	assert.Contains(t, text, "💌 Message: Add b alert(1)gold/b ribbon")
}

func TestSubmitCustomOrder_Validation(t *testing.T) {
	s, sender := newService()

	_, err := s.SubmitCustomOrder(context.Background(), CustomOrderForm{
		Name:     "Ravi",
		Phone:    "9876543210",
		Occasion: "Halloween",
		Budget:   "",
		Message:  strings.Repeat("m", 1001),
	})

	assert.Equal(t, map[string]string{
		"occasion": "Please select an occasion",
		"budget":   "Please select a budget range",
		"message":  "Message must be less than 1000 characters",
	}, fieldErrors(t, err))
	assert.Empty(t, sender.sent)
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "AN23456789", OrderNumber(fixedNow))
	assert.Equal(t, "AN1234", OrderNumber(time.UnixMilli(1234)))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"phone": "bad", "city": "short"}}
	assert.Equal(t, "validation failed: city: short; phone: bad", err.Error())
}

func TestOptionLists(t *testing.T) {
	assert.Len(t, Occasions(), 9)
	assert.Equal(t, "Under ₹500", BudgetRanges()[0])

	o := Occasions()
	o[0] = "changed"
	assert.Equal(t, "Birthday", Occasions()[0])
}
