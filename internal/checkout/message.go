package checkout

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

const (
	orderPrefix       = "AN"
	customOrderPrefix = "CO"
)

// OrderNumber tags an order with the prefix and the low eight digits of the
// millisecond clock. Two orders in the same millisecond share a tag.
func OrderNumber(now time.Time) string {
	return stamp(orderPrefix, now)
}

// RequestNumber tags a custom-order request the same way as OrderNumber.
func RequestNumber(now time.Time) string {
	return stamp(customOrderPrefix, now)
}

func stamp(prefix string, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return prefix + ms
}

// OrderMessage renders the text sent to the shop for a cart order.
func OrderMessage(orderNumber string, form CheckoutForm, lines []domain.CartLine, total int64) string {
	var b strings.Builder

	b.WriteString("🛒 *NEW ORDER RECEIVED*\n\n")
	fmt.Fprintf(&b, "*Order ID:* #%s\n\n", orderNumber)

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", form.FullName)
	fmt.Fprintf(&b, "📱 Phone: %s\n", form.Phone)
	if form.Email != "" {
		fmt.Fprintf(&b, "📧 Email: %s\n", form.Email)
	}

	b.WriteString("\n*Delivery Address:*\n")
	fmt.Fprintf(&b, "📍 %s\n", form.Address)
	fmt.Fprintf(&b, "%s, %s - %s\n", form.City, form.State, form.Pincode)

	b.WriteString("\n*Order Items:*\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "• %s (Qty: %d) - %s\n", l.Product.Name, l.Quantity, domain.FormatRupees(l.LineTotal()))
	}

	fmt.Fprintf(&b, "\n💰 *Total: %s*\n", domain.FormatRupees(total))
	b.WriteString("💵 *Payment: Cash on Delivery*")

	if form.Notes != "" {
		fmt.Fprintf(&b, "\n\n📝 *Notes:* %s", form.Notes)
	}
	return b.String()
}

// CustomOrderMessage renders the text sent to the shop for a custom gift
// request.
func CustomOrderMessage(reference string, form CustomOrderForm) string {
	var b strings.Builder

	b.WriteString("🎁 *NEW CUSTOM ORDER REQUEST*\n\n")
	fmt.Fprintf(&b, "*Reference:* #%s\n\n", reference)

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", form.Name)
	fmt.Fprintf(&b, "📱 Phone: %s\n", form.Phone)

	b.WriteString("\n*Gift Details:*\n")
	fmt.Fprintf(&b, "🎉 Occasion: %s\n", form.Occasion)
	fmt.Fprintf(&b, "💰 Budget: %s", form.Budget)
	if form.Message != "" {
		fmt.Fprintf(&b, "\n💌 Message: %s", form.Message)
	}
	return b.String()
}

func TrackText(orderNumber string) string {
	return fmt.Sprintf("Hi Artisiannest! I just placed order #%s. Looking forward to receiving my gifts!", orderNumber)
}

func FollowUpText(occasion string) string {
	return fmt.Sprintf("Hi Artisiannest! I just submitted a custom order for %s. Looking forward to hearing from you!", occasion)
}
