package cart

import (
	"encoding/json"
	"testing"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hamper  = domain.Product{ID: 1, Name: "Handmade Birthday Hamper", Price: 399}
	giftBox = domain.Product{ID: 2, Name: "Personalized Gift Box", Price: 499}
	cards   = domain.Product{ID: 3, Name: "Custom Greeting Card (Set of 3)", Price: 299}
)

func assertTotals(t *testing.T, c *Cart) {
	t.Helper()
	items, price := 0, int64(0)
	for _, l := range c.Lines() {
		require.GreaterOrEqual(t, l.Quantity, 1)
		items += l.Quantity
		price += l.Product.Price * int64(l.Quantity)
	}
	assert.Equal(t, items, c.TotalItems())
	assert.Equal(t, price, c.TotalPrice())
}

func TestAdd_SameProductKeepsSingleLine(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.Add(hamper)
		assertTotals(t, c)
	}

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestTotals_Scenario(t *testing.T) {
	c := New()
	c.Add(hamper)
	c.Add(hamper)
	c.Add(giftBox)

	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, int64(1297), c.TotalPrice())
}

func TestLines_InsertionOrder(t *testing.T) {
	c := New()
	c.Add(cards)
	c.Add(hamper)
	c.Add(cards)
	c.Add(giftBox)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].Product.ID)
	assert.Equal(t, int64(1), lines[1].Product.ID)
	assert.Equal(t, int64(2), lines[2].Product.ID)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(hamper)
	c.Add(giftBox)

	c.UpdateQuantity(1, 4)
	assert.Equal(t, 4, c.Quantity(1))
	assertTotals(t, c)

	c.UpdateQuantity(1, 0)
	assert.Equal(t, 0, c.Quantity(1))
	assert.Len(t, c.Lines(), 1)
	assertTotals(t, c)

	c.UpdateQuantity(2, -3)
	assert.True(t, c.IsEmpty())
	assertTotals(t, c)

	// line is gone, further updates do nothing
	c.UpdateQuantity(2, 7)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	c := New()
	c.Add(hamper)

	c.UpdateQuantity(42, 3)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Quantity(1))
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(hamper)
	c.Add(giftBox)

	c.Remove(1)
	c.Remove(99)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Product.ID)
	assertTotals(t, c)
}

func TestClear_KeepsVisibility(t *testing.T) {
	c := New()
	c.Add(hamper)
	c.Add(giftBox)
	c.SetOpen(true)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, int64(0), c.TotalPrice())
	assert.True(t, c.Open())
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	c.Add(hamper)

	lines := c.Lines()
	lines[0].Quantity = 100

	assert.Equal(t, 1, c.Quantity(1))
}

func TestJSON_RoundTripDropsBrokenLines(t *testing.T) {
	raw := `{"lines":[
		{"product":{"id":1,"name":"a","price":399},"quantity":2},
		{"product":{"id":1,"name":"a","price":399},"quantity":5},
		{"product":{"id":2,"name":"b","price":499},"quantity":0}
	],"open":true}`

	c := New()
	require.NoError(t, json.Unmarshal([]byte(raw), c))

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Quantity(1))
	assert.True(t, c.Open())

	data, err := json.Marshal(c)
	require.NoError(t, err)
	restored := New()
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, c.View(), restored.View())
}

func TestMarshal_EmptyCartHasEmptyLines(t *testing.T) {
	data, err := json.Marshal(New())
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[],"open":false}`, string(data))
}
