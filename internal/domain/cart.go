package domain

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}
