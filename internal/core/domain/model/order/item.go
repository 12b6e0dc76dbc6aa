package order

// Item is a value object describing one order line. It is owned exclusively
// by a single Order: the item list is set at creation and never mutated.
//
// Quantity and price are stored as received. The inbound boundary requires
// the items list itself to be present and non-empty, but individual item
// fields are not range-checked; negative quantities or prices pass through
// unchanged.
type Item struct {
	productID string
	quantity  int
	price     float64
}

// NewItem creates an order line from its raw parts.
func NewItem(productID string, quantity int, price float64) Item {
	return Item{
		productID: productID,
		quantity:  quantity,
		price:     price,
	}
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}
