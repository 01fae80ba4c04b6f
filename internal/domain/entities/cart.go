package entities

// MaxLineQuantity caps a single cart line. Together with MaxUnitPrice it keeps
// line and cart totals inside int64.
const MaxLineQuantity = 999

// CartLine is one product row in the cart. Quantity is always within [1, MaxLineQuantity].
type CartLine struct {
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name"`
	UnitPrice int64    `json:"unit_price" validate:"gte=0"`
	Category  Category `json:"category" validate:"oneof=RING GEMSTONE"`
	Image     string   `json:"image,omitempty"`
	Quantity  int      `json:"quantity" validate:"gte=1"`
}

// LineTotal is UnitPrice × Quantity.
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart keeps lines in insertion order, at most one line per product id.
// Totals are derived on every call.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddItem merges qty into an existing line with the same id, or appends a new line.
// qty below 1 is treated as 1 and the merged quantity saturates at MaxLineQuantity.
func (c *Cart) AddItem(line CartLine, qty int) {
	qty = clampQuantity(qty)
	if i := c.index(line.ID); i >= 0 {
		c.Lines[i].Quantity += min(qty, MaxLineQuantity-c.Lines[i].Quantity)
		return
	}
	line.Quantity = qty
	c.Lines = append(c.Lines, line)
}

func clampQuantity(qty int) int {
	return max(1, min(qty, MaxLineQuantity))
}

// RemoveItem deletes the line regardless of its quantity.
func (c *Cart) RemoveItem(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i:i], c.Lines[i+1:]...)
	return true
}

// SetQuantity clamps qty to [1, MaxLineQuantity]. Removal only happens through RemoveItem.
func (c *Cart) SetQuantity(id string, qty int) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.Lines[i].Quantity = clampQuantity(qty)
	return true
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Line(id string) (CartLine, bool) {
	if i := c.index(id); i >= 0 {
		return c.Lines[i], true
	}
	return CartLine{}, false
}

func (c Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

func (c Cart) TotalPrice() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.LineTotal()
	}
	return total
}

func (c Cart) index(id string) int {
	for i, l := range c.Lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
