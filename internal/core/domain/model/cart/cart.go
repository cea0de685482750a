package cart

import "fulfillment/internal/core/domain/model/kernel"

// Cart is an immutable collection of lines keyed by product ID. Lines keep the
// order in which their product was first added. The zero value is an empty cart.
type Cart struct {
	lines []Line
}

// Empty returns a cart without lines.
func Empty() Cart {
	return Cart{}
}

// FromLines builds a cart from previously stored lines. Later duplicates of a
// product ID are dropped.
func FromLines(lines []Line) Cart {
	c := Cart{lines: make([]Line, 0, len(lines))}
	for _, line := range lines {
		if c.indexOf(line.ProductID()) < 0 {
			c.lines = append(c.lines, line)
		}
	}
	return c
}

// AddItem returns c with line added. If the product is already present only its
// quantity is incremented by one; the incoming name and price are ignored.
// Otherwise the line is appended with quantity 1.
func AddItem(c Cart, line Line) Cart {
	lines := c.Lines()
	if i := c.indexOf(line.ProductID()); i >= 0 {
		lines[i] = lines[i].increment()
		return Cart{lines: lines}
	}
	line.quantity = 1
	return Cart{lines: append(lines, line)}
}

// RemoveItem returns c without the line for productID. Unknown IDs are a no-op.
func RemoveItem(c Cart, productID string) Cart {
	i := c.indexOf(productID)
	if i < 0 {
		return Cart{lines: c.Lines()}
	}
	lines := make([]Line, 0, len(c.lines)-1)
	lines = append(lines, c.lines[:i]...)
	lines = append(lines, c.lines[i+1:]...)
	return Cart{lines: lines}
}

// Clear returns an empty cart.
func Clear(Cart) Cart {
	return Empty()
}

// Lines returns a copy of the lines in first-insertion order.
func (c Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Line returns the line for productID, if present.
func (c Cart) Line(productID string) (Line, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total returns Σ unitPrice × quantity over all lines. It fails with a
// validation error when the sum does not fit in int64.
func (c Cart) Total() (kernel.Money, error) {
	total := kernel.Zero()
	for _, line := range c.lines {
		subtotal, err := line.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(subtotal); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func (c Cart) indexOf(productID string) int {
	for i, line := range c.lines {
		if line.productID == productID {
			return i
		}
	}
	return -1
}
