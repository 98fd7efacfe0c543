package domain

import "time"

// Product is the snapshot captured when a line is added. Upstream price or
// name changes never reach lines already in the cart.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// Line is one cart entry. Its identity is the (Product.ID, Size) pair; the
// empty size is a key of its own, distinct from every concrete size.
type Line struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
}

type Cart struct {
	Items     []Line    `json:"items"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"itemCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Add merges into an existing line with the same key or appends a new one.
// Non-positive quantities are ignored.
func (c *Cart) Add(product Product, quantity int, size string) {
	if quantity <= 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID && c.Items[i].Size == size {
			c.Items[i].Quantity += quantity
			c.recompute()
			return
		}
	}
	c.Items = append(c.Items, Line{Product: product, Quantity: quantity, Size: size})
	c.recompute()
}

// Remove deletes the line matching the key exactly. An empty size matches
// only lines without a size.
func (c *Cart) Remove(productID, size string) {
	kept := c.Items[:0]
	for _, line := range c.Items {
		if line.Product.ID == productID && line.Size == size {
			continue
		}
		kept = append(kept, line)
	}
	c.Items = kept
	c.recompute()
}

// UpdateQuantity replaces the matching line's quantity; a non-positive
// quantity removes the line instead.
func (c *Cart) UpdateQuantity(productID string, quantity int, size string) {
	if quantity <= 0 {
		c.Remove(productID, size)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID && c.Items[i].Size == size {
			c.Items[i].Quantity = quantity
		}
	}
	c.recompute()
}

func (c *Cart) Clear() {
	c.Items = nil
	c.recompute()
}

// recompute rebuilds both aggregates from the full line list after every
// mutation; they are never adjusted incrementally.
func (c *Cart) recompute() {
	total := 0.0
	count := 0
	for _, line := range c.Items {
		total += line.Product.Price * float64(line.Quantity)
		count += line.Quantity
	}
	c.Total = total
	c.ItemCount = count
	if len(c.Items) == 0 {
		c.Items = nil
	}
}
