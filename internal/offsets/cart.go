package offsets

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/oklog/ulid/v2"
)

var (
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidTons is returned when adding a non-positive quantity.
	ErrInvalidTons = errors.New("tons must be a positive number")
)

// CartItem is a quantity of one project.
type CartItem struct {
	Project Project `json:"project"`
	Tons    float64 `json:"tons"`
}

// Cost returns the item's price.
func (i CartItem) Cost() float64 {
	return i.Project.PricePerTon * i.Tons
}

// Receipt records a completed purchase.
type Receipt struct {
	ID          string     `json:"id"`
	Items       []CartItem `json:"items"`
	TotalTons   float64    `json:"totalTons"`
	TotalCost   float64    `json:"totalCost"`
	PurchasedAt time.Time  `json:"purchasedAt"`
}

// Cart collects offset purchases. It is safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts tons of p in the cart, merging with an existing line for the
// same project.
func (c *Cart) Add(p Project, tons float64) error {
	if tons <= 0 || math.IsNaN(tons) || math.IsInf(tons, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidTons, tons)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Project.ID == p.ID {
			c.items[i].Tons += tons
			return nil
		}
	}
	c.items = append(c.items, CartItem{Project: p, Tons: tons})
	return nil
}

// Remove drops the line for projectID. It reports whether a line existed.
func (c *Cart) Remove(projectID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Project.ID == projectID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a snapshot of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalCost sums price times tons over all lines.
func (c *Cart) TotalCost() float64 {
	return totalCost(c.Items())
}

// TotalTons sums tons over all lines.
func (c *Cart) TotalTons() float64 {
	return totalTons(c.Items())
}

// Checkout empties the cart and returns a receipt stamped with clock.
func (c *Cart) Checkout(clock clockwork.Clock) (Receipt, error) {
	c.mu.Lock()
	items := c.items
	c.items = nil
	c.mu.Unlock()

	if len(items) == 0 {
		return Receipt{}, ErrEmptyCart
	}
	now := clock.Now()
	return Receipt{
		ID:          ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Items:       items,
		TotalTons:   totalTons(items),
		TotalCost:   totalCost(items),
		PurchasedAt: now,
	}, nil
}

func totalCost(items []CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Cost()
	}
	return sum
}

func totalTons(items []CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Tons
	}
	return sum
}
