package bill

import (
	"math"
	"time"

	"github.com/azmirfakkri/jomsplit/internal/bill/split"
)

// Item represents one shared expense line in a session
type Item struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Name        string    `json:"name"`
	TotalAmount float64   `json:"total_amount"`
	PaidBy      string    `json:"paid_by"`
	SharedBy    []string  `json:"shared_by"`
	HasSST      bool      `json:"has_sst"`
	CreatedAt   time.Time `json:"created_at"`

	// Derived from the fields above; recomputed on every write, never
	// accepted from callers.
	SSTAmount       float64 `json:"sst_amount"`
	PerPersonAmount float64 `json:"per_person_amount"`
}

// Recalculate refreshes the item's derived fields under the given SST rate.
func (i *Item) Recalculate(sstRate float64) {
	i.SSTAmount = 0
	if i.HasSST {
		i.SSTAmount = math.Round(i.TotalAmount*sstRate*100) / 100
	}
	i.PerPersonAmount = 0
	if n := len(i.SharedBy); n > 0 {
		i.PerPersonAmount = math.Round(i.TotalAmount/float64(n)*100) / 100
	}
}

// ToSplitItem converts the item to the split engine's input shape.
func (i *Item) ToSplitItem() split.Item {
	return split.Item{
		ID:          i.ID,
		Name:        i.Name,
		TotalAmount: i.TotalAmount,
		PaidBy:      i.PaidBy,
		SharedBy:    i.SharedBy,
		HasSST:      i.HasSST,
	}
}
