package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// User represents a participant in the auction
type User struct {
	UserID   string `json:"userId"`
	Password string `json:"-"`
}

// Item represents an auction item
type Item struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Active       bool   `json:"active"`
	CurrentPrice int64  `json:"currentPrice"`
	TopBidder    string `json:"topBidder"`
	Bids         []Bid  `json:"bids"`
}

// Clone returns a copy of the item that shares no mutable state with i.
func (i Item) Clone() Item {
	bids := make([]Bid, len(i.Bids))
	copy(bids, i.Bids)
	i.Bids = bids
	return i
}

// Bid represents a user's accepted bid on an item
type Bid struct {
	BidID     string    `json:"id"`
	Bidder    string    `json:"name"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"time"`
}

// Category is a single category name with its item count
type Category struct {
	Name  string
	Count int
}

// CategoryConfig is an ordered category -> count mapping.
// Order matters: item ids are assigned by walking it front to back.
type CategoryConfig []Category

// Get returns the count configured for a category
func (c CategoryConfig) Get(name string) (int, bool) {
	for _, cat := range c {
		if cat.Name == name {
			return cat.Count, true
		}
	}
	return 0, false
}

// Set returns a copy of the config with the category set to count.
// Existing categories keep their position, new ones are appended.
func (c CategoryConfig) Set(name string, count int) CategoryConfig {
	out := c.Clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Count = count
			return out
		}
	}
	return append(out, Category{Name: name, Count: count})
}

// Clone returns an independent copy
func (c CategoryConfig) Clone() CategoryConfig {
	out := make(CategoryConfig, len(c), len(c)+1)
	copy(out, c)
	return out
}

// Total returns the number of items the config describes
func (c CategoryConfig) Total() int {
	total := 0
	for _, cat := range c {
		total += cat.Count
	}
	return total
}

// MarshalJSON encodes the config as a JSON object, keys in configuration order.
func (c CategoryConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", cat.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object while keeping key order.
func (c *CategoryConfig) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category config: expected object, got %v", tok)
	}

	out := CategoryConfig{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("category config: expected key, got %v", tok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("category config: count for %q: %w", name, err)
		}
		out = out.Set(name, count)
	}
	*c = out
	return nil
}

// Snapshot is the full auction state sent to (re)synchronize an observer
type Snapshot struct {
	Items          map[int]Item   `json:"items"`
	CategoryConfig CategoryConfig `json:"categoryConfig"`
}

// ItemUpdate carries the new state of a single item
type ItemUpdate struct {
	ItemID int  `json:"itemId"`
	Data   Item `json:"data"`
}

// ToggleUpdate carries an item's new active flag
type ToggleUpdate struct {
	ItemID int  `json:"itemId"`
	Active bool `json:"active"`
}

// AuthResult is the outcome of a successful authentication
type AuthResult struct {
	Accepted bool `json:"success"`
	IsAdmin  bool `json:"isAdmin"`
}
