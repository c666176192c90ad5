package bidding

import (
	"fmt"
	"sync"
	"time"

	"live-auction/internal/biddingerrors"
	"live-auction/internal/broadcast"
	"live-auction/internal/catalog"
	model "live-auction/internal/models"
	"live-auction/internal/repository"
	"live-auction/utils"
)

// Broadcaster fans state changes out to connected observers
type Broadcaster interface {
	Subscribe() *broadcast.Subscriber
	Unsubscribe(s *broadcast.Subscriber)
	Deliver(s *broadcast.Subscriber, e broadcast.Event) bool
	Broadcast(e broadcast.Event) int
}

// AuctionService owns the catalog and every item in it.
//
// All reads and writes of auction state happen under mu, and every event is
// published before mu is released. That makes the order observers see updates
// in identical to the order the service applied them.
type AuctionService struct {
	mu     sync.Mutex
	users  repository.IdentityStore
	hub    Broadcaster
	config model.CategoryConfig
	items  []model.Item // items[id-1]
	now    func() time.Time
}

// NewAuctionService creates a new AuctionService with a catalog generated from cfg
func NewAuctionService(users repository.IdentityStore, hub Broadcaster, cfg model.CategoryConfig) *AuctionService {
	cfg = cfg.Clone()
	return &AuctionService{
		users:  users,
		hub:    hub,
		config: cfg,
		items:  catalog.Generate(cfg),
		now:    time.Now,
	}
}

// Login authenticates a user, registering the identifier on first use
func (s *AuctionService) Login(userID, password string) (model.AuthResult, error) {
	res, err := s.users.Authenticate(userID, password)
	if err != nil {
		utils.Debug("login rejected", map[string]any{"user_id": userID, "error": err.Error()})
		return model.AuthResult{}, fmt.Errorf("service: login: %w", err)
	}
	utils.Info("user logged in", map[string]any{"user_id": userID, "is_admin": res.IsAdmin})
	return res, nil
}

// Connect registers a new observer and hands it the current snapshot.
// No mutation can land between the snapshot and the registration.
func (s *AuctionService) Connect() *broadcast.Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.hub.Subscribe()
	s.hub.Deliver(sub, broadcast.Event{Type: broadcast.EventInit, Data: s.snapshotLocked()})
	return sub
}

// Disconnect removes an observer
func (s *AuctionService) Disconnect(sub *broadcast.Subscriber) {
	s.hub.Unsubscribe(sub)
}

// ToggleAuction opens or closes bidding on a single item. Admin only.
func (s *AuctionService) ToggleAuction(userID string, itemID int, active bool) error {
	if !s.users.IsAdmin(userID) {
		return s.reject("toggle auction", userID, biddingerrors.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.itemLocked(itemID)
	if err != nil {
		return s.reject("toggle auction", userID, err)
	}
	item.Active = active

	s.hub.Broadcast(broadcast.Event{
		Type: broadcast.EventToggleAuction,
		Data: model.ToggleUpdate{ItemID: itemID, Active: active},
	})
	utils.Info("auction toggled", map[string]any{"item_id": itemID, "item": item.Name, "active": active})
	return nil
}

// StartAllAuctions opens bidding on every item. Admin only.
func (s *AuctionService) StartAllAuctions(userID string) error {
	return s.setAllActive(userID, true)
}

// StopAllAuctions closes bidding on every item. Admin only.
func (s *AuctionService) StopAllAuctions(userID string) error {
	return s.setAllActive(userID, false)
}

func (s *AuctionService) setAllActive(userID string, active bool) error {
	if !s.users.IsAdmin(userID) {
		return s.reject("set all auctions", userID, biddingerrors.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Active = active
	}

	s.hub.Broadcast(broadcast.Event{Type: broadcast.EventInit, Data: s.snapshotLocked()})
	utils.Info("all auctions toggled", map[string]any{"active": active, "items": len(s.items)})
	return nil
}

// PlaceBid validates and applies a bid. The check against the current price
// and the write happen in one critical section, so a lower bid can never
// overwrite a higher one.
func (s *AuctionService) PlaceBid(itemID int, bidder, password string, amount int64) (model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.itemLocked(itemID)
	if err != nil {
		return model.Bid{}, s.reject("place bid", bidder, err)
	}
	if !item.Active {
		return model.Bid{}, s.reject("place bid", bidder, fmt.Errorf("item %d: %w", itemID, biddingerrors.ErrInactiveItem))
	}

	if _, err := s.users.Authenticate(bidder, password); err != nil {
		return model.Bid{}, s.reject("place bid", bidder, err)
	}

	if amount <= item.CurrentPrice {
		return model.Bid{}, s.reject("place bid", bidder,
			fmt.Errorf("%w - current price is %d, got %d", biddingerrors.ErrStaleBid, item.CurrentPrice, amount))
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: s.now().UTC(),
	}

	item.CurrentPrice = amount
	item.TopBidder = bidder
	item.Bids = append([]model.Bid{bid}, item.Bids...)

	s.hub.Broadcast(broadcast.Event{
		Type: broadcast.EventUpdate,
		Data: model.ItemUpdate{ItemID: itemID, Data: item.Clone()},
	})
	utils.Info("bid accepted", map[string]any{"item_id": itemID, "bid_id": bid.BidID, "user_id": bidder, "amount": amount})
	return bid, nil
}

// UpdateCategory sets a category's item count and regenerates the whole catalog.
// Every item is recreated, so all bid history is discarded, not just the
// history of the changed category. Admin only.
func (s *AuctionService) UpdateCategory(userID, category string, count float64) error {
	if !s.users.IsAdmin(userID) {
		return s.reject("update category", userID, biddingerrors.ErrUnauthorized)
	}
	if !catalog.ValidCount(count) {
		return s.reject("update category", userID, fmt.Errorf("%w - got %v", biddingerrors.ErrInvalidCount, count))
	}
	if category == "" {
		return s.reject("update category", userID, biddingerrors.ErrInvalidCategory)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = s.config.Set(category, int(count))
	s.items = catalog.Generate(s.config)

	s.hub.Broadcast(broadcast.Event{Type: broadcast.EventInit, Data: s.snapshotLocked()})
	utils.Info("category updated", map[string]any{"category": category, "count": int(count), "items": len(s.items)})
	return nil
}

// Snapshot returns a deep copy of the full auction state
func (s *AuctionService) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Item returns a copy of a single item
func (s *AuctionService) Item(itemID int) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.itemLocked(itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: %w", err)
	}
	return item.Clone(), nil
}

// Bids returns an item's bid log, newest first
func (s *AuctionService) Bids(itemID int) ([]model.Bid, error) {
	item, err := s.Item(itemID)
	if err != nil {
		return nil, err
	}
	return item.Bids, nil
}

// itemLocked must be called with s.mu held
func (s *AuctionService) itemLocked(itemID int) (*model.Item, error) {
	if itemID < 1 || itemID > len(s.items) {
		return nil, fmt.Errorf("item %d: %w", itemID, biddingerrors.ErrUnknownItem)
	}
	return &s.items[itemID-1], nil
}

// snapshotLocked must be called with s.mu held
func (s *AuctionService) snapshotLocked() model.Snapshot {
	items := make(map[int]model.Item, len(s.items))
	for _, item := range s.items {
		items[item.ID] = item.Clone()
	}
	return model.Snapshot{Items: items, CategoryConfig: s.config.Clone()}
}

// reject logs a refused operation and wraps the reason
func (s *AuctionService) reject(op, userID string, err error) error {
	utils.Debug(op+": rejected", map[string]any{"user_id": userID, "error": err.Error()})
	return fmt.Errorf("service: %s: %w", op, err)
}
