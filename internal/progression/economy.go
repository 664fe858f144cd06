package progression

import (
	"github.com/vovakirdan/brick-bazaar/internal/config"
)

// Item is a bazaar catalog entry.
type Item struct {
	ID         string
	Name       string
	Cost       int
	RevealAt   int // Balance at which the item shows up in the bazaar
	Repeatable bool
}

// Offer is an item as the bazaar currently presents it.
type Offer struct {
	Item
	Visible    bool
	Affordable bool
	Owned      bool // One-time items only
}

// BallSpawner adds a ball to a live run.
type BallSpawner interface {
	AddBall()
}

// Economy applies bazaar and earning rules to a Store.
type Economy struct {
	store         *Store
	items         []Item
	hintThreshold int
}

// NewEconomy builds the economy from the configured catalog and runs the
// hint check once for records that already qualify.
func NewEconomy(store *Store, cfg config.EconomyConfig) *Economy {
	items := make([]Item, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		items = append(items, Item{
			ID:         it.ID,
			Name:       it.Name,
			Cost:       it.Cost,
			RevealAt:   it.RevealAt,
			Repeatable: it.Repeatable,
		})
	}
	e := &Economy{store: store, items: items, hintThreshold: cfg.HintThreshold}
	e.checkHints()
	return e
}

// Store returns the underlying progression store.
func (e *Economy) Store() *Store { return e.store }

// Item looks up a catalog entry.
func (e *Economy) Item(id string) (Item, bool) {
	for _, it := range e.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Items returns the catalog in display order.
func (e *Economy) Items() []Item {
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}

// Owned reports whether a one-time item has been bought.
func (e *Economy) Owned(id string) bool {
	rec := e.store.Record()
	switch id {
	case config.ItemViewBalance:
		return rec.ViewBalance
	case config.ItemHighScore:
		return rec.HighScore
	case config.ItemBricko:
		return rec.Bricko
	default:
		return false
	}
}

// Offers reports visibility and affordability of every catalog item.
func (e *Economy) Offers() []Offer {
	balance := e.store.Balance()
	offers := make([]Offer, 0, len(e.items))
	for _, it := range e.items {
		owned := !it.Repeatable && e.Owned(it.ID)
		offers = append(offers, Offer{
			Item:       it,
			Owned:      owned,
			Visible:    !owned && balance >= it.RevealAt,
			Affordable: !owned && balance >= it.Cost,
		})
	}
	return offers
}

// Purchase buys an item. It returns false, changing nothing, when the
// item is unknown, the balance is short, or a one-time item is owned.
// For extra balls, live receives the new ball when non-nil.
func (e *Economy) Purchase(id string, live BallSpawner) bool {
	it, ok := e.Item(id)
	if !ok || e.store.Balance() < it.Cost {
		return false
	}
	if !it.Repeatable && e.Owned(id) {
		return false
	}

	switch id {
	case config.ItemViewBalance:
		e.store.SetViewBalance(true)
	case config.ItemHighScore:
		e.store.SetHighScore(true)
	case config.ItemBricko:
		e.store.SetBricko(true)
	case config.ItemExtraBall:
		e.store.SetBallCount(e.store.BallCount() + 1)
		if live != nil {
			live.AddBall()
		}
	default:
		return false
	}
	e.store.SetBalance(e.store.Balance() - it.Cost)
	return true
}

// Earn adds currency and runs the hint check.
func (e *Economy) Earn(n int) {
	if n <= 0 {
		return
	}
	e.store.SetBalance(e.store.Balance() + n)
	e.checkHints()
}

// BrickDestroyed credits one brick and raises the best score when the
// run score beats it.
func (e *Economy) BrickDestroyed(score int) {
	e.Earn(1)
	if score > e.store.BestScore() {
		e.store.SetBestScore(score)
	}
}

// Tickle pokes Bricko for one currency. It is a no-op until Bricko is owned.
func (e *Economy) Tickle() bool {
	if !e.store.Record().Bricko {
		return false
	}
	e.store.IncrementTickles()
	e.Earn(1)
	return true
}

// checkHints latches the bazaar and peruse hints once the balance
// reaches the threshold. Spending never clears them.
func (e *Economy) checkHints() {
	if e.store.Balance() < e.hintThreshold {
		return
	}
	rec := e.store.Record()
	if !rec.BazaarHint {
		e.store.SetBazaarHint(true)
	}
	if !rec.PeruseHint {
		e.store.SetPeruseHint(true)
	}
}
