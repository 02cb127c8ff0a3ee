package astock

import (
	"fmt"
	"slices"
	"sort"
	"time"
)

// WatchlistEntry is a tracked-but-unowned security. Tags is a point-in-time
// snapshot of the classifier output at add-time; it does not auto-sync with
// the catalog.
type WatchlistEntry struct {
	Security
	Tags  []string  `json:"tags"`
	Added time.Time `json:"added"`
}

// PositionEntry is a held security with its cost basis.
type PositionEntry struct {
	Security
	Quantity  Quantity  `json:"quantity"`
	CostPrice Money     `json:"cost_price"`
	TotalCost Money     `json:"total_cost"`
	Tags      []string  `json:"tags"`
	Added     time.Time `json:"added"`
}

// Store owns the watchlist, the positions book, the tag catalog and the trade
// ledger. All operations are synchronous; persistence and locking live in the
// encode layer.
type Store struct {
	watchlist []WatchlistEntry
	positions []PositionEntry
	catalog   *TagCatalog
	trades    *TradeLog
	now       func() time.Time
}

// NewStore returns an empty store backed by the curated seed catalog.
func NewStore() *Store {
	return &Store{
		catalog: NewSeededTagCatalog(),
		trades:  NewTradeLog(),
		now:     time.Now,
	}
}

// Catalog returns the tag catalog.
func (s *Store) Catalog() *TagCatalog { return s.catalog }

// Trades returns the trade ledger.
func (s *Store) Trades() *TradeLog { return s.trades }

// AddWatch adds a security to the watchlist with a fresh tag snapshot.
// Adding a code twice returns ErrDuplicate.
func (s *Store) AddWatch(code, name string) (WatchlistEntry, error) {
	for _, e := range s.watchlist {
		if e.Code == code {
			return WatchlistEntry{}, fmt.Errorf("watchlist code %q: %w", code, ErrDuplicate)
		}
	}
	entry := WatchlistEntry{
		Security: Security{Code: code, Name: name},
		Tags:     s.catalog.Classify(code, name),
		Added:    s.now().Truncate(time.Second),
	}
	s.watchlist = append(s.watchlist, entry)
	return entry, nil
}

// RemoveWatch deletes the watchlist entry for code, or returns ErrNotFound.
func (s *Store) RemoveWatch(code string) error {
	for i, e := range s.watchlist {
		if e.Code == code {
			s.watchlist = append(s.watchlist[:i], s.watchlist[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("watchlist code %q: %w", code, ErrNotFound)
}

// AddPosition records a new holding and appends the matching buy trade to the
// ledger. A code already held returns ErrDuplicate.
func (s *Store) AddPosition(code, name string, quantity Quantity, costPrice Money) (PositionEntry, error) {
	if !quantity.IsPositive() {
		return PositionEntry{}, fmt.Errorf("quantity must be positive, got %s", quantity)
	}
	if costPrice.IsNegative() {
		return PositionEntry{}, fmt.Errorf("cost price must not be negative, got %s", costPrice)
	}
	for _, e := range s.positions {
		if e.Code == code {
			return PositionEntry{}, fmt.Errorf("position code %q: %w", code, ErrDuplicate)
		}
	}
	entry := PositionEntry{
		Security:  Security{Code: code, Name: name},
		Quantity:  quantity,
		CostPrice: costPrice,
		TotalCost: costPrice.Mul(quantity),
		Tags:      s.catalog.Classify(code, name),
		Added:     s.now().Truncate(time.Second),
	}
	if _, err := s.trades.Record(code, name, ActionBuy, quantity, costPrice); err != nil {
		return PositionEntry{}, err
	}
	s.positions = append(s.positions, entry)
	return entry, nil
}

// RemovePosition deletes the position entry for code, or returns ErrNotFound.
func (s *Store) RemovePosition(code string) error {
	for i, e := range s.positions {
		if e.Code == code {
			s.positions = append(s.positions[:i], s.positions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("position code %q: %w", code, ErrNotFound)
}

// Watchlist returns the watchlist entries in insertion order.
func (s *Store) Watchlist() []WatchlistEntry { return s.watchlist }

// Positions returns the position entries in insertion order and the sum of
// their total costs.
func (s *Store) Positions() ([]PositionEntry, Money) {
	var total Money
	for _, e := range s.positions {
		total = total.Add(e.TotalCost)
	}
	return s.positions, total
}

// Buy appends a buy trade without touching the positions book. The name is
// resolved from the matching position, falling back to the code itself.
func (s *Store) Buy(code string, quantity Quantity, price Money) (TradeRecord, error) {
	return s.trades.Record(code, s.resolveName(code), ActionBuy, quantity, price)
}

// Sell appends a sell trade. Recording a sell never decrements the held
// quantity: the ledger is a pure journal.
func (s *Store) Sell(code string, quantity Quantity, price Money) (TradeRecord, error) {
	return s.trades.Record(code, s.resolveName(code), ActionSell, quantity, price)
}

func (s *Store) resolveName(code string) string {
	for _, e := range s.positions {
		if e.Code == code {
			return e.Name
		}
	}
	return code
}

// TagChange describes one entry whose snapshot was overwritten by RefreshTags.
type TagChange struct {
	Code string
	Name string
	Old  []string
	New  []string
}

// RefreshTags recomputes the tag snapshot of every watchlist and position
// entry, overwriting only those whose recomputed set differs by value. It
// returns the number of entries changed and the change log.
func (s *Store) RefreshTags() (int, []TagChange) {
	var changes []TagChange
	for i := range s.watchlist {
		e := &s.watchlist[i]
		fresh := s.catalog.Classify(e.Code, e.Name)
		if !slices.Equal(e.Tags, fresh) {
			changes = append(changes, TagChange{Code: e.Code, Name: e.Name, Old: e.Tags, New: fresh})
			e.Tags = fresh
		}
	}
	for i := range s.positions {
		e := &s.positions[i]
		fresh := s.catalog.Classify(e.Code, e.Name)
		if !slices.Equal(e.Tags, fresh) {
			changes = append(changes, TagChange{Code: e.Code, Name: e.Name, Old: e.Tags, New: fresh})
			e.Tags = fresh
		}
	}
	return len(changes), changes
}

// EntrySource tells which collection a tag match came from.
type EntrySource string

const (
	SourceWatchlist EntrySource = "watchlist"
	SourcePosition  EntrySource = "position"
)

// TagMatch is one entry carrying a given tag. Quantity is set for positions
// only.
type TagMatch struct {
	Code     string
	Name     string
	Source   EntrySource
	Quantity *Quantity
	Tags     []string
}

// ShowTag returns the entries from both collections whose snapshot contains
// tag, watchlist first then positions, each in insertion order.
func (s *Store) ShowTag(tag string) []TagMatch {
	var out []TagMatch
	for _, e := range s.watchlist {
		if slices.Contains(e.Tags, tag) {
			out = append(out, TagMatch{Code: e.Code, Name: e.Name, Source: SourceWatchlist, Tags: e.Tags})
		}
	}
	for _, e := range s.positions {
		if slices.Contains(e.Tags, tag) {
			q := e.Quantity
			out = append(out, TagMatch{Code: e.Code, Name: e.Name, Source: SourcePosition, Quantity: &q, Tags: e.Tags})
		}
	}
	return out
}

// TagGroup is all entries carrying one tag.
type TagGroup struct {
	Tag     string
	Entries []TagMatch
}

// ListTags groups every entry from both collections by tag. Groups are sorted
// lexicographically by tag for deterministic display.
func (s *Store) ListTags() []TagGroup {
	byTag := make(map[string][]TagMatch)
	add := func(m TagMatch, tags []string) {
		seen := make(map[string]bool)
		for _, t := range tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			byTag[t] = append(byTag[t], m)
		}
	}
	for _, e := range s.watchlist {
		add(TagMatch{Code: e.Code, Name: e.Name, Source: SourceWatchlist, Tags: e.Tags}, e.Tags)
	}
	for _, e := range s.positions {
		q := e.Quantity
		add(TagMatch{Code: e.Code, Name: e.Name, Source: SourcePosition, Quantity: &q, Tags: e.Tags}, e.Tags)
	}
	tags := make([]string, 0, len(byTag))
	for t := range byTag {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	groups := make([]TagGroup, 0, len(tags))
	for _, t := range tags {
		groups = append(groups, TagGroup{Tag: t, Entries: byTag[t]})
	}
	return groups
}
