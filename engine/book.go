package engine

import "github.com/google/btree"

// btreeDegree matches the teacher pack's own choice for a general-purpose
// ordered map over a moderate number of price levels (VictorVVedtion-perp-dex
// and other_examples/manifests/boopathi-srb-order-matching-engine both
// default to google/btree's stock degree); it isn't tuned for any particular
// book depth.
const btreeDegree = 32

// Less implements btree.Item by delegating to Price.Less. Each Book's tree
// holds only one direction's prices, so this never crosses sides.
func (l *priceLevel) Less(than btree.Item) bool {
	return l.price.Less(than.(*priceLevel).price)
}

// Book is one side (ask or bid) of an OrderBook: a price -> priceLevel
// ordered map plus an O(1) best-price cache (§3, §4.E).
//
// Design choice (documented per the Coherence Hazards note in §4.E): rather
// than keeping a separate binary heap as a best-price index and reconciling
// it against the map lazily, Book keeps a single ordered map (google/btree)
// and caches the current best price directly. Insertion updates the cache
// in O(1) when the new price improves on it; eviction of the best level
// falls back to the map's natural ordering (tree.Min(), which this Book's
// Less already orients toward "best first" regardless of side) in
// O(log P). This is the "simpler implementation" §4.E says is "behaviorally
// equivalent" to the dual heap-plus-map structure.
type Book struct {
	direction Direction
	tree      *btree.BTree
	best      *Price
}

func newBook(direction Direction) *Book {
	return &Book{direction: direction, tree: btree.New(btreeDegree)}
}

// insert adds (id, volume) to the tail of the level at price, creating the
// level and indexing the price if absent (§4.E).
func (b *Book) insert(id uint64, price Price, volume Volume) {
	probe := &priceLevel{price: price}
	existing := b.tree.Get(probe)

	var level *priceLevel
	if existing == nil {
		level = newPriceLevel(price)
		b.tree.ReplaceOrInsert(level)
	} else {
		level = existing.(*priceLevel)
	}
	level.push(id, volume)

	if b.best == nil || price.Less(*b.best) {
		p := price
		b.best = &p
	}
}

// bestPrice returns the side's top price, or ok=false if the book is empty.
func (b *Book) bestPrice() (Price, bool) {
	if b.best == nil {
		return Price{}, false
	}
	return *b.best, true
}

// bestHead returns the head of the best price level, or ok=false if empty.
func (b *Book) bestHead() (id uint64, v Volume, ok bool) {
	if b.best == nil {
		return 0, Volume{}, false
	}
	level := b.tree.Get(&priceLevel{price: *b.best}).(*priceLevel)
	return level.head()
}

// popBestHead removes the head of the best level. If the level becomes
// empty, its price is evicted from the tree and the best-price cache is
// recomputed from what remains.
func (b *Book) popBestHead() {
	if b.best == nil {
		return
	}
	price := *b.best
	level := b.tree.Get(&priceLevel{price: price}).(*priceLevel)
	level.popHead()

	if level.isEmpty() {
		b.tree.Delete(&priceLevel{price: price})
		b.recomputeBest()
	}
}

// decrementBestHead sets the best level's head remaining volume to
// newRemaining. A zero newRemaining is equivalent to popBestHead (§4.E).
func (b *Book) decrementBestHead(newRemaining Volume) {
	if newRemaining.IsZero() {
		b.popBestHead()
		return
	}
	level := b.tree.Get(&priceLevel{price: *b.best}).(*priceLevel)
	level.setHeadVolume(newRemaining)
}

// recomputeBest re-derives the best-price cache from the tree's natural
// ordering, since Less is oriented so tree.Min() is always the side's best
// price regardless of direction.
func (b *Book) recomputeBest() {
	min := b.tree.Min()
	if min == nil {
		b.best = nil
		return
	}
	p := min.(*priceLevel).price
	b.best = &p
}

// isEmpty reports whether the side has no resting orders.
func (b *Book) isEmpty() bool {
	return b.tree.Len() == 0
}

// depth returns up to n price levels starting from the best, each with its
// aggregated remaining volume. Used by the ambient depth-streaming feature
// (stream.go), not by the matching loop.
func (b *Book) depth(n int) []DepthLevel {
	if n <= 0 {
		return nil
	}
	levels := make([]DepthLevel, 0, min(n, b.tree.Len()))
	b.tree.Ascend(func(item btree.Item) bool {
		l := item.(*priceLevel)
		levels = append(levels, DepthLevel{Price: l.price, Total: l.total, Orders: l.queue.Len()})
		return len(levels) < n
	})
	return levels
}
