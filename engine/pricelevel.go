package engine

import "container/list"

// orderEntry is one resting (id, remaining volume) pair in a priceLevel's
// FIFO queue.
type orderEntry struct {
	id     uint64
	volume Volume
}

// priceLevel is the FIFO of resting orders at a single price on one side,
// plus a cached total equal to the sum of remaining volumes (§3, §4.D).
// Invariant: total == sum of volumes currently in the queue, at all times.
type priceLevel struct {
	price Price
	queue *list.List // of *orderEntry, head = oldest arrival
	total Volume
}

func newPriceLevel(price Price) *priceLevel {
	return &priceLevel{price: price, queue: list.New()}
}

// push appends (id, v) to the tail and folds v into total.
func (l *priceLevel) push(id uint64, v Volume) {
	l.queue.PushBack(&orderEntry{id: id, volume: v})
	l.total = l.total.Add(v)
}

// isEmpty reports whether the level has no resting orders.
func (l *priceLevel) isEmpty() bool {
	return l.queue.Len() == 0
}

// head observes the oldest resting (id, volume) without removing it. ok is
// false if the level is empty.
func (l *priceLevel) head() (id uint64, v Volume, ok bool) {
	front := l.queue.Front()
	if front == nil {
		return 0, Volume{}, false
	}
	e := front.Value.(*orderEntry)
	return e.id, e.volume, true
}

// popHead removes the head entry, if any, adjusting total.
func (l *priceLevel) popHead() {
	front := l.queue.Front()
	if front == nil {
		return
	}
	e := front.Value.(*orderEntry)
	l.queue.Remove(front)
	l.total = l.total.Sub(e.volume)
}

// setHeadVolume replaces the head entry's remaining volume with vNew,
// adjusting total by the delta rather than a pop/push round trip so the
// invariant holds in one step (mirrors original_source/src/lib.rs's
// BookMap::update_key).
func (l *priceLevel) setHeadVolume(vNew Volume) {
	front := l.queue.Front()
	if front == nil {
		return
	}
	e := front.Value.(*orderEntry)
	delta := e.volume.Sub(vNew)
	l.total = l.total.Sub(delta)
	e.volume = vNew
}
