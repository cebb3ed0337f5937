package physics

// ProjectilePool holds launched balls in insertion order. Retired balls keep
// their slot until Compact runs.
type ProjectilePool struct {
	slots []*Ball
}

// NewProjectilePool creates an empty pool with preallocated capacity
func NewProjectilePool(capacity int) *ProjectilePool {
	return &ProjectilePool{slots: make([]*Ball, 0, capacity)}
}

// Add appends a ball
func (p *ProjectilePool) Add(b *Ball) {
	p.slots = append(p.slots, b)
}

// Each calls fn for every live ball in insertion order
func (p *ProjectilePool) Each(fn func(b *Ball)) {
	for _, b := range p.slots {
		if b.Live {
			fn(b)
		}
	}
}

// Len returns the number of occupied slots, live or retired
func (p *ProjectilePool) Len() int {
	return len(p.slots)
}

// LiveCount returns the number of live balls
func (p *ProjectilePool) LiveCount() int {
	n := 0
	for _, b := range p.slots {
		if b.Live {
			n++
		}
	}
	return n
}

// Compact drops retired balls in place, preserving order, and returns the
// number of slots freed
func (p *ProjectilePool) Compact() int {
	kept := p.slots[:0]
	for _, b := range p.slots {
		if b.Live {
			kept = append(kept, b)
		}
	}
	removed := len(p.slots) - len(kept)
	// Release references held by the tail
	for i := len(kept); i < len(p.slots); i++ {
		p.slots[i] = nil
	}
	p.slots = kept
	return removed
}

// Reset empties the pool
func (p *ProjectilePool) Reset() {
	clear(p.slots)
	p.slots = p.slots[:0]
}
