package physics

// Outcome tags a per-frame collision query result
type Outcome uint8

const (
	NoHit Outcome = iota
	Hit
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	default:
		return "no-hit"
	}
}

// Collision is the result of probing one ball against one target.
// TargetID is meaningful only when Outcome is Hit.
type Collision struct {
	Outcome  Outcome
	TargetID int
}

// IsHit reports whether the probe registered a hit
func (c Collision) IsHit() bool {
	return c.Outcome == Hit
}

// ProbeAll checks a ball against every target in slice order and returns one
// result per hit target
func ProbeAll(b *Ball, targets []*Target) []Collision {
	var hits []Collision
	for id, t := range targets {
		if c := b.Probe(id, t); c.IsHit() {
			hits = append(hits, c)
		}
	}
	return hits
}
