package core

import "time"

// Clock is the time source for hold-to-charge measurement
type Clock interface {
	Now() time.Time
}
