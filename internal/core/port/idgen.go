package port

import "time"

//go:generate mockgen -source=idgen.go -destination=mock/idgen.go -package=mock

// IDGenerator supplies identity and time for new records. Now must be
// monotonically non-decreasing within a process so that compensating
// entries replay after the entries they compensate.
type IDGenerator interface {
	NewID() string
	Now() time.Time
}
