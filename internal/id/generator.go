package id

import (
	"time"

	fid "github.com/amterp/flexid"
)

var requests = fid.MustNewGenerator(
	fid.NewConfig().
		WithEpoch(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
		WithTickSize(time.Millisecond).
		WithNumRandomChars(6),
)

// Request returns a new short, roughly time-ordered request ID.
func Request() string {
	return requests.MustGenerate()
}
