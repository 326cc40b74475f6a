package letterstring

import (
	"os"

	"github.com/rs/zerolog/log"
)

// exit is a hook so the package's own tests can observe the fatal path.
var exit = func() { os.Exit(1) }

// violation reports a broken length invariant and terminates the process.
// Every accessor and mutator funnels through here when it finds the
// observed length outside the legal range. There is no recovery: once the
// fixed-capacity invariant is broken, any further read or write of the
// storage is unsafe.
func violation(op string, length int) {
	log.Error().
		Str("op", op).
		Int("length", length).
		Int("capacity", MaxLength).
		Msg("letterstring invariant violated")
	exit()
}
