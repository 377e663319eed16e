package instance

import (
	"fmt"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
)

// Lock guards against a second bot process polling with the same token.
type Lock struct {
	flock *flock.Flock
}

func NewLock(path string) *Lock {
	return &Lock{flock: flock.New(path)}
}

// Acquire takes the lock without blocking. It reports false if another process holds it.
func (l *Lock) Acquire() (bool, error) {
	locked, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("error locking %s: %w", l.flock.Path(), err)
	}

	if locked {
		log.Debug().Str("path", l.flock.Path()).Msg("acquired instance lock")
	}

	return locked, nil
}

func (l *Lock) Release() {
	err := l.flock.Unlock()
	if err != nil {
		log.Warn().Str("path", l.flock.Path()).Err(err).Msg("could not release instance lock")
		return
	}
	log.Debug().Str("path", l.flock.Path()).Msg("released instance lock")
}
