package xrpointer

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame dispatch metrics.
// Only populated when InputModule.debug is true.
type frameStats struct {
	frameTime  time.Duration
	pointers   int
	contexts   int
	created    int
	dispatched int
}

// debugLog prints dispatch stats to stderr.
func (m *InputModule) debugLog() {
	if !m.debug {
		return
	}
	s := m.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[xrpointer] frame: %v | pointers: %d | contexts: %d (+%d) | events: %d\n",
		s.frameTime, s.pointers, s.contexts, s.created, s.dispatched)
	debugCheckContextCount(s.contexts, m.registry.Len())
}

func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[xrpointer] "+format+"\n", args...)
}

// debugCheckContextCount warns on stderr when cached contexts outnumber the
// id blocks of live pointers, which means EvictStale is never called.
func debugCheckContextCount(contexts, pointers int) {
	if contexts > pointers*MaxButtons {
		debugf("warning: %d contexts cached for %d pointers; call EvictStale after removing pointers",
			contexts, pointers)
	}
}

// debugCheckHoverDepth warns on stderr if a hover chain is deeper than the
// threshold.
const debugMaxHoverDepth = 32

func debugCheckHoverDepth(data *EventData) {
	if len(data.Hovered) > debugMaxHoverDepth {
		debugf("warning: pointer %d hovers %d objects (threshold %d)",
			data.PointerID, len(data.Hovered), debugMaxHoverDepth)
	}
}
