// Package tracing provides best-effort, togglable event emission for the
// search dispatcher, in the spirit of the teacher's
// manager.ProcessNumericFilterOnColumnWithType logging: a log.Printf for the
// routine outcome, color.Red highlighting the degenerate (empty) case, and
// a uuid.UUID correlation id in place of the teacher's per-slab id.
package tracing

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Enabled toggles event emission. Tests and benchmarks that care about
// throughput rather than trace output should set this false; it defaults to
// true the way the teacher's filter path logs unconditionally.
var Enabled = true

// Event is one search/IndexSearch invocation's outcome, identified by a
// fresh correlation id. Every event gets its own id; nothing ties two
// events to one query. EmitRange and EmitCount do not build an Event: they
// log a fresh uuid.New() id directly.
type Event struct {
	ID   uuid.UUID
	Name string
	Op   fmt.Stringer
}

// EmitRange records a call whose result collapsed to a contiguous range.
// An empty range is the degenerate case — the equivalent of the teacher's
// zero-rows-survived branch — and gets the color.Red highlight.
func EmitRange(name string, op fmt.Stringer, start, end uint32) {
	if !Enabled {
		return
	}
	id := uuid.New()
	if start >= end {
		color.Red("[%s] op %s produced an empty range", id, op)
		return
	}
	log.Printf("[%s] %s op %s matched range [%d, %d)", id, name, op, start, end)
}

// EmitCount records a call whose result is a bitmap, logging the number of
// set bits rather than the bitmap itself.
func EmitCount(name string, op fmt.Stringer, count int) {
	if !Enabled {
		return
	}
	id := uuid.New()
	if count == 0 {
		color.Red("[%s] op %s matched no rows", id, op)
		return
	}
	log.Printf("[%s] %s op %s matched %d rows", id, name, op, count)
}
