package skifree

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-draw timing and counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	drawTime    time.Duration
	entityCount int
}

// debugOutput is where debug lines go. Tests swap it out.
var debugOutput io.Writer = os.Stderr

// debugLog prints draw stats to debugOutput.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput,
		"[skifree] draw: %v | entities: %d | trees: %d | jumps: %d | rocks: %d | flags: %d\n",
		stats.drawTime, stats.entityCount, len(s.Trees), len(s.Jumps), len(s.Rocks), len(s.Flags))
}
