package sway

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawDebugOverlay prints tick rate and scheduler counts in the top-left
// corner of the screen.
func (s *Scene) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, s.debugSummary())
}

func (s *Scene) debugSummary() string {
	return fmt.Sprintf("TPS: %.1f\nactivities: %d\nanimating: %t",
		ebiten.ActualTPS(), s.scheduler.Len(), s.scheduler.Animating())
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sway debug: %s on disposed node %q", op, n.Name))
	}
}
