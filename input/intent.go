package input

import (
	"github.com/lixenwraith/riemann-tutor/curves"
	"github.com/lixenwraith/riemann-tutor/riemann"
)

// IntentType discriminates semantic actions produced by the Machine.
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // q, Esc in normal mode, Ctrl+C
	IntentResize // terminal resize event

	IntentSelectCurve // 1 linear, 2 quadratic; Kind payload
	IntentBeginPoints // 3, starts custom point entry
	IntentClear       // c, drop the active curve

	IntentCount      // submitted subdivision count; Count payload
	IntentRule       // submitted endpoint rule; Rule payload
	IntentPoint      // one completed (x, y) pair; X, Y payload
	IntentPointsDone // empty x submit while entering points
	IntentCancel     // Esc inside a prompt
	IntentInvalid    // prompt text that failed to parse
)

// Intent is one parsed semantic action. Pure data, no engine
// dependencies; payload fields are meaningful only for the types
// that name them.
type Intent struct {
	Type  IntentType
	Kind  curves.Kind
	Rule  riemann.Rule
	Count int
	X, Y  float64
}
