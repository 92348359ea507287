// Package input parses terminal key events into semantic intents.
// The Machine owns the prompt flow (subdivision count, endpoint rule,
// point entry) and exposes the pending buffer for the prompt strip;
// domain state stays with the session.
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cast"

	"github.com/lixenwraith/riemann-tutor/curves"
	"github.com/lixenwraith/riemann-tutor/riemann"
)

// State is the machine's prompt state.
type State uint8

const (
	StateIdle State = iota
	StateCount
	StateRule
	StatePointX
	StatePointY
)

// Machine is the input state machine. Process turns tcell events into
// Intents; incomplete input returns nil.
type Machine struct {
	state  State
	buffer []rune

	// X half of the pair being entered, valid in StatePointY.
	pendingX float64
}

// NewMachine creates an idle machine.
func NewMachine() *Machine {
	return &Machine{buffer: make([]rune, 0, 16)}
}

// Reset clears all pending prompt state.
func (m *Machine) Reset() {
	m.state = StateIdle
	m.buffer = m.buffer[:0]
	m.pendingX = 0
}

// State returns the current prompt state.
func (m *Machine) State() State { return m.state }

// Prompt returns the label and echo text for the prompt strip, and
// whether a prompt is active.
func (m *Machine) Prompt() (label, echo string, active bool) {
	switch m.state {
	case StateCount:
		return "subdivisions N = ", string(m.buffer), true
	case StateRule:
		return "rule [l/m/r/n] ", "", true
	case StatePointX:
		return "point x = ", string(m.buffer), true
	case StatePointY:
		return "point y = ", string(m.buffer), true
	default:
		return "", "", false
	}
}

// Process parses one terminal event. Returns nil while input is
// incomplete.
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyCtrlC {
		return &Intent{Type: IntentQuit}
	}

	if m.state == StateIdle {
		return m.processNormal(ev)
	}
	return m.processPrompt(ev)
}

func (m *Machine) processNormal(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return &Intent{Type: IntentQuit}
		case '1':
			return &Intent{Type: IntentSelectCurve, Kind: curves.KindLinear}
		case '2':
			return &Intent{Type: IntentSelectCurve, Kind: curves.KindQuadratic}
		case '3':
			m.state = StatePointX
			m.buffer = m.buffer[:0]
			return &Intent{Type: IntentBeginPoints}
		case 'n':
			m.state = StateCount
			m.buffer = m.buffer[:0]
			return nil
		case 'r':
			m.state = StateRule
			return nil
		case 'c':
			return &Intent{Type: IntentClear}
		}
	}
	return nil
}

func (m *Machine) processPrompt(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.Reset()
		return &Intent{Type: IntentCancel}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(m.buffer); n > 0 {
			m.buffer = m.buffer[:n-1]
		}
		return nil
	case tcell.KeyEnter:
		return m.submit()
	case tcell.KeyRune:
		if m.state == StateRule {
			return m.selectRule(ev.Rune())
		}
		if acceptsRune(m.state, ev.Rune()) {
			m.buffer = append(m.buffer, ev.Rune())
		}
		return nil
	}
	return nil
}

// acceptsRune limits prompt buffers to characters the parser can use.
func acceptsRune(state State, r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if state == StatePointX || state == StatePointY {
		return r == '.' || r == '-'
	}
	return false
}

func (m *Machine) selectRule(r rune) *Intent {
	var rule riemann.Rule
	switch r {
	case 'l':
		rule = riemann.RuleLeft
	case 'm':
		rule = riemann.RuleMid
	case 'r':
		rule = riemann.RuleRight
	case 'n':
		rule = riemann.RuleNone
	default:
		return nil
	}
	m.Reset()
	return &Intent{Type: IntentRule, Rule: rule}
}

func (m *Machine) submit() *Intent {
	text := string(m.buffer)

	switch m.state {
	case StateCount:
		m.Reset()
		n, err := cast.ToIntE(text)
		if err != nil {
			return &Intent{Type: IntentInvalid}
		}
		return &Intent{Type: IntentCount, Count: n}

	case StatePointX:
		if text == "" {
			// Empty x submit ends point entry.
			m.Reset()
			return &Intent{Type: IntentPointsDone}
		}
		x, err := cast.ToFloat64E(text)
		if err != nil {
			m.buffer = m.buffer[:0]
			return &Intent{Type: IntentInvalid}
		}
		m.pendingX = x
		m.state = StatePointY
		m.buffer = m.buffer[:0]
		return nil

	case StatePointY:
		y, err := cast.ToFloat64E(text)
		if err != nil {
			m.buffer = m.buffer[:0]
			return &Intent{Type: IntentInvalid}
		}
		it := &Intent{Type: IntentPoint, X: m.pendingX, Y: y}
		// Stay in entry mode for the next pair.
		m.state = StatePointX
		m.buffer = m.buffer[:0]
		return it
	}

	m.Reset()
	return nil
}
