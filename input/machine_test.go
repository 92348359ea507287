package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riemann-tutor/curves"
	"github.com/lixenwraith/riemann-tutor/riemann"
)

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// feed runs a key sequence and returns every non-nil intent.
func feed(m *Machine, evs ...*tcell.EventKey) []*Intent {
	var out []*Intent
	for _, ev := range evs {
		if it := m.Process(ev); it != nil {
			out = append(out, it)
		}
	}
	return out
}

func typed(s string) []*tcell.EventKey {
	evs := make([]*tcell.EventKey, 0, len(s))
	for _, r := range s {
		evs = append(evs, keyRune(r))
	}
	return evs
}

func TestSelectCurveKeys(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		kind curves.Kind
	}{
		{"Linear", '1', curves.KindLinear},
		{"Quadratic", '2', curves.KindQuadratic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			it := m.Process(keyRune(tt.r))
			if it == nil || it.Type != IntentSelectCurve {
				t.Fatalf("got %+v, want IntentSelectCurve", it)
			}
			if it.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", it.Kind, tt.kind)
			}
		})
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{keyRune('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		m := NewMachine()
		it := m.Process(ev)
		if it == nil || it.Type != IntentQuit {
			t.Errorf("event %v: got %+v, want IntentQuit", ev, it)
		}
	}
}

func TestCountPrompt(t *testing.T) {
	m := NewMachine()

	evs := append([]*tcell.EventKey{keyRune('n')}, typed("12")...)
	evs = append(evs, key(tcell.KeyEnter))
	out := feed(m, evs...)

	if len(out) != 1 {
		t.Fatalf("got %d intents, want 1", len(out))
	}
	if out[0].Type != IntentCount || out[0].Count != 12 {
		t.Errorf("got %+v, want count 12", out[0])
	}
	if m.State() != StateIdle {
		t.Errorf("machine state = %v, want idle", m.State())
	}
}

func TestCountPromptBackspace(t *testing.T) {
	m := NewMachine()

	evs := append([]*tcell.EventKey{keyRune('n')}, typed("15")...)
	evs = append(evs, key(tcell.KeyBackspace2), keyRune('7'), key(tcell.KeyEnter))
	out := feed(m, evs...)

	if len(out) != 1 || out[0].Type != IntentCount || out[0].Count != 17 {
		t.Fatalf("got %+v, want count 17", out)
	}
}

func TestCountPromptEmptySubmit(t *testing.T) {
	m := NewMachine()
	out := feed(m, keyRune('n'), key(tcell.KeyEnter))

	if len(out) != 1 || out[0].Type != IntentInvalid {
		t.Fatalf("got %+v, want IntentInvalid", out)
	}
}

func TestCountPromptIgnoresLetters(t *testing.T) {
	m := NewMachine()
	feed(m, keyRune('n'), keyRune('x'), keyRune('4'))

	_, echo, active := m.Prompt()
	if !active || echo != "4" {
		t.Errorf("echo = %q active=%v, want \"4\" true", echo, active)
	}
}

func TestRulePrompt(t *testing.T) {
	tests := []struct {
		r    rune
		rule riemann.Rule
	}{
		{'l', riemann.RuleLeft},
		{'m', riemann.RuleMid},
		{'r', riemann.RuleRight},
		{'n', riemann.RuleNone},
	}

	for _, tt := range tests {
		m := NewMachine()
		out := feed(m, keyRune('r'), keyRune(tt.r))
		if len(out) != 1 || out[0].Type != IntentRule || out[0].Rule != tt.rule {
			t.Errorf("key %q: got %+v, want rule %v", tt.r, out, tt.rule)
		}
	}
}

func TestPointEntry(t *testing.T) {
	m := NewMachine()

	evs := []*tcell.EventKey{keyRune('3')}
	evs = append(evs, typed("1.5")...)
	evs = append(evs, key(tcell.KeyEnter))
	evs = append(evs, typed("-2")...)
	evs = append(evs, key(tcell.KeyEnter))
	out := feed(m, evs...)

	if len(out) != 2 {
		t.Fatalf("got %d intents, want 2", len(out))
	}
	if out[0].Type != IntentBeginPoints {
		t.Errorf("first intent = %+v, want IntentBeginPoints", out[0])
	}
	if out[1].Type != IntentPoint || out[1].X != 1.5 || out[1].Y != -2 {
		t.Errorf("second intent = %+v, want point (1.5, -2)", out[1])
	}

	// Machine stays in entry mode for the next pair.
	if m.State() != StatePointX {
		t.Errorf("state = %v, want StatePointX", m.State())
	}
}

func TestPointEntryDone(t *testing.T) {
	m := NewMachine()
	out := feed(m, keyRune('3'), key(tcell.KeyEnter))

	if len(out) != 2 || out[1].Type != IntentPointsDone {
		t.Fatalf("got %+v, want IntentPointsDone", out)
	}
	if m.State() != StateIdle {
		t.Errorf("state = %v, want idle", m.State())
	}
}

func TestPromptEscape(t *testing.T) {
	m := NewMachine()
	out := feed(m, keyRune('3'), keyRune('5'), key(tcell.KeyEscape))

	if len(out) != 2 || out[1].Type != IntentCancel {
		t.Fatalf("got %+v, want IntentCancel", out)
	}
	if m.State() != StateIdle {
		t.Errorf("state = %v, want idle", m.State())
	}
}

func TestResizeEvent(t *testing.T) {
	m := NewMachine()
	it := m.Process(tcell.NewEventResize(80, 24))
	if it == nil || it.Type != IntentResize {
		t.Fatalf("got %+v, want IntentResize", it)
	}
}

func TestInvalidFloat(t *testing.T) {
	m := NewMachine()

	evs := []*tcell.EventKey{keyRune('3')}
	evs = append(evs, typed("1.2.3")...)
	evs = append(evs, key(tcell.KeyEnter))
	out := feed(m, evs...)

	if len(out) != 2 || out[1].Type != IntentInvalid {
		t.Fatalf("got %+v, want IntentInvalid", out)
	}
	// Buffer cleared, still prompting for x.
	if m.State() != StatePointX {
		t.Errorf("state = %v, want StatePointX", m.State())
	}
}
