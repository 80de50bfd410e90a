package game

// Phase selects which update and draw functions run each tick.
type Phase int

const (
	PhaseLoadConfig Phase = iota
	PhaseMenu
	PhaseSpawn
	PhasePlaying
	PhaseMapEdit
)

var phaseNames = [...]string{
	PhaseLoadConfig: "load-config",
	PhaseMenu:       "menu",
	PhaseSpawn:      "spawn",
	PhasePlaying:    "playing",
	PhaseMapEdit:    "map-edit",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

func (g *Game) Phase() Phase { return g.phase }

// setPhase runs the exit hook of the current phase and the enter hook of
// the next one.
func (g *Game) setPhase(next Phase) {
	if next == g.phase {
		return
	}
	prev := g.phase
	switch prev {
	case PhasePlaying:
		g.endSession()
	case PhaseMapEdit:
		g.editor.cursorVisible = false
	}
	g.phase = next
	switch next {
	case PhaseMenu:
		g.menu.focus = 0
	case PhaseMapEdit:
		g.editor.reset()
	}
	g.log.Infow("phase changed", "from", prev, "to", next)
}
