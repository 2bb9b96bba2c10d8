package game

import "time"

// Phase is the top-level game mode. Exactly one is active at a time.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseLevelMessage
	PhaseVictory
	PhaseVictoryWaiting
	PhaseDefeat
	PhaseDefeatWaiting
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseLevelMessage:
		return "level_message"
	case PhaseVictory:
		return "victory"
	case PhaseVictoryWaiting:
		return "victory_waiting"
	case PhaseDefeat:
		return "defeat"
	case PhaseDefeatWaiting:
		return "defeat_waiting"
	default:
		return "unknown"
	}
}

// State is the active phase plus the moment it was entered
type State struct {
	Phase Phase
	Since time.Time
}

// Elapsed returns how long the phase has been active
func (s State) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.Since)
}

// Trigger is something that can move the phase machine
type Trigger int

const (
	// TriggerTick is the once-per-frame timer check
	TriggerTick Trigger = iota
	// TriggerActivate is a tap on the title screen
	TriggerActivate
	// TriggerContinue is a tap on the victory continue button
	TriggerContinue
	// TriggerRestart is a tap on the defeat restart button
	TriggerRestart
	// TriggerCollision is an enemy touching the player
	TriggerCollision
	// TriggerKillGoal is the kill count reaching the level goal
	TriggerKillGoal
)

// Effect is the world change a transition asks for
type Effect int

const (
	EffectNone Effect = iota
	// EffectStartGame resets the player for the current level
	EffectStartGame
	// EffectRestart returns to level 1 with a fresh player and no entities
	EffectRestart
	// EffectNextLevel advances the level with a fresh player and no entities
	EffectNextLevel
)

// Timing holds the real-time delays of the automatic transitions
type Timing struct {
	DefeatDelay  time.Duration
	VictoryDelay time.Duration
	LevelMessage time.Duration
}

// DefaultTiming returns the standard overlay delays
func DefaultTiming() Timing {
	return Timing{
		DefeatDelay:  3000 * time.Millisecond,
		VictoryDelay: 3000 * time.Millisecond,
		LevelMessage: 2000 * time.Millisecond,
	}
}

// Transition is the whole phase machine. Triggers that do not apply to the
// current phase leave it unchanged.
func Transition(s State, t Trigger, now time.Time, timing Timing) (State, Effect) {
	enter := func(p Phase) State { return State{Phase: p, Since: now} }

	switch s.Phase {
	case PhaseTitle:
		if t == TriggerActivate {
			return enter(PhasePlaying), EffectStartGame
		}
	case PhasePlaying:
		switch t {
		case TriggerCollision:
			return enter(PhaseDefeat), EffectNone
		case TriggerKillGoal:
			return enter(PhaseVictory), EffectNone
		}
	case PhaseLevelMessage:
		if t == TriggerTick && s.Elapsed(now) >= timing.LevelMessage {
			return enter(PhasePlaying), EffectNone
		}
	case PhaseVictory:
		if t == TriggerContinue {
			return enter(PhaseVictoryWaiting), EffectNone
		}
	case PhaseVictoryWaiting:
		if t == TriggerTick && s.Elapsed(now) >= timing.VictoryDelay {
			return enter(PhaseLevelMessage), EffectNextLevel
		}
	case PhaseDefeat:
		if t == TriggerTick && s.Elapsed(now) >= timing.DefeatDelay {
			return enter(PhaseDefeatWaiting), EffectNone
		}
	case PhaseDefeatWaiting:
		if t == TriggerRestart {
			return enter(PhasePlaying), EffectRestart
		}
	}
	return s, EffectNone
}
