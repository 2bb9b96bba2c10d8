package game

import (
	"testing"
	"time"
)

func TestTransition(t *testing.T) {
	timing := DefaultTiming()
	at := func(ms int) time.Time { return testStart.Add(time.Duration(ms) * time.Millisecond) }

	tests := []struct {
		name       string
		from       Phase
		trigger    Trigger
		now        time.Time
		wantPhase  Phase
		wantEffect Effect
	}{
		{"title tap starts", PhaseTitle, TriggerActivate, at(0), PhasePlaying, EffectStartGame},
		{"title ignores tick", PhaseTitle, TriggerTick, at(10000), PhaseTitle, EffectNone},
		{"collision defeats", PhasePlaying, TriggerCollision, at(5), PhaseDefeat, EffectNone},
		{"kill goal wins", PhasePlaying, TriggerKillGoal, at(5), PhaseVictory, EffectNone},
		{"playing ignores restart", PhasePlaying, TriggerRestart, at(5), PhasePlaying, EffectNone},
		{"defeat waits", PhaseDefeat, TriggerTick, at(2999), PhaseDefeat, EffectNone},
		{"defeat elapses", PhaseDefeat, TriggerTick, at(3000), PhaseDefeatWaiting, EffectNone},
		{"defeat ignores restart", PhaseDefeat, TriggerRestart, at(100), PhaseDefeat, EffectNone},
		{"restart", PhaseDefeatWaiting, TriggerRestart, at(4000), PhasePlaying, EffectRestart},
		{"defeat waiting ignores tick", PhaseDefeatWaiting, TriggerTick, at(60000), PhaseDefeatWaiting, EffectNone},
		{"victory continue", PhaseVictory, TriggerContinue, at(1), PhaseVictoryWaiting, EffectNone},
		{"victory ignores tick", PhaseVictory, TriggerTick, at(60000), PhaseVictory, EffectNone},
		{"victory waiting holds", PhaseVictoryWaiting, TriggerTick, at(2999), PhaseVictoryWaiting, EffectNone},
		{"victory waiting advances", PhaseVictoryWaiting, TriggerTick, at(3000), PhaseLevelMessage, EffectNextLevel},
		{"level message holds", PhaseLevelMessage, TriggerTick, at(1999), PhaseLevelMessage, EffectNone},
		{"level message ends", PhaseLevelMessage, TriggerTick, at(2000), PhasePlaying, EffectNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := State{Phase: tt.from, Since: testStart}
			next, effect := Transition(from, tt.trigger, tt.now, timing)
			if next.Phase != tt.wantPhase {
				t.Errorf("phase = %v, want %v", next.Phase, tt.wantPhase)
			}
			if effect != tt.wantEffect {
				t.Errorf("effect = %v, want %v", effect, tt.wantEffect)
			}
			if next.Phase != tt.from && !next.Since.Equal(tt.now) {
				t.Errorf("Since = %v, want transition time %v", next.Since, tt.now)
			}
			if next.Phase == tt.from && !next.Since.Equal(testStart) {
				t.Errorf("Since changed to %v without a transition", next.Since)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if got := PhaseVictoryWaiting.String(); got != "victory_waiting" {
		t.Errorf("String() = %q, want victory_waiting", got)
	}
	if got := Phase(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
