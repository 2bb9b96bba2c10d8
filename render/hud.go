package render

import (
	"fmt"

	"grasslandslayer/game"
)

// hudLines returns the status lines shown in the top-left corner
func hudLines(s game.Snapshot) []string {
	return []string{
		fmt.Sprintf("Level %d", s.Level),
		fmt.Sprintf("Kills %d/%d", s.Player.Kills, s.Config.KillGoal),
		fmt.Sprintf("Exp %d", s.Player.Exp),
		fmt.Sprintf("Attack %.1fx", s.Player.AttackSpeed),
	}
}

// Overlay is the text and optional button drawn over the playfield for a phase
type Overlay struct {
	Heading string
	Lines   []string
	Button  string

	// Region is the button hit area, nil when there is no button
	Region *game.HitRegion

	// Dim darkens the playfield behind the text
	Dim bool
}

// OverlayFor returns the overlay for the snapshot's phase. ok is false while playing.
func OverlayFor(s game.Snapshot) (o Overlay, ok bool) {
	cfg := s.Config
	switch s.State.Phase {
	case game.PhaseTitle:
		return Overlay{
			Heading: "Grassland Slayer",
			Lines:   []string{"Drag the hero to dodge", "Tap to start"},
			Dim:     true,
		}, true
	case game.PhaseLevelMessage:
		return Overlay{Heading: fmt.Sprintf("Level %d", s.Level)}, true
	case game.PhaseVictory:
		region := cfg.ContinueButton
		return Overlay{
			Heading: fmt.Sprintf("Level %d cleared!", s.Level),
			Lines:   []string{fmt.Sprintf("Kills: %d", s.Player.Kills)},
			Button:  "Continue",
			Region:  &region,
			Dim:     true,
		}, true
	case game.PhaseVictoryWaiting:
		return Overlay{
			Heading: fmt.Sprintf("Level %d cleared!", s.Level),
			Lines: []string{
				fmt.Sprintf("Kills: %d", s.Player.Kills),
				fmt.Sprintf("Next level in %d", s.Countdown()),
			},
			Dim: true,
		}, true
	case game.PhaseDefeat:
		return Overlay{
			Heading: "Defeated",
			Lines: []string{
				fmt.Sprintf("Kills: %d", s.Player.Kills),
				fmt.Sprintf("Restart in %d", s.Countdown()),
			},
			Dim: true,
		}, true
	case game.PhaseDefeatWaiting:
		region := cfg.RestartButton
		return Overlay{
			Heading: "Defeated",
			Lines:   []string{fmt.Sprintf("Kills: %d", s.Player.Kills)},
			Button:  "Tap here to restart",
			Region:  &region,
			Dim:     true,
		}, true
	}
	return Overlay{}, false
}
