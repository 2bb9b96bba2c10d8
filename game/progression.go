package game

import "time"

// AddExperience credits one kill. It returns true when the kill count reaches
// the level's goal, in which case no level-up check is made.
func (p *Player) AddExperience(cfg Config) (goalReached bool) {
	p.Exp++
	p.Kills++

	if p.Kills >= cfg.KillGoal {
		return true
	}

	if p.Exp > 1 && p.Exp%cfg.ExpPerLevelUp == 0 {
		p.levelUp(cfg)
	}
	return false
}

// levelUp raises attack speed by one step per ExpPerLevelUp experience
func (p *Player) levelUp(cfg Config) {
	level := p.Exp / cfg.ExpPerLevelUp
	p.AttackSpeed = 1 + float64(level)*cfg.AttackSpeedPerLevel
	p.FireInterval = time.Duration(float64(p.BaseInterval) / p.AttackSpeed)
}
