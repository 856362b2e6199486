package player

import "github.com/kasuganosora/charsheet/model"

// LevelUp advances c by one level and recomputes its stats in place.
// It panics if c is nil.
func LevelUp(c *model.Character) {
	if c == nil {
		panic("player: LevelUp on nil character")
	}
	c.Level++
	applyStats(c, CalcStats(c.Class, c.Level))
}
