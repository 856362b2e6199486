package player

import (
	"strings"

	"github.com/kasuganosora/charsheet/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stats is the derived (strength, magic, health) triple of a character.
type Stats struct {
	Strength int
	Magic    int
	Health   int
}

// classGrowth holds the level-1 stats of a class and the amount gained per level.
type classGrowth struct {
	base   Stats
	growth Stats
}

var classTable = map[model.Class]classGrowth{
	model.ClassWarrior: {base: Stats{14, 3, 120}, growth: Stats{4, 1, 12}},
	model.ClassMage:    {base: Stats{5, 15, 80}, growth: Stats{2, 4, 8}},
	model.ClassRogue:   {base: Stats{10, 8, 70}, growth: Stats{3, 2, 6}},
	model.ClassCleric:  {base: Stats{8, 14, 110}, growth: Stats{2, 4, 10}},
}

// classOrder is the display order of the fixed class set.
var classOrder = []model.Class{
	model.ClassWarrior,
	model.ClassMage,
	model.ClassRogue,
	model.ClassCleric,
}

// Classes returns the playable classes.
func Classes() []model.Class {
	out := make([]model.Class, len(classOrder))
	copy(out, classOrder)
	return out
}

// NormalizeClass trims and title-cases s and reports whether the result is a
// known class. Unknown or empty input yields (ClassNone, false).
func NormalizeClass(s string) (model.Class, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.ClassNone, false
	}
	// cases.Caser is stateful; build one per call.
	cls := model.Class(cases.Title(language.Und).String(s))
	if _, ok := classTable[cls]; !ok {
		return model.ClassNone, false
	}
	return cls, true
}

// CalcStats computes the stats of class at level.
// Levels below 1 are treated as level 1. An unrecognized class yields zero
// stats rather than an error.
func CalcStats(class model.Class, level int) Stats {
	cls, ok := NormalizeClass(string(class))
	if !ok {
		return Stats{}
	}
	g := classTable[cls]

	if level < 1 {
		level = 1
	}
	n := level - 1
	return Stats{
		Strength: g.base.Strength + g.growth.Strength*n,
		Magic:    g.base.Magic + g.growth.Magic*n,
		Health:   g.base.Health + g.growth.Health*n,
	}
}

// applyStats writes s into c.
func applyStats(c *model.Character, s Stats) {
	c.Strength = s.Strength
	c.Magic = s.Magic
	c.Health = s.Health
}
