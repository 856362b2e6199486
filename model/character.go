package model

// Class identifies a playable character class.
type Class string

const (
	ClassNone    Class = "" // absent / unrecognized class
	ClassWarrior Class = "Warrior"
	ClassMage    Class = "Mage"
	ClassRogue   Class = "Rogue"
	ClassCleric  Class = "Cleric"
)

const (
	StartingLevel = 1
	StartingGold  = 100
)

// Character is a single player character record.
// Strength, Magic and Health are always derived from (Class, Level); only
// game/player mutates them.
type Character struct {
	Name     string `json:"name"`
	Class    Class  `json:"class"`
	Level    int    `json:"level"`
	Strength int    `json:"strength"`
	Magic    int    `json:"magic"`
	Health   int    `json:"health"`
	Gold     int    `json:"gold"`
}

// String returns the class name, or "None" for ClassNone.
func (c Class) String() string {
	if c == ClassNone {
		return "None"
	}
	return string(c)
}
