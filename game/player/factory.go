package player

import (
	"errors"

	"github.com/kasuganosora/charsheet/model"
)

// ErrUnknownClass is returned when a class name is not one of the playable classes.
var ErrUnknownClass = errors.New("player: unknown class")

// NewCharacter creates a level-1 character of the given class with starting gold.
// No character is produced when class does not normalize to a known class.
func NewCharacter(name, class string) (*model.Character, error) {
	cls, ok := NormalizeClass(class)
	if !ok {
		return nil, ErrUnknownClass
	}

	char := &model.Character{
		Name:  name,
		Class: cls,
		Level: model.StartingLevel,
		Gold:  model.StartingGold,
	}
	applyStats(char, CalcStats(cls, char.Level))
	return char, nil
}
