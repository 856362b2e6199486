package sheet

import (
	"bytes"
	"testing"

	"github.com/kasuganosora/charsheet/model"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &model.Character{
		Name: "Aria", Class: model.ClassMage, Level: 1,
		Strength: 5, Magic: 15, Health: 80, Gold: 100,
	})
	assert.Equal(t, "=== CHARACTER SHEET ===\n"+
		"Name: Aria\n"+
		"Class: Mage\n"+
		"Level: 1\n"+
		"Strength: 5\n"+
		"Magic: 15\n"+
		"Health: 80\n"+
		"Gold: 100\n", buf.String())
}

func TestRender_NoClass(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &model.Character{Name: "Nobody", Level: 1})
	assert.Contains(t, buf.String(), "Class: None\n")
}

func TestRender_NilPanics(t *testing.T) {
	var buf bytes.Buffer
	assert.Panics(t, func() { Render(&buf, nil) })
}
