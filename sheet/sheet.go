package sheet

import (
	"fmt"
	"io"
	"os"

	"github.com/kasuganosora/charsheet/model"
)

const header = "=== CHARACTER SHEET ==="

// Render writes a character sheet for c to w.
func Render(w io.Writer, c *model.Character) {
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "Name: %s\n", c.Name)
	fmt.Fprintf(w, "Class: %s\n", c.Class)
	fmt.Fprintf(w, "Level: %d\n", c.Level)
	fmt.Fprintf(w, "Strength: %d\n", c.Strength)
	fmt.Fprintf(w, "Magic: %d\n", c.Magic)
	fmt.Fprintf(w, "Health: %d\n", c.Health)
	fmt.Fprintf(w, "Gold: %d\n", c.Gold)
}

// Print renders c to standard output.
func Print(c *model.Character) {
	Render(os.Stdout, c)
}
