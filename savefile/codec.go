package savefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kasuganosora/charsheet/game/player"
	"github.com/kasuganosora/charsheet/model"
)

// Field labels, in write order.
const (
	LabelName     = "Character Name"
	LabelClass    = "Class"
	LabelLevel    = "Level"
	LabelStrength = "Strength"
	LabelMagic    = "Magic"
	LabelHealth   = "Health"
	LabelGold     = "Gold"
)

const separator = ": "

// fieldCount is the number of labels a complete record carries.
const fieldCount = 7

// Options controls how saved records are decoded.
type Options struct {
	// LegacyIncompleteCheck rejects a record as incomplete only when it has
	// fewer than seven labels AND lacks a name. By default either condition
	// alone rejects it.
	LegacyIncompleteCheck bool
}

// Encode writes c to w as seven "Label: value" lines.
func Encode(w io.Writer, c *model.Character) error {
	if c == nil {
		return ErrNilCharacter
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%s%s\n", LabelName, separator, c.Name)
	fmt.Fprintf(bw, "%s%s%s\n", LabelClass, separator, c.Class)
	fmt.Fprintf(bw, "%s%s%d\n", LabelLevel, separator, c.Level)
	fmt.Fprintf(bw, "%s%s%d\n", LabelStrength, separator, c.Strength)
	fmt.Fprintf(bw, "%s%s%d\n", LabelMagic, separator, c.Magic)
	fmt.Fprintf(bw, "%s%s%d\n", LabelHealth, separator, c.Health)
	fmt.Fprintf(bw, "%s%s%d\n", LabelGold, separator, c.Gold)
	return bw.Flush()
}

// Decode parses a record written by Encode. Label order is irrelevant,
// unknown labels are ignored and the last duplicate wins.
func Decode(r io.Reader, opts Options) (*model.Character, error) {
	data, err := readLabels(r)
	if err != nil {
		return nil, err
	}

	_, hasName := data[LabelName]
	tooFew := len(data) < fieldCount
	if opts.LegacyIncompleteCheck {
		if tooFew && !hasName {
			return nil, ErrIncomplete
		}
	} else if tooFew || !hasName {
		return nil, ErrIncomplete
	}

	d := decoder{data: data}
	name := d.text(LabelName)
	// Unknown classes load as ClassNone.
	class, _ := player.NormalizeClass(d.text(LabelClass))
	c := &model.Character{
		Name:     name,
		Class:    class,
		Level:    d.number(LabelLevel, model.StartingLevel),
		Strength: d.number(LabelStrength, 0),
		Magic:    d.number(LabelMagic, 0),
		Health:   d.number(LabelHealth, 0),
		Gold:     d.number(LabelGold, 0),
	}
	if d.err != nil {
		return nil, d.err
	}
	return c, nil
}

func readLabels(r io.Reader) (map[string]string, error) {
	data := make(map[string]string, fieldCount)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		// Values are kept byte for byte so names round-trip; only the
		// label side is trimmed.
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(strings.TrimLeft(line, " \t"), separator)
		if !ok {
			continue
		}
		data[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("savefile: read: %w", err)
	}
	return data, nil
}

// decoder keeps the first field error and turns later lookups into no-ops.
type decoder struct {
	data map[string]string
	err  error
}

func (d *decoder) text(label string) string {
	if d.err != nil {
		return ""
	}
	v, ok := d.data[label]
	if !ok {
		d.err = &FieldError{Label: label, Err: ErrMissingField}
	}
	return v
}

// number parses an integer field that must be at least floor.
func (d *decoder) number(label string, floor int) int {
	v := d.text(label)
	if d.err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		d.err = &FieldError{Label: label, Value: v, Err: err}
		return 0
	}
	if n < floor {
		d.err = &FieldError{Label: label, Value: v, Err: fmt.Errorf("%w: below %d", ErrOutOfRange, floor)}
		return 0
	}
	return n
}
