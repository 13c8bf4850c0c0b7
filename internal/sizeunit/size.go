package sizeunit

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Byte multipliers for the units reported by the _cat APIs.
const (
	Byte     int64 = 1
	KiloByte int64 = 1024
	MegaByte int64 = 1024 * 1024
	GigaByte int64 = 1024 * 1024 * 1024
	TeraByte int64 = 1024 * 1024 * 1024 * 1024
)

var sizePattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?) *([a-zA-Z]*)\s*$`)

var units = []struct {
	suffix     string
	multiplier int64
}{
	{"b", Byte},
	{"kb", KiloByte},
	{"mb", MegaByte},
	{"gb", GigaByte},
	{"tb", TeraByte},
}

var maxBytes = decimal.NewFromInt(math.MaxInt64)

// Parse converts a size such as "10gb" or " 94.2 KB " into a byte count.
// The unit is mandatory. Fractional byte counts are rounded to the nearest byte.
func Parse(text string) (int64, error) {
	matches := sizePattern.FindStringSubmatch(text)
	if len(matches) != 3 {
		return 0, &MalformedSizeError{Text: text, Reason: "expected <number><unit>"}
	}
	if matches[2] == "" {
		return 0, &MalformedSizeError{Text: text, Reason: "missing unit"}
	}

	multiplier, ok := multiplierFor(strings.ToLower(matches[2]))
	if !ok {
		return 0, &MalformedSizeError{Text: text, Reason: fmt.Sprintf("unknown unit %q", matches[2])}
	}

	value, err := decimal.NewFromString(matches[1])
	if err != nil {
		return 0, &MalformedSizeError{Text: text, Reason: err.Error()}
	}

	bytes := value.Mul(decimal.NewFromInt(multiplier)).Round(0)
	if bytes.GreaterThan(maxBytes) {
		return 0, &MalformedSizeError{Text: text, Reason: "size overflows int64"}
	}
	return bytes.IntPart(), nil
}

// Format renders bytes with the largest unit that keeps the value at or above 1,
// using two decimals for every unit except raw bytes.
func Format(bytes int64) string {
	i := UnitIndex(bytes)
	if i == 0 {
		return fmt.Sprintf("%db", bytes)
	}
	u := units[i]
	scaled := decimal.NewFromInt(bytes).Div(decimal.NewFromInt(u.multiplier))
	return scaled.StringFixed(2) + u.suffix
}

// UnitIndex is the index (0 for b through 4 for tb) of the unit Format picks.
func UnitIndex(bytes int64) int {
	for i := len(units) - 1; i > 0; i-- {
		if bytes >= units[i].multiplier {
			return i
		}
	}
	return 0
}

func multiplierFor(suffix string) (int64, bool) {
	for _, u := range units {
		if u.suffix == suffix {
			return u.multiplier, true
		}
	}
	return 0, false
}

// MalformedSizeError is returned when a size string cannot be parsed.
type MalformedSizeError struct {
	Text   string
	Reason string
}

func (e *MalformedSizeError) Error() string {
	return fmt.Sprintf("malformed size %q: %s", e.Text, e.Reason)
}

func (e *MalformedSizeError) Is(target error) bool {
	return target == ErrMalformedSize
}

var ErrMalformedSize = errors.New("malformed size")
