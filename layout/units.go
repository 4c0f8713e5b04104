package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the unit a theme length was written in.
type Unit int

const (
	UnitNone Unit = iota // bare numbers, factors
	UnitMM
	UnitCM
	UnitIN
	UnitPT
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

var unitSuffixes = []struct {
	s string
	u Unit
}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}}

func (u Unit) String() string {
	for _, suf := range unitSuffixes {
		if suf.u == u {
			return suf.s
		}
	}
	return ""
}

// Length keeps a number together with the unit it was written in.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// ToMM converts to millimetres. Bare numbers are taken as millimetres.
func (l Length) ToMM() float64 {
	switch l.Unit {
	case UnitCM:
		return l.Value * 10
	case UnitIN:
		return l.Value * 25.4
	case UnitPT:
		return l.Value * PtToMm
	default:
		return l.Value
	}
}

// ToPT converts to points. Bare numbers are taken as points.
func (l Length) ToPT() float64 {
	if l.Unit == UnitPT || l.Unit == UnitNone {
		return l.Value
	}
	return l.ToMM() * MmToPt
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}

// ParseLength parses a length such as "15mm", "1.5cm", "10pt" or "4".
func ParseLength(value string) (Length, error) {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	unit, num := UnitNone, lower
	for _, suf := range unitSuffixes {
		if strings.HasSuffix(lower, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(lower, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q", value)
	}
	if f < 0 {
		return Length{}, fmt.Errorf("negative length %q", value)
	}
	return Length{Value: f, Unit: unit}, nil
}

// ParseRawLengthStr is ParseLength without the error: unparsable input
// yields the zero Length.
func ParseRawLengthStr(value string) Length {
	l, err := ParseLength(value)
	if err != nil {
		return Length{}
	}
	return l
}

// LineHeightKind distinguishes factor-based from absolute line heights.
type LineHeightKind int

const (
	LineHeightFactor LineHeightKind = iota
	LineHeightAbsolute
)

// LineHeightSpec is either a factor of the font size ("1.2x") or an absolute
// length ("6mm").
type LineHeightSpec struct {
	Kind   LineHeightKind `json:"kind"`
	Factor float64        `json:"factor,omitempty"`
	Len    Length         `json:"len,omitempty"`
}

// ParseLineHeight accepts "1.4x" or any length ParseLength accepts.
func ParseLineHeight(value string) (LineHeightSpec, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if f, ok := strings.CutSuffix(v, "x"); ok {
		factor, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || factor <= 0 {
			return LineHeightSpec{}, fmt.Errorf("invalid line-height factor %q", value)
		}
		return LineHeightSpec{Kind: LineHeightFactor, Factor: factor}, nil
	}
	l, err := ParseLength(v)
	if err != nil {
		return LineHeightSpec{}, err
	}
	return LineHeightSpec{Kind: LineHeightAbsolute, Len: l}, nil
}

// ResolveMM returns the line height in millimetres for a font size in points.
func (s LineHeightSpec) ResolveMM(fontSizePt float64) float64 {
	switch s.Kind {
	case LineHeightAbsolute:
		return s.Len.ToMM()
	default:
		factor := s.Factor
		if factor == 0 {
			factor = 1.4
		}
		return fontSizePt * PtToMm * factor
	}
}
