package session

import (
	"encoding/json"
	"fmt"

	"github.com/jiangshengdev/sweep-line/rational"
)

// ParseRational parses a {"num":"...","den":"..."} wire pair into a
// rational.Rational, returning an error instead of panicking — the decimal
// strings here come from a session document, not a literal this package
// controls.
func ParseRational(wire RationalWire) (rational.Rational, error) {
	num, err := rational.ParseBig(wire.Num)
	if err != nil {
		return rational.Rational{}, fmt.Errorf("session: parsing numerator: %w", err)
	}
	den, err := rational.ParseBig(wire.Den)
	if err != nil {
		return rational.Rational{}, fmt.Errorf("session: parsing denominator: %w", err)
	}
	return rational.New(num, den), nil
}

// RationalWire is the decoded shape of a {"num":"...","den":"..."} wire
// rational, before it is resolved into an exact rational.Rational.
type RationalWire struct {
	Num string `json:"num"`
	Den string `json:"den"`
}

// PointWire is the decoded shape of a rational-coordinate point.
type PointWire struct {
	X RationalWire `json:"x"`
	Y RationalWire `json:"y"`
}

// IntPointWire is the decoded shape of an integer-coordinate point.
type IntPointWire struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// SegmentWire is the decoded shape of one entry in the "segments" array.
type SegmentWire struct {
	Id          uint32       `json:"id"`
	SourceIndex int          `json:"source_index"`
	A           IntPointWire `json:"a"`
	B           IntPointWire `json:"b"`
}

// GroupRecordWire is the decoded shape of one intersection group.
type GroupRecordWire struct {
	Point            PointWire `json:"point"`
	EndpointSegments []uint32  `json:"endpoint_segments"`
	InteriorSegments []uint32  `json:"interior_segments"`
}

// StepWire is the decoded shape of one trace step.
type StepWire struct {
	Kind          string            `json:"kind"`
	SweepX        RationalWire      `json:"sweep_x"`
	Point         *PointWire        `json:"point"`
	Events        []string          `json:"events"`
	Active        []uint32          `json:"active"`
	Intersections []GroupRecordWire `json:"intersections"`
	Notes         []string          `json:"notes"`
}

// TraceWire is the decoded shape of the "trace" object.
type TraceWire struct {
	Schema   string     `json:"schema"`
	Warnings []string   `json:"warnings"`
	Steps    []StepWire `json:"steps"`
}

// DocumentWire is the decoded shape of a complete session document.
type DocumentWire struct {
	Schema string `json:"schema"`
	Fixed  struct {
		Scale string `json:"scale"`
	} `json:"fixed"`
	Segments []SegmentWire `json:"segments"`
	Trace    TraceWire     `json:"trace"`
}

// Parse decodes a session document produced by Write. It only validates
// JSON well-formedness and the decimal-string rationals; it does not
// recompute or verify the sweep itself.
func Parse(data []byte) (DocumentWire, error) {
	var doc DocumentWire
	if err := json.Unmarshal(data, &doc); err != nil {
		return DocumentWire{}, fmt.Errorf("session: decoding document: %w", err)
	}
	return doc, nil
}
