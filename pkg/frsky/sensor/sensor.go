// Package sensor is the static catalog of D and Smart Port logical sensor
// ids and the value encoding rule of each.
package sensor

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/robotalks/frsky.go/pkg/frsky/value"
)

// Protocol identifies the telemetry protocol a catalog belongs to.
type Protocol int

// Protocols.
const (
	ProtocolHub Protocol = iota
	ProtocolSport
)

// String implements fmt.Stringer.
func (p Protocol) String() string {
	switch p {
	case ProtocolHub:
		return "d"
	case ProtocolSport:
		return "sport"
	}
	return "unknown"
}

// Kind is the value encoding rule of a sensor.
type Kind int

// Kinds.
const (
	// SignedScaled is a signed integer holding physical * Scale.
	SignedScaled Kind = iota
	// UnsignedScaled is an unsigned integer holding physical * Scale.
	UnsignedScaled
	// BeforeAfter splits the value over two ids, see value.SplitFixedPoint.
	BeforeAfter
	// CellVoltage packs cell id and 1/500 V steps.
	CellVoltage
	// BytePair carries two independent bytes (e.g. day and month).
	BytePair
	// GPSCoord is a Smart Port latitude/longitude.
	GPSCoord
	// GPSDateTime is a Smart Port GMT date or time.
	GPSDateTime
	// FASVoltage is the D FAS before/after voltage pair.
	FASVoltage
)

var kindNames = [...]string{
	SignedScaled:   "signed-scaled",
	UnsignedScaled: "unsigned-scaled",
	BeforeAfter:    "before-after",
	CellVoltage:    "cell-voltage",
	BytePair:       "byte-pair",
	GPSCoord:       "gps-coord",
	GPSDateTime:    "gps-datetime",
	FASVoltage:     "fas-voltage",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Part tells which half of a two-id quantity a descriptor carries.
type Part int

// Parts.
const (
	Whole Part = iota
	Before
	After
)

// Descriptor is the encoding rule of one logical sensor id.
type Descriptor struct {
	ID       uint16
	Name     string
	Protocol Protocol
	Kind     Kind
	Width    int
	Signed   bool
	// Scale is the wire/physical ratio. For BeforeAfter it scales the
	// after-decimal part.
	Scale float64
	Part  Part
	// Pair is the id of the other half of a two-id quantity.
	Pair uint16
	Unit string
}

// ErrNotScalar is returned when a scalar conversion is requested for a
// sensor with a packed encoding.
var ErrNotScalar = errors.New("sensor value is not a scaled scalar")

// IsScalar indicates the value is a single scaled integer.
func (d *Descriptor) IsScalar() bool {
	return d.Kind == SignedScaled || d.Kind == UnsignedScaled
}

func (d *Descriptor) limits() (min, max float64) {
	if d.Signed {
		return -math.Ldexp(1, d.Width-1), math.Ldexp(1, d.Width-1) - 1
	}
	return 0, math.Ldexp(1, d.Width) - 1
}

// Quantize converts a physical value into the raw wire integer. Unsigned
// 32-bit values are returned as their int32 bit pattern.
func (d *Descriptor) Quantize(v float64) (int32, error) {
	if !d.IsScalar() {
		return 0, ErrNotScalar
	}
	raw := math.Round(v * d.Scale)
	min, max := d.limits()
	if raw < min || raw > max || raw != raw {
		return 0, &value.RangeError{What: d.Name, Value: v, Min: min / d.Scale, Max: max / d.Scale}
	}
	if d.Signed {
		return int32(raw), nil
	}
	return int32(uint32(raw)), nil
}

// Physical converts a raw wire integer back into the physical value.
func (d *Descriptor) Physical(raw int32) (float64, error) {
	if !d.IsScalar() {
		return 0, ErrNotScalar
	}
	var v float64
	switch {
	case d.Width == 8 && d.Signed:
		v = float64(int8(raw))
	case d.Width == 8:
		v = float64(uint8(raw))
	case d.Width == 16 && d.Signed:
		v = float64(int16(raw))
	case d.Width == 16:
		v = float64(uint16(raw))
	case d.Signed:
		v = float64(raw)
	default:
		v = float64(uint32(raw))
	}
	return v / d.Scale, nil
}

// Catalog is an immutable lookup table of descriptors.
type Catalog struct {
	protocol Protocol
	list     []Descriptor
	byID     map[uint16]*Descriptor
	byName   map[string]*Descriptor
}

func newCatalog(p Protocol, descs []Descriptor) *Catalog {
	c := &Catalog{
		protocol: p,
		list:     descs,
		byID:     make(map[uint16]*Descriptor, len(descs)),
		byName:   make(map[string]*Descriptor, len(descs)),
	}
	sort.Slice(c.list, func(i, j int) bool { return c.list[i].ID < c.list[j].ID })
	for n := range c.list {
		d := &c.list[n]
		d.Protocol = p
		if _, exist := c.byID[d.ID]; exist {
			panic("duplicated sensor id " + d.Name)
		}
		c.byID[d.ID] = d
		c.byName[d.Name] = d
	}
	return c
}

// Protocol returns the protocol of the catalog.
func (c *Catalog) Protocol() Protocol {
	return c.protocol
}

// Lookup finds a descriptor by logical id.
func (c *Catalog) Lookup(id uint16) (*Descriptor, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// ByName finds a descriptor by name, case-insensitive.
func (c *Catalog) ByName(name string) (*Descriptor, bool) {
	d, ok := c.byName[strings.ToUpper(name)]
	return d, ok
}

// All returns a copy of all descriptors ordered by id.
func (c *Catalog) All() []Descriptor {
	return append([]Descriptor(nil), c.list...)
}

// ForProtocol returns the catalog of a protocol.
func ForProtocol(p Protocol) *Catalog {
	if p == ProtocolSport {
		return Sport
	}
	return Hub
}
