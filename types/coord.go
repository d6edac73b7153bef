package types

import "fmt"

// CoordSys tags the coordinate system of a geometry. It is carried through a
// conversion unchanged.
type CoordSys uint8

const (
	Cartesian CoordSys = iota
	RZ
	Spherical
)

var CoordNameMap = map[string]CoordSys{
	"cartesian":   Cartesian,
	"cart":        Cartesian,
	"xyz":         Cartesian,
	"rz":          RZ,
	"cylindrical": RZ,
	"spherical":   Spherical,
	"rtp":         Spherical,
}

func (cs CoordSys) String() string {
	switch cs {
	case Cartesian:
		return "cartesian"
	case RZ:
		return "cylindrical"
	case Spherical:
		return "spherical"
	}
	return fmt.Sprintf("CoordSys(%d)", uint8(cs))
}

func NewCoordSys(name string) (cs CoordSys, err error) {
	var ok bool
	if cs, ok = CoordNameMap[name]; !ok {
		err = fmt.Errorf("unknown coordinate system: %q", name)
	}
	return
}
