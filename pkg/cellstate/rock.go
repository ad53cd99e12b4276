package cellstate

// RockType is the 2-bit igneous/sedimentary/metamorphic classification of a
// solid tile, purely cosmetic — it never affects traversability.
type RockType uint8

const (
	Limestone RockType = iota
	Granite
	Basalt
	Marble
)

func (r RockType) String() string {
	switch r {
	case Limestone:
		return "limestone"
	case Granite:
		return "granite"
	case Basalt:
		return "basalt"
	case Marble:
		return "marble"
	default:
		return "unknown rock"
	}
}

// MineralType is the 4-bit secondary mineral tag of a solid tile.
type MineralType uint8

const (
	NoMineral MineralType = iota
	Lignite
	BituminousCoal
	NativeCopper
	NativeSilver
	NativeGold
	NativePlatinum
	Limonite
	Hematite
	Magnetite
	Malachite
	Tetrahedrite
	Garnierite
	Galena
	Sphalerite
	Cassiterite
)

var mineralNames = [...]string{
	"no minerals", "lignite", "bituminous coal", "native copper",
	"native silver", "native gold", "native platinum", "limonite",
	"hematite", "magnetite", "malachite", "tetrahedrite", "garnierite",
	"galena", "sphalerite", "cassiterite",
}

func (m MineralType) String() string {
	if int(m) < len(mineralNames) {
		return mineralNames[m]
	}
	return "unknown mineral"
}
