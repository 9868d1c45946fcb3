package value

import "math"

// Cell voltages are sent in 1/500 V steps in a 12-bit field.
const (
	CellScale   = 500
	cellMaxStep = 0x0fff
)

// MaxCellVolts is the highest voltage a cell field can carry.
const MaxCellVolts = float64(cellMaxStep) / CellScale

// Cell ids and counts are 4-bit fields on the wire. Larger values are
// truncated to the low 4 bits; callers wanting an error must check
// against MaxCellID themselves.
const MaxCellID = 0x0f

func cellStep(volts float64) (uint32, error) {
	scaled := math.Round(volts * CellScale)
	if err := checkRange("cell voltage", volts, 0, MaxCellVolts); err != nil {
		return 0, err
	}
	return uint32(scaled), nil
}

// PackHubCell packs one cell voltage in the D protocol layout and returns
// the 16-bit frame value: the first wire byte holds the cell id in the high
// nibble and the voltage bits 8-11 in the low nibble, the second wire byte
// holds voltage bits 0-7.
func PackHubCell(id uint8, volts float64) (uint16, error) {
	step, err := cellStep(volts)
	if err != nil {
		return 0, err
	}
	b0 := byte(step>>8)&0x0f | (id<<4)&0xf0
	b1 := byte(step)
	return uint16(b0) | uint16(b1)<<8, nil
}

// UnpackHubCell reverses PackHubCell.
func UnpackHubCell(v uint16) (id uint8, volts float64) {
	b0, b1 := byte(v), byte(v>>8)
	return b0 >> 4, float64(uint16(b0&0x0f)<<8|uint16(b1)) / CellScale
}

// PackSportCell packs a single cell for the Smart Port CELLS sensor.
func PackSportCell(id uint8, volts float64) (uint32, error) {
	step, err := cellStep(volts)
	if err != nil {
		return 0, err
	}
	return step<<8 | uint32(id&0x0f), nil
}

// PackSportCells packs two consecutive cells for the Smart Port CELLS
// sensor:
//
//	bits 20-31  volts of cell id+1
//	bits 8-19   volts of cell id
//	bits 4-7    total cell count
//	bits 0-3    cell id
func PackSportCells(id, count uint8, v1, v2 float64) (uint32, error) {
	s1, err := cellStep(v1)
	if err != nil {
		return 0, err
	}
	s2, err := cellStep(v2)
	if err != nil {
		return 0, err
	}
	return s2<<20 | s1<<8 | uint32(count&0x0f)<<4 | uint32(id&0x0f), nil
}

// SportCells is an unpacked Smart Port CELLS value.
type SportCells struct {
	ID    uint8
	Count uint8
	Volts [2]float64
}

// UnpackSportCells reverses PackSportCells (and PackSportCell, in which case
// Count and Volts[1] are zero).
func UnpackSportCells(v uint32) SportCells {
	return SportCells{
		ID:    uint8(v & 0x0f),
		Count: uint8(v>>4) & 0x0f,
		Volts: [2]float64{
			float64((v>>8)&cellMaxStep) / CellScale,
			float64((v>>20)&cellMaxStep) / CellScale,
		},
	}
}
