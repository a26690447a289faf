package oamap

type Stats struct {
	Size           int
	Capacity       int
	Tombstones     int
	AvailableSlots int
	LoadFactor     float64
}
