package tem

// TEC topologic elevation model cell
type TEC struct {
	Z, S float64 // elevation, steepest downslope gradient
	Ds   int     // downslope (receiver) cell id; -1 at base level or pits
}
