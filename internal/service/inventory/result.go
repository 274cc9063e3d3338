package inventory

// Statistics summarizes one owner's inventory in a single pass. TotalValue
// carries a fixed two-decimal rendering of the summed value.
type Statistics struct {
	TotalItems      int
	TotalValue      string
	LowStockCount   int
	OutOfStockCount int
}
