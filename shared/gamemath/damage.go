package gamemath

// SubtractHealth floors current-amount at zero.
func SubtractHealth(current, amount uint32) uint32 {
	if amount >= current {
		return 0
	}
	return current - amount
}
