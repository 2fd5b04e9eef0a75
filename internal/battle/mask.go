package battle

// NumEnemies is the number of enemy slots in every battle structure.
const NumEnemies = 8

// slotBit isolates the bit of an enemy mask byte belonging to slot. Slot 0 is
// the most significant bit, the opposite of the flags byte.
func slotBit(slot int) byte {
	return 0x80 >> uint(slot)
}

// MaskBit reports whether the bit for slot is set in one of the per-enemy
// mask bytes (enabled, not visible, not loaded, not targetable).
func MaskBit(mask byte, slot int) bool {
	return mask&slotBit(slot) != 0
}

// SetMaskBit returns mask with the bit for slot set or cleared.
func SetMaskBit(mask byte, slot int, on bool) byte {
	if on {
		return mask | slotBit(slot)
	}
	return mask &^ slotBit(slot)
}

// MaskFromBools folds one boolean per slot into a mask byte.
func MaskFromBools(values [NumEnemies]bool) byte {
	var mask byte
	for slot, on := range values {
		mask = SetMaskBit(mask, slot, on)
	}
	return mask
}
