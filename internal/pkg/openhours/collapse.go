package openhours

// fullDay derives the final slot map from the accumulators.
func (oh *OpenHours) fullDay() []bool {
	final := oh.grid.filled(false)
	copy(final, oh.open.slots)

	if oh.control.touched {
		for i := range final {
			final[i] = final[i] && oh.control.slots[i]
		}
	}

	eliminateSingletons(final)
	return final
}

// eliminateSingletons closes every open run that is exactly one slot long.
func eliminateSingletons(slots []bool) {
	for i := range slots {
		if !slots[i] {
			continue
		}
		before := i > 0 && slots[i-1]
		after := i+1 < len(slots) && slots[i+1]
		if !before && !after {
			slots[i] = false
		}
	}
}
