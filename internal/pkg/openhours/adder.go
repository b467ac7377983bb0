package openhours

// accumulator is one slot-indexed boolean store. touched is set by the first
// statement written to it, even a closed one.
type accumulator struct {
	slots   []bool
	touched bool
}

func newAccumulator(g grid) accumulator {
	return accumulator{slots: g.filled(false)}
}

// slotDelta marks the inclusive slot range [from, to] as open or closed.
type slotDelta struct {
	from int
	to   int
	open bool
}

// overwrite replaces every slot covered by delta and keeps the rest.
func (a *accumulator) overwrite(delta slotDelta) {
	for i := delta.from; i <= delta.to && i < len(a.slots); i++ {
		a.slots[i] = delta.open
	}
	a.touched = true
}

// labelStore holds the descriptions recorded against each slot, in insertion order.
type labelStore [][]string

func newLabelStore(g grid) labelStore {
	return make(labelStore, g.size())
}

func (l labelStore) append(from, to int, description string) {
	if description == "" {
		return
	}
	for i := from; i <= to && i < len(l); i++ {
		l[i] = append(l[i], description)
	}
}

// between returns the distinct labels of slots [from, to) in first-seen order.
func (l labelStore) between(from, to int) []string {
	seen := make(map[string]struct{})
	var labels []string
	for i := from; i < to && i < len(l); i++ {
		for _, label := range l[i] {
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	return labels
}

// addRange applies one open/close statement to target.
func (oh *OpenHours) addRange(target *accumulator, open, close Input, description string) {
	defer oh.invalidate()

	if open.IsEmpty() || close.IsEmpty() {
		oh.closeAll(target, description)
		return
	}

	openAt, ok := oh.resolve(open)
	if !ok {
		oh.closeAll(target, description)
		return
	}
	closeAt, ok := oh.resolve(close)
	if !ok {
		oh.closeAll(target, description)
		return
	}

	openDay, openMinute := oh.resolver.Clock(openAt)
	_, closeMinute := oh.resolver.Clock(closeAt)

	// closing at 0:00 means the end of this day
	if closeMinute == 0 && openMinute != 0 {
		closeMinute = MinutesPerDay
	}
	if openMinute > closeMinute {
		oh.closeAll(target, description)
		return
	}

	delta := slotDelta{
		from: oh.grid.minutesToSlot(openMinute),
		to:   oh.grid.minutesToSlot(closeMinute),
		open: true,
	}
	target.overwrite(delta)
	oh.labels.append(delta.from, delta.to, description)
	oh.trackReference(openDay)
}

// closeAll blows target away to all-closed. The description is still
// recorded on every slot.
func (oh *OpenHours) closeAll(target *accumulator, description string) {
	target.overwrite(slotDelta{from: 0, to: oh.grid.last, open: false})
	oh.labels.append(0, oh.grid.last, description)
}

func (oh *OpenHours) resolve(in Input) (int64, bool) {
	if oh.resolver.IsAbsoluteInstant(in) {
		return in.Epoch, true
	}
	epoch, err := oh.resolver.ResolveToInstant(in.Text)
	if err != nil {
		return 0, false
	}
	return epoch, true
}

func (oh *OpenHours) trackReference(day Date) {
	today := oh.resolver.Today()
	switch {
	case day != today:
		oh.reference = &day
	case oh.trackDate:
		oh.reference = &today
	}
}
