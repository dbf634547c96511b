package viz

// SchedulerEntry pairs a strategy with its stable configuration name.
type SchedulerEntry struct {
	Name     string
	Strategy VisualStrategy
}

// Scheduler owns the ordered active strategy list. The last entry is the
// primary: it receives fresh points every frame, while the rest only age
// and trim their existing populations.
type Scheduler struct {
	entries []SchedulerEntry
}

func NewScheduler(entries ...SchedulerEntry) *Scheduler {
	return &Scheduler{entries: entries}
}

func (sc *Scheduler) Register(name string, s VisualStrategy) {
	sc.entries = append(sc.entries, SchedulerEntry{Name: name, Strategy: s})
}

func (sc *Scheduler) Len() int { return len(sc.entries) }

// Primary returns the current primary strategy, nil when empty.
func (sc *Scheduler) Primary() VisualStrategy {
	if len(sc.entries) == 0 {
		return nil
	}
	return sc.entries[len(sc.entries)-1].Strategy
}

// Strategies returns the active list in order, primary last.
func (sc *Scheduler) Strategies() []VisualStrategy {
	out := make([]VisualStrategy, len(sc.entries))
	for i, e := range sc.entries {
		out[i] = e.Strategy
	}
	return out
}

// Names returns the active names in order.
func (sc *Scheduler) Names() []string {
	out := make([]string, len(sc.entries))
	for i, e := range sc.entries {
		out[i] = e.Name
	}
	return out
}

// Filter keeps only the named strategies, preserving registration order.
// Names that match nothing are ignored; an empty allow-list keeps all.
func (sc *Scheduler) Filter(allow []string) {
	if len(allow) == 0 {
		return
	}
	keep := make(map[string]bool, len(allow))
	for _, n := range allow {
		keep[n] = true
	}
	kept := sc.entries[:0]
	for _, e := range sc.entries {
		if keep[e.Name] {
			kept = append(kept, e)
		}
	}
	sc.entries = kept
}

// Promote moves the named strategy to the end, making it primary. The
// relative order of the others is unchanged; unknown names are a no-op.
func (sc *Scheduler) Promote(name string) {
	for i, e := range sc.entries {
		if e.Name == name {
			sc.Cycle(i)
			return
		}
	}
}

// Cycle moves the entry at index k to the end of the list.
func (sc *Scheduler) Cycle(k int) {
	if k < 0 || k >= len(sc.entries) || k == len(sc.entries)-1 {
		return
	}
	e := sc.entries[k]
	sc.entries = append(sc.entries[:k], sc.entries[k+1:]...)
	sc.entries = append(sc.entries, e)
}

// CycleFirst rotates the whole list by one: the first entry becomes primary.
func (sc *Scheduler) CycleFirst() {
	sc.Cycle(0)
}
