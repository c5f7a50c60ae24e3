package roster

import (
	"sort"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
)

// Assigned is one solver decision: a slot bound to a physician.
type Assigned struct {
	Slot        entity.Slot
	PhysicianID uuid.UUID
	Score       int
}

// Hole is a slot the solver could not fill. CandidateCount is the raw
// (pre-constraint) size of the slot's availability set, so operators
// can tell "nobody was available" apart from "candidates existed but
// were excluded by quota or adjacency rules".
type Hole struct {
	Slot           entity.Slot
	CandidateCount int
}

// Result is the outcome of one solver run. Every input slot appears
// in exactly one of Assignments or Holes.
type Result struct {
	Assignments []Assigned
	Holes       []Hole
}

// Solver is the mutable state of a single run. It is owned by exactly
// one Solve invocation and never shared; all counters live here
// rather than in ambient state.
type Solver struct {
	quotas     *QuotaSet
	availCount map[uuid.UUID]int
	names      map[uuid.UUID]string

	monthCount  map[uuid.UUID]map[string]int
	totalCount  map[uuid.UUID]int
	dayTaken    map[uuid.UUID]map[string]bool
	nightOn     map[uuid.UUID]map[string]bool
	midnightEnd map[uuid.UUID]map[string]bool
	morningOn   map[uuid.UUID]map[string]bool
}

// NewSolver prepares a solver for one run over the given summary and
// resolved quotas.
func NewSolver(summary *Summary, quotas *QuotaSet) *Solver {
	availCount := make(map[uuid.UUID]int, len(summary.Physicians))
	names := make(map[uuid.UUID]string, len(summary.Physicians))
	for id, stat := range summary.Physicians {
		availCount[id] = stat.AvailCount
		names[id] = stat.Name
	}
	return &Solver{
		quotas:      quotas,
		availCount:  availCount,
		names:       names,
		monthCount:  make(map[uuid.UUID]map[string]int),
		totalCount:  make(map[uuid.UUID]int),
		dayTaken:    make(map[uuid.UUID]map[string]bool),
		nightOn:     make(map[uuid.UUID]map[string]bool),
		midnightEnd: make(map[uuid.UUID]map[string]bool),
		morningOn:   make(map[uuid.UUID]map[string]bool),
	}
}

// Solve walks the slots month by month, scarcest bucket first, and
// assigns one physician per slot under the hard constraints. It is a
// single forward pass: a slot marked as a hole is never revisited,
// and months are never reopened. Adversarial availability patterns
// can therefore produce holes an exhaustive matching would avoid;
// that trade-off is the contract, chosen for explainability.
//
// Given identical input the output is byte-identical: months, buckets
// and candidate sets are all iterated in sorted order and ties break
// on stable keys.
func (s *Solver) Solve(summary *Summary) *Result {
	result := &Result{}

	byMonth := make(map[string][]SlotCandidates)
	for _, sc := range summary.Slots {
		m := sc.Slot.MonthKey()
		byMonth[m] = append(byMonth[m], sc)
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	for _, month := range months {
		s.solveMonth(month, byMonth[month], result)
	}

	return result
}

// solveMonth partitions the month's slots into scarcity buckets (one
// candidate, two candidates, three or more) and fills them in that
// order, chronologically within each bucket. Locking in the scarcest
// slots first keeps flexible slots from consuming candidates that a
// one-option slot needs.
func (s *Solver) solveMonth(month string, slots []SlotCandidates, result *Result) {
	buckets := [3][]SlotCandidates{}
	for _, sc := range slots {
		switch n := len(sc.Candidates); {
		case n <= 1:
			buckets[0] = append(buckets[0], sc)
		case n == 2:
			buckets[1] = append(buckets[1], sc)
		default:
			buckets[2] = append(buckets[2], sc)
		}
	}

	for b := range buckets {
		sort.SliceStable(buckets[b], func(i, j int) bool {
			if !buckets[b][i].Slot.StartAt.Equal(buckets[b][j].Slot.StartAt) {
				return buckets[b][i].Slot.StartAt.Before(buckets[b][j].Slot.StartAt)
			}
			return buckets[b][i].Slot.Kind < buckets[b][j].Slot.Kind
		})
		for _, sc := range buckets[b] {
			s.assignSlot(month, sc, result)
		}
	}
}

func (s *Solver) assignSlot(month string, sc SlotCandidates, result *Result) {
	eligible := make([]uuid.UUID, 0, len(sc.Candidates))
	for _, physician := range sc.Candidates {
		if s.isEligible(physician, month, &sc.Slot) {
			eligible = append(eligible, physician)
		}
	}

	if len(eligible) == 0 {
		result.Holes = append(result.Holes, Hole{
			Slot:           sc.Slot,
			CandidateCount: len(sc.Candidates),
		})
		return
	}

	chosen := s.pick(eligible)
	s.commit(chosen, month, &sc.Slot)
	result.Assignments = append(result.Assignments, Assigned{
		Slot:        sc.Slot,
		PhysicianID: chosen,
		Score:       entity.DefaultAssignmentScore,
	})
}

func (s *Solver) isEligible(physician uuid.UUID, month string, slot *entity.Slot) bool {
	if s.monthCount[physician][month] >= s.quotas.MonthCap(physician, month) {
		return false
	}
	if s.totalCount[physician] >= s.quotas.TotalCap(physician) {
		return false
	}
	if s.dayTaken[physician][slot.DateKey()] {
		return false
	}

	// Buckets process slots out of chronological order, so adjacency
	// must be checked in both directions: a night already held on D+1
	// forbids a night on D just as the reverse does.
	prevDay := slot.Date.AddDate(0, 0, -1).Format("2006-01-02")
	nextDay := slot.Date.AddDate(0, 0, 1).Format("2006-01-02")
	if slot.IsNight() && (s.nightOn[physician][prevDay] || s.nightOn[physician][nextDay]) {
		return false
	}
	if slot.Kind == entity.KindSunMorning && s.midnightEnd[physician][prevDay] {
		return false
	}
	if slot.EndsAtMidnight() && s.morningOn[physician][nextDay] {
		return false
	}
	return true
}

// pick selects from the eligible set the physician with the fewest
// assignments so far; nobody gets a second shift while someone
// eligible still has none. Ties break by ascending raw availability
// (rarer physicians have fewer future chances), then name, then id.
func (s *Solver) pick(eligible []uuid.UUID) uuid.UUID {
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if s.totalCount[a] != s.totalCount[b] {
			return s.totalCount[a] < s.totalCount[b]
		}
		if s.availCount[a] != s.availCount[b] {
			return s.availCount[a] < s.availCount[b]
		}
		if s.names[a] != s.names[b] {
			return s.names[a] < s.names[b]
		}
		return a.String() < b.String()
	})
	return eligible[0]
}

func (s *Solver) commit(physician uuid.UUID, month string, slot *entity.Slot) {
	if s.monthCount[physician] == nil {
		s.monthCount[physician] = make(map[string]int)
	}
	s.monthCount[physician][month]++
	s.totalCount[physician]++

	day := slot.DateKey()
	if s.dayTaken[physician] == nil {
		s.dayTaken[physician] = make(map[string]bool)
	}
	s.dayTaken[physician][day] = true

	if slot.IsNight() {
		if s.nightOn[physician] == nil {
			s.nightOn[physician] = make(map[string]bool)
		}
		s.nightOn[physician][day] = true
	}
	if slot.EndsAtMidnight() {
		if s.midnightEnd[physician] == nil {
			s.midnightEnd[physician] = make(map[string]bool)
		}
		s.midnightEnd[physician][day] = true
	}
	if slot.Kind == entity.KindSunMorning {
		if s.morningOn[physician] == nil {
			s.morningOn[physician] = make(map[string]bool)
		}
		s.morningOn[physician][day] = true
	}
}
