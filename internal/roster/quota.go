package roster

import (
	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
)

// QuotaSpec is a tagged variant: either an explicit month→count map
// declared by the physician, or a cap derived from their target
// level. It is resolved into concrete numbers exactly once, before
// the solver runs, so the solver never branches on soft vs hard caps.
type QuotaSpec struct {
	explicit map[string]int
	basis    int
}

// ExplicitSpec builds a spec from declared per-month targets. It
// replaces the derived cap entirely.
func ExplicitSpec(byMonth map[string]int) QuotaSpec {
	return QuotaSpec{explicit: byMonth}
}

// DerivedSpec builds a spec from a target level. Levels 1-4 are a
// hard monthly cap of that many shifts; level 5 or nil resolves to
// softMax, the configured monthly cap for "as many as possible"
// physicians.
func DerivedSpec(level *int, softMax int) QuotaSpec {
	if level == nil || *level >= entity.TargetLevelSoftMax || *level < entity.TargetLevelMin {
		return QuotaSpec{basis: softMax}
	}
	return QuotaSpec{basis: *level}
}

// IsExplicit reports whether the spec carries declared monthly
// targets.
func (q QuotaSpec) IsExplicit() bool {
	return q.explicit != nil
}

// QuotaSet is the fully resolved cap table for one solver run:
// physician → month → cap, plus the quarter total per physician.
type QuotaSet struct {
	ByUserMonth map[uuid.UUID]map[string]int
	TotalByUser map[uuid.UUID]int
}

// MonthCap returns the cap for one physician and month, zero when
// none is set.
func (q *QuotaSet) MonthCap(physician uuid.UUID, month string) int {
	if byMonth, ok := q.ByUserMonth[physician]; ok {
		return byMonth[month]
	}
	return 0
}

// TotalCap returns the quarter total cap for one physician.
func (q *QuotaSet) TotalCap(physician uuid.UUID) int {
	return q.TotalByUser[physician]
}

// ResolveQuotas turns per-physician specs into concrete monthly caps
// over the given months. For derived specs, a month with zero raw
// availability gets a zero cap: a physician unavailable all month
// cannot be assigned there whatever their declared level. Explicit
// specs are taken as-is per month.
func ResolveQuotas(specs map[uuid.UUID]QuotaSpec, availByUserMonth map[uuid.UUID]map[string]int, months []string) *QuotaSet {
	set := &QuotaSet{
		ByUserMonth: make(map[uuid.UUID]map[string]int, len(specs)),
		TotalByUser: make(map[uuid.UUID]int, len(specs)),
	}

	for physician, spec := range specs {
		byMonth := make(map[string]int, len(months))
		total := 0
		for _, month := range months {
			var monthCap int
			if spec.IsExplicit() {
				monthCap = spec.explicit[month]
			} else if availByUserMonth[physician][month] > 0 {
				monthCap = spec.basis
			}
			if monthCap < 0 {
				monthCap = 0
			}
			byMonth[month] = monthCap
			total += monthCap
		}
		set.ByUserMonth[physician] = byMonth
		set.TotalByUser[physician] = total
	}

	return set
}

// BuildQuotaSpecs derives one spec per physician in the summary. Any
// physician with at least one positive monthly target for the period
// gets an explicit spec; everyone else gets a spec derived from their
// target level.
func BuildQuotaSpecs(summary *Summary, monthlyTargets []entity.MonthlyTarget, softMax int) map[uuid.UUID]QuotaSpec {
	explicit := make(map[uuid.UUID]map[string]int)
	for i := range monthlyTargets {
		t := monthlyTargets[i]
		if t.TargetTotal <= 0 {
			continue
		}
		if explicit[t.PhysicianID] == nil {
			explicit[t.PhysicianID] = make(map[string]int)
		}
		explicit[t.PhysicianID][t.Month] = t.TargetTotal
	}

	specs := make(map[uuid.UUID]QuotaSpec, len(summary.Physicians))
	for physician, stat := range summary.Physicians {
		if byMonth, ok := explicit[physician]; ok {
			specs[physician] = ExplicitSpec(byMonth)
			continue
		}
		specs[physician] = DerivedSpec(stat.TargetLevel, softMax)
	}
	return specs
}
