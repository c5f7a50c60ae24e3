package roster

import (
	"testing"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDerivedSpec_LevelMapping(t *testing.T) {
	months := []string{"2026-01"}

	tests := []struct {
		name    string
		level   *int
		softMax int
		want    int
	}{
		{"level 1 is a hard cap of 1", levelPtr(1), 2, 1},
		{"level 3 is a hard cap of 3", levelPtr(3), 2, 3},
		{"level 4 is a hard cap of 4", levelPtr(4), 2, 4},
		{"level 5 resolves to the soft max", levelPtr(5), 2, 2},
		{"nil level resolves to the soft max", nil, 2, 2},
		{"out of range level resolves to the soft max", levelPtr(0), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			physician := uuid.New()
			specs := map[uuid.UUID]QuotaSpec{physician: DerivedSpec(tt.level, tt.softMax)}
			avail := map[uuid.UUID]map[string]int{physician: {"2026-01": 4}}

			set := ResolveQuotas(specs, avail, months)
			require.Equal(t, tt.want, set.MonthCap(physician, "2026-01"))
			require.Equal(t, tt.want, set.TotalCap(physician))
		})
	}
}

func TestResolveQuotas_ZeroAvailabilityMonthIsZeroed(t *testing.T) {
	physician := uuid.New()
	months := []string{"2026-01", "2026-02", "2026-03"}

	specs := map[uuid.UUID]QuotaSpec{physician: DerivedSpec(levelPtr(3), 1)}
	avail := map[uuid.UUID]map[string]int{physician: {"2026-01": 2, "2026-03": 5}}

	set := ResolveQuotas(specs, avail, months)

	require.Equal(t, 3, set.MonthCap(physician, "2026-01"))
	require.Equal(t, 0, set.MonthCap(physician, "2026-02"))
	require.Equal(t, 3, set.MonthCap(physician, "2026-03"))
	require.Equal(t, 6, set.TotalCap(physician))
}

func TestResolveQuotas_ExplicitOverridesIgnoreAvailability(t *testing.T) {
	physician := uuid.New()
	months := []string{"2026-01", "2026-02"}

	specs := map[uuid.UUID]QuotaSpec{
		physician: ExplicitSpec(map[string]int{"2026-01": 4}),
	}
	// No availability at all: explicit targets are taken as-is.
	set := ResolveQuotas(specs, nil, months)

	require.Equal(t, 4, set.MonthCap(physician, "2026-01"))
	require.Equal(t, 0, set.MonthCap(physician, "2026-02"))
	require.Equal(t, 4, set.TotalCap(physician))
}

func TestResolveQuotas_SoftMaxTotalSumsOverMonths(t *testing.T) {
	physician := uuid.New()
	months := []string{"2026-01", "2026-02", "2026-03"}

	specs := map[uuid.UUID]QuotaSpec{physician: DerivedSpec(levelPtr(5), 1)}
	avail := map[uuid.UUID]map[string]int{
		physician: {"2026-01": 3, "2026-02": 3, "2026-03": 3},
	}

	set := ResolveQuotas(specs, avail, months)

	// A level-5 physician across a three month quarter gets total
	// soft cap 3, not unlimited.
	require.Equal(t, 3, set.TotalCap(physician))
}

func TestBuildQuotaSpecs_PositiveMonthlyTargetReplacesLevel(t *testing.T) {
	withTargets := uuid.New()
	levelOnly := uuid.New()

	summary := &Summary{
		Physicians: map[uuid.UUID]PhysicianStat{
			withTargets: {Name: "Alice", TargetLevel: levelPtr(2)},
			levelOnly:   {Name: "Bob", TargetLevel: levelPtr(2)},
		},
	}
	targets := []entity.MonthlyTarget{
		{PhysicianID: withTargets, Month: "2026-01", TargetTotal: 4},
		{PhysicianID: withTargets, Month: "2026-02", TargetTotal: 0},
	}

	specs := BuildQuotaSpecs(summary, targets, 1)

	require.True(t, specs[withTargets].IsExplicit())
	require.False(t, specs[levelOnly].IsExplicit())

	set := ResolveQuotas(specs, map[uuid.UUID]map[string]int{
		withTargets: {"2026-01": 9, "2026-02": 9},
		levelOnly:   {"2026-01": 9, "2026-02": 9},
	}, []string{"2026-01", "2026-02"})

	// Explicit replacement is total, not merged: the declared level
	// no longer contributes anything, including in months without a
	// positive target.
	require.Equal(t, 4, set.MonthCap(withTargets, "2026-01"))
	require.Equal(t, 0, set.MonthCap(withTargets, "2026-02"))
	require.Equal(t, 2, set.MonthCap(levelOnly, "2026-01"))
	require.Equal(t, 2, set.MonthCap(levelOnly, "2026-02"))
}

func TestBuildQuotaSpecs_AllZeroTargetsFallBackToLevel(t *testing.T) {
	physician := uuid.New()
	summary := &Summary{
		Physicians: map[uuid.UUID]PhysicianStat{
			physician: {Name: "Alice", TargetLevel: levelPtr(3)},
		},
	}
	targets := []entity.MonthlyTarget{
		{PhysicianID: physician, Month: "2026-01", TargetTotal: 0},
	}

	specs := BuildQuotaSpecs(summary, targets, 1)
	require.False(t, specs[physician].IsExplicit())
}
