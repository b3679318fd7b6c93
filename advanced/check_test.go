package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInjectivity_CleanSet(t *testing.T) {
	tr := zeroTranslation()
	set := NewPointSet([]Point{{0, 0}, {0, 1}, {1, 0}})
	pairs := CheckInjectivity(mustPythagorean(4, 1), tr, set)
	assert.Empty(t, pairs)
}

func TestCheckInjectivity_SinglePoint(t *testing.T) {
	tr := zeroTranslation()
	pairs := CheckInjectivity(mustPythagorean(3, 2), tr, NewPointSet([]Point{{0, 0}}))
	assert.Empty(t, pairs)
}

func TestCheckInjectivity_CollidingPair(t *testing.T) {
	tr := zeroTranslation()
	set := NewPointSet([]Point{{3, 2}, {4, 2}})
	pairs := CheckInjectivity(mustPythagorean(4, 1), tr, set)
	// Both endpoints report the collision, each from its own side.
	assert.Equal(t, []PointPair{
		{A: Point{3, 2}, B: Point{4, 2}},
		{A: Point{4, 2}, B: Point{3, 2}},
	}, pairs)
}

func TestCheckInjectivity_StaircaseFixture(t *testing.T) {
	tr := zeroTranslation()
	set := LoadFixture("staircase")
	pairs := CheckInjectivity(mustPythagorean(4, 1), tr, set)
	assert.Equal(t, []PointPair{
		{A: Point{1, 0}, B: Point{1, 1}},
		{A: Point{1, 1}, B: Point{1, 0}},
	}, pairs)
}

func TestCheckInjectivity_CornerFixture(t *testing.T) {
	tr := zeroTranslation()
	set := LoadFixture("corner")
	pairs := CheckInjectivity(mustPythagorean(4, 1), tr, set)
	assert.Empty(t, pairs)
}

func TestCheckInjectivityRange_SinglePoint(t *testing.T) {
	tr := zeroTranslation()
	result := CheckInjectivityRange(mustPythagorean(2, 1), tr, NewPointSet([]Point{{3, 1}}))

	assert.Equal(t, RangeBounded, result.Status)
	assert.Nil(t, result.Upper)
	require.Len(t, result.Hinges, 1)
	// The only hinge of (3,1) between the base angle and π/4 is the
	// crossing of x = 3/2.
	assert.Equal(t, HingeAngle{P1: 3, P2: 1, K: 1, S: 0}, *result.Hinges[0])
}

func TestCheckInjectivityRange_SecondQuadrantPoint(t *testing.T) {
	tr := zeroTranslation()
	result := CheckInjectivityRange(mustPythagorean(2, 1), tr, NewPointSet([]Point{{-3, 2}}))

	assert.Equal(t, RangeBounded, result.Status)
	assert.Nil(t, result.Upper)
	require.Len(t, result.Hinges, 1)
	// The digitization of (-3,2) jumps at the y = -1/2 crossing, about
	// 41.7°, which sits strictly inside the bracket and must be certified.
	assert.Equal(t, HingeAngle{P1: -3, P2: 2, K: -1, S: 1}, *result.Hinges[0])
}

func TestCheckInjectivityRange_TightensUpperBound(t *testing.T) {
	tr := zeroTranslation()
	set := NewPointSet([]Point{{3, 1}, {4, 1}})
	result := CheckInjectivityRange(mustPythagorean(2, 1), tr, set)

	assert.Equal(t, RangeBounded, result.Status)
	// The first hinge of (3,1) glues it to (4,1), so it becomes the upper
	// bound instead of a boundary angle.
	require.NotNil(t, result.Upper)
	assert.Equal(t, HingeAngle{P1: 3, P2: 1, K: 1, S: 0}, *result.Upper)
	require.Len(t, result.Hinges, 1)
	assert.Equal(t, HingeAngle{P1: 4, P2: 1, K: 2, S: 0}, *result.Hinges[0])

	// Every surviving hinge is strictly below the tightened bound.
	for _, h := range result.Hinges {
		assert.True(t, exceedsStrictly(result.Upper, h, tr))
	}
}

func TestCheckInjectivityRange_ImmediatelyNonInjective(t *testing.T) {
	tr := zeroTranslation()
	set := NewPointSet([]Point{{3, 2}, {4, 2}})
	result := CheckInjectivityRange(mustPythagorean(4, 1), tr, set)

	assert.Equal(t, RangeNonInjective, result.Status)
	require.NotNil(t, result.Witness)
	assert.Equal(t, PointPair{A: Point{3, 2}, B: Point{4, 2}}, *result.Witness)
	assert.Empty(t, result.Hinges)
}

func TestCheckInjectivityRange_NoBoundary(t *testing.T) {
	tr := zeroTranslation()
	result := CheckInjectivityRange(mustPythagorean(2, 1), tr, NewPointSet([]Point{{0, 0}}))
	assert.Equal(t, RangeOpen, result.Status)
	assert.Empty(t, result.Hinges)
	assert.Nil(t, result.Upper)
}

func TestCheckInjectivityRange_HingesSortedAndBracketed(t *testing.T) {
	tr := zeroTranslation()
	set := LoadFixture("staircase")
	result := CheckInjectivityRange(mustPythagorean(3, 2), tr, set)

	if result.Status == RangeNonInjective {
		t.Fatalf("staircase should be injective at the base angle")
	}
	quarterPi := angleQuarterPi()
	var prev *HingeAngle
	for _, h := range result.Hinges {
		assert.True(t, exceedsStrictly(quarterPi, h, tr))
		assert.True(t, exceedsStrictly(h, angleZero(), tr))
		if result.Upper != nil {
			assert.True(t, exceedsStrictly(result.Upper, h, tr))
		}
		if prev != nil {
			assert.True(t, CompareQuad(prev.CosExpr(tr), h.CosExpr(tr)) >= 0)
		}
		prev = h
	}
}

func TestDrawRemainders(t *testing.T) {
	tr := zeroTranslation()
	DrawRemainders(mustPythagorean(4, 1), tr, LoadFixture("staircase"), 200)
}
