package kinematics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/motionworks/paintarm/spatialmath"
)

const (
	linearTol  = 1e-6
	angularTol = 1e-8
)

// restrictedRandomPositions produces an in-limits configuration restricted to a
// fraction of each joint's range, centered on the range midpoint.
func restrictedRandomPositions(m *Model, rSeed *rand.Rand, fraction float64) []float64 {
	limits := m.DoF()
	positions := make([]float64, len(limits))
	for i, limit := range limits {
		mid := (limit.Min + limit.Max) / 2
		span := (limit.Max - limit.Min) * fraction
		positions[i] = mid + span*(rSeed.Float64()-0.5)
	}
	return positions
}

func TestSolveRoundTrip(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)
	rSeed := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		goal := restrictedRandomPositions(m, rSeed, 0.6)
		seed := restrictedRandomPositions(m, rSeed, 0.6)

		target, err := m.EndEffector(goal)
		test.That(t, err, test.ShouldBeNil)

		solution, err := m.Solve(target, seed)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, m.ValidatePositions(solution), test.ShouldBeNil)

		result, err := m.EndEffector(solution)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, spatialmath.PoseAlmostEqual(result, target, linearTol, angularTol), test.ShouldBeTrue)
	}
}

func TestSolveScenarioA(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)

	goal := []float64{-math.Pi / 6, math.Pi / 5, -math.Pi / 4, 1.25, -1.56, 7.25}
	target, err := m.EndEffector(goal)
	test.That(t, err, test.ShouldBeNil)

	solution, err := m.Solve(target, []float64{0, 0, 0, 0, 0, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.ValidatePositions(solution), test.ShouldBeNil)

	result, err := m.EndEffector(solution)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(result, target, linearTol, angularTol), test.ShouldBeTrue)

	// joint 6 comes back as the in-limits 2pi-equivalent nearest the zero seed
	test.That(t, solution[5], test.ShouldAlmostEqual, 7.25-2*math.Pi, 1e-9)
}

func TestSolveUnreachable(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)

	// farther than the two link lengths can reach from any base branch
	target := spatialmath.NewTransformFromPoint(r3.Vector{X: 2000, Y: 0, Z: 2000})
	_, err = m.Solve(target, []float64{0, 0, 0, 0, 0, 0})
	test.That(t, errors.Is(err, ErrUnreachable), test.ShouldBeTrue)
}

func TestSolveNoSolution(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)

	// wrist center 2mm from the shoulder: inside the inner envelope for the
	// forward branch, and only reachable with the base turned fully around,
	// beyond the joint 1 limit
	target := spatialmath.NewTransformFromEuler(
		r3.Vector{Y: math.Pi / 2}, r3.Vector{X: 130, Y: 0, Z: 332})
	_, err = m.Solve(target, []float64{0, 0, 0, 0, 0, 0})
	test.That(t, errors.Is(err, ErrNoSolution), test.ShouldBeTrue)
}

func TestSolveWristSingularity(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)

	// joint 5 at exactly zero couples joints 4 and 6; the solver holds joint 4
	// at its seed value instead of failing
	goal := []float64{0.3, 0.4, -0.2, 0.7, 0, 0.5}
	target, err := m.EndEffector(goal)
	test.That(t, err, test.ShouldBeNil)

	seed := []float64{0, 0, 0, 0, 0, 0}
	solution, err := m.Solve(target, seed)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, solution[3], test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, solution[4], test.ShouldAlmostEqual, 0, 1e-9)

	result, err := m.EndEffector(solution)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(result, target, linearTol, angularTol), test.ShouldBeTrue)
}

func TestSolveContinuityMinimality(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)
	rSeed := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		goal := restrictedRandomPositions(m, rSeed, 0.6)
		seed := restrictedRandomPositions(m, rSeed, 0.6)

		target, err := m.EndEffector(goal)
		test.That(t, err, test.ShouldBeNil)
		solution, err := m.Solve(target, seed)
		test.That(t, err, test.ShouldBeNil)

		// brute-force: the chosen branch must be at least as close to the seed
		// as every other limit-valid candidate branch
		chosen := configDist(solution, seed)
		cands, reachable := m.candidates(target, seed)
		test.That(t, reachable, test.ShouldBeTrue)
		for _, cand := range cands {
			if m.ValidatePositions(cand) != nil {
				continue
			}
			test.That(t, chosen, test.ShouldBeLessThanOrEqualTo, configDist(cand, seed)+1e-12)
		}
	}
}

func TestSolveWristPitchSign(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)

	// a bent wrist must come back with joint 5 on the target's side, for both
	// bend directions, not mirrored onto the opposite wrist branch
	for _, q5 := range []float64{1.0, -1.0} {
		goal := []float64{0.2, 0.3, -0.4, 0.5, q5, 0.6}
		target, err := m.EndEffector(goal)
		test.That(t, err, test.ShouldBeNil)

		solution, err := m.Solve(target, []float64{0, 0, 0, 0, 0, 0})
		test.That(t, err, test.ShouldBeNil)
		for i := range goal {
			test.That(t, solution[i], test.ShouldAlmostEqual, goal[i], 1e-9)
		}

		result, err := m.EndEffector(solution)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, spatialmath.PoseAlmostEqual(result, target, linearTol, angularTol), test.ShouldBeTrue)
	}
}

func TestSolveSeedContinuity(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)

	// the same target solved from nearby seeds must come back on the seed's branch
	goal := []float64{0.2, 0.5, -0.4, 0.9, -0.8, 0.3}
	target, err := m.EndEffector(goal)
	test.That(t, err, test.ShouldBeNil)

	nearSeed := []float64{0.25, 0.45, -0.35, 0.85, -0.75, 0.35}
	solution, err := m.Solve(target, nearSeed)
	test.That(t, err, test.ShouldBeNil)
	for i := range goal {
		test.That(t, solution[i], test.ShouldAlmostEqual, goal[i], 1e-9)
	}
}

func TestSolveInputValidation(t *testing.T) {
	m, err := DefaultModel()
	test.That(t, err, test.ShouldBeNil)

	target := spatialmath.NewTransform()
	_, err = m.Solve(target, []float64{0, 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "DoF")
}

func TestSolveUnsupportedChain(t *testing.T) {
	// a chain without the spherical-wrist alpha pattern is rejected up front
	joints := make([]Joint, NumJoints)
	for i := range joints {
		joints[i] = Joint{Limit: Limit{Min: -math.Pi, Max: math.Pi}}
	}
	m, err := NewModel("flat", nil, joints)
	test.That(t, err, test.ShouldBeNil)

	_, err = m.Solve(spatialmath.NewTransform(), []float64{0, 0, 0, 0, 0, 0})
	test.That(t, errors.Is(err, ErrUnsupportedChain), test.ShouldBeTrue)
}
