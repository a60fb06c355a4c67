package kinematics

import (
	"math"

	"github.com/motionworks/paintarm/spatialmath"
)

const (
	// reachEpsilon absorbs floating-point error at the boundary of the reach envelope.
	reachEpsilon = 1e-9
	// below this |sin(q5)| the wrist is treated as singular and joints 4 and 6 are coupled.
	wristSingularityEpsilon = 1e-6
)

// the alpha pattern of a spherical-wrist chain the geometric solver can invert.
var closedFormAlphas = [NumJoints]float64{-math.Pi / 2, 0, -math.Pi / 2, math.Pi / 2, -math.Pi / 2, 0}

// Solve computes a joint configuration whose end-effector frame matches the target,
// using the standard position/orientation decoupling for a spherical-wrist arm. Up
// to eight branch candidates (base front/back x elbow up/down x wrist flip) are
// generated, candidates violating joint limits are discarded, and the survivor with
// the smallest total angular distance to the seed configuration is returned. The
// seed is the previous configuration and provides the continuity guarantee.
//
// Returns ErrUnreachable when the wrist center lies outside the reach envelope,
// and ErrNoSolution when every reachable candidate violates a joint limit.
func (m *Model) Solve(target *spatialmath.Transform, seed []float64) ([]float64, error) {
	if len(seed) != len(m.joints) {
		return nil, NewIncorrectDoFError(len(seed), len(m.joints))
	}
	if !m.supportsClosedForm() {
		return nil, ErrUnsupportedChain
	}

	candidates, reachable := m.candidates(target, seed)
	if !reachable {
		return nil, ErrUnreachable
	}
	var best []float64
	bestDist := math.Inf(1)
	for _, cand := range candidates {
		if m.ValidatePositions(cand) != nil {
			continue
		}
		if d := configDist(cand, seed); d < bestDist {
			best, bestDist = cand, d
		}
	}
	if best == nil {
		return nil, ErrNoSolution
	}
	return best, nil
}

// candidates enumerates the full branch set for the target. The boolean reports
// whether any base/elbow branch placed the wrist center inside the reach envelope.
func (m *Model) candidates(target *spatialmath.Transform, seed []float64) ([][]float64, bool) {
	a1 := m.joints[0].A
	l2 := m.joints[1].A
	l3 := m.joints[3].D
	d6 := m.joints[5].D
	shoulderZ := m.mount.Translation().Z + m.joints[0].D

	// wrist center: back off from the target position along its local z axis
	p := target.Translation()
	wrist := p.Sub(target.AxisZ().Mul(d6))

	rho := math.Hypot(wrist.X, wrist.Y)
	baseYaw := math.Atan2(wrist.Y, wrist.X)
	w := wrist.Z - shoulderZ

	var out [][]float64
	reachable := false
	// base branches: arm reaching forward, and rotated by pi reaching backward
	for _, base := range []struct{ yaw, u float64 }{
		{baseYaw, rho - a1},
		{baseYaw + math.Pi, -rho - a1},
	} {
		dist := math.Hypot(base.u, w)
		if dist > l2+l3+reachEpsilon || dist < math.Abs(l2-l3)-reachEpsilon {
			continue
		}
		reachable = true

		tau := math.Atan2(w, base.u)
		beta := math.Acos(clamp((dist*dist+l2*l2-l3*l3)/(2*l2*dist), -1, 1))
		q1 := spatialmath.WrapToPi(base.yaw - m.joints[0].ThetaOffset)

		// elbow-up / elbow-down from the +- square root of the cosine solve
		for _, elbowSign := range []float64{1, -1} {
			phi2 := -tau - elbowSign*beta
			elbowU := l2 * math.Cos(phi2)
			elbowW := -l2 * math.Sin(phi2)
			phi23 := -math.Atan2(w-elbowW, base.u-elbowU) - math.Pi/2

			q2 := spatialmath.WrapToPi(phi2 - m.joints[1].ThetaOffset)
			q3 := spatialmath.WrapToPi(phi23 - phi2 - m.joints[2].ThetaOffset)
			out = append(out, m.wristCandidates(target, seed, q1, q2, q3)...)
		}
	}
	return out, reachable
}

// wristCandidates solves joints 4-6 from the residual rotation left after joints
// 1-3. For this alpha pattern the residual decomposes as Rz(t4)*Ry(-t5)*Rz(t6):
// conjugating the joint 5 rotation by the alpha 4 twist turns it into a rotation
// about -y, so the middle ZYZ angle is the negated joint angle.
func (m *Model) wristCandidates(target *spatialmath.Transform, seed []float64, q1, q2, q3 float64) [][]float64 {
	arm := m.mount.
		Mul(m.joints[0].Transform(q1)).
		Mul(m.joints[1].Transform(q2)).
		Mul(m.joints[2].Transform(q3))
	residual := arm.Invert().Mul(target).Rotation()

	m11 := residual.At(0, 0)
	m21 := residual.At(1, 0)
	m13 := residual.At(0, 2)
	m23 := residual.At(1, 2)
	m31 := residual.At(2, 0)
	m32 := residual.At(2, 1)
	m33 := residual.At(2, 2)

	off4 := m.joints[3].ThetaOffset
	off5 := m.joints[4].ThetaOffset
	off6 := m.joints[5].ThetaOffset

	sin5 := math.Hypot(m13, m23)
	if sin5 < wristSingularityEpsilon {
		// wrist singularity: the joint 4 and joint 6 axes are collinear and only
		// their combination is determined. Hold joint 4 at its previous value and
		// solve joint 6 to match the residual.
		t4 := seed[3] + off4
		var t5, t6 float64
		if m33 > 0 {
			t5 = 0
			t6 = math.Atan2(m21, m11) - t4
		} else {
			t5 = math.Pi
			t6 = t4 - math.Atan2(-m21, -m11)
		}
		return [][]float64{m.assemble(seed,
			q1, q2, q3, seed[3], spatialmath.WrapToPi(t5-off5), spatialmath.WrapToPi(t6-off6))}
	}

	// regular case: two wrist-flip branches
	cands := make([][]float64, 0, 2)
	for _, wristSign := range []float64{1, -1} {
		t4 := math.Atan2(wristSign*m23, wristSign*m13)
		t5 := -math.Atan2(wristSign*sin5, m33)
		t6 := math.Atan2(wristSign*m32, -wristSign*m31)
		cands = append(cands, m.assemble(seed,
			q1, q2, q3,
			spatialmath.WrapToPi(t4-off4),
			spatialmath.WrapToPi(t5-off5),
			spatialmath.WrapToPi(t6-off6)))
	}
	return cands
}

// assemble builds a candidate configuration, snapping each joint to the
// 2pi-equivalent angle nearest the seed that stays within limits.
func (m *Model) assemble(seed []float64, angles ...float64) []float64 {
	out := make([]float64, len(angles))
	for i, angle := range angles {
		out[i] = nearestEquivalent(angle, seed[i], m.joints[i].Limit)
	}
	return out
}

// nearestEquivalent returns the 2pi-equivalent of angle closest to ref among those
// within the limit, falling back to the wrapped angle itself.
func nearestEquivalent(angle, ref float64, limit Limit) float64 {
	best := spatialmath.WrapToPi(angle)
	bestDist := math.Abs(best - ref)
	for _, k := range []float64{-2 * math.Pi, 2 * math.Pi} {
		v := spatialmath.WrapToPi(angle) + k
		if !limit.Contains(v) {
			continue
		}
		if !limit.Contains(best) || math.Abs(v-ref) < bestDist {
			best, bestDist = v, math.Abs(v-ref)
		}
	}
	return best
}

// configDist is the total angular distance between two configurations, using the
// minimal-magnitude equivalent difference per joint.
func configDist(a, b []float64) float64 {
	total := 0.0
	for i := range a {
		total += spatialmath.AngleDist(a[i], b[i])
	}
	return total
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// supportsClosedForm reports whether the model has the spherical-wrist geometry
// (alpha pattern, concurrent wrist axes, vertical mount) the solver assumes.
func (m *Model) supportsClosedForm() bool {
	const tol = 1e-9
	if len(m.joints) != NumJoints {
		return false
	}
	for i, want := range closedFormAlphas {
		if !spatialmath.Float64AlmostEqual(m.joints[i].Alpha, want, tol) {
			return false
		}
	}
	for _, v := range []float64{
		m.joints[1].D, m.joints[2].A, m.joints[2].D, m.joints[3].A,
		m.joints[4].A, m.joints[4].D, m.joints[5].A,
	} {
		if !spatialmath.Float64AlmostEqual(v, 0, tol) {
			return false
		}
	}
	mt := m.mount.Translation()
	return spatialmath.Float64AlmostEqual(mt.X, 0, tol) &&
		spatialmath.Float64AlmostEqual(mt.Y, 0, tol) &&
		spatialmath.OrientationBetween(m.mount, spatialmath.NewTransform()) < tol
}
