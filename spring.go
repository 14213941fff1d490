package allofyou

// Spring is a per-axis spring-damper that smooths a 3D position toward a
// moving target. It is an explicit Euler integrator of a damped harmonic
// oscillator with a unit time step, so Step must be called exactly once per
// rendered frame.
//
// Stiffness and damping are not clamped. Values outside (0, 1) can diverge;
// validate them once with [Tuning.Validate] rather than on every step.
type Spring struct {
	current   Vec3
	target    Vec3
	velocity  Vec3
	stiffness float64
	damping   float64
}

// NewSpring creates a Spring resting at initial with zero velocity.
func NewSpring(initial Vec3, stiffness, damping float64) *Spring {
	return &Spring{
		current:   initial,
		target:    initial,
		stiffness: stiffness,
		damping:   damping,
	}
}

// SetTarget replaces the target. Current position and velocity are untouched.
func (s *Spring) SetTarget(p Vec3) {
	s.target = p
}

// Step advances the spring by one frame and returns the new position.
//
//	force    = (target - current) * stiffness
//	velocity = (velocity + force) * damping
//	current  = current + velocity
func (s *Spring) Step() Vec3 {
	force := s.target.Sub(s.current).Scale(s.stiffness)
	s.velocity = s.velocity.Add(force).Scale(s.damping)
	s.current = s.current.Add(s.velocity)
	return s.current
}

// SetImmediate snaps the spring to p: current and target become p and the
// velocity is zeroed. Intended for initial placement, not steady-state motion.
func (s *Spring) SetImmediate(p Vec3) {
	s.current = p
	s.target = p
	s.velocity = Vec3{}
}

// Current returns the smoothed position.
func (s *Spring) Current() Vec3 { return s.current }

// Target returns the position the spring is moving toward.
func (s *Spring) Target() Vec3 { return s.target }

// Velocity returns the per-frame velocity.
func (s *Spring) Velocity() Vec3 { return s.velocity }

// Stiffness returns the spring constant.
func (s *Spring) Stiffness() float64 { return s.stiffness }

// Damping returns the velocity retention factor.
func (s *Spring) Damping() float64 { return s.damping }

func lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mapRange maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (outMax-outMin)*((v-inMin)/(inMax-inMin))
}
