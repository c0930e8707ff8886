package physics

const (
	// StandardGravity is the conventional gravitational acceleration in m/s².
	StandardGravity = 9.80665

	// VoltageTolerance bounds the absolute loop sum a satisfied Kirchhoff
	// voltage loop may carry, absorbing float accumulation error.
	VoltageTolerance = 1e-6
)
