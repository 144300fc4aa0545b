package hydro

import "github.com/Faultbox/hydrosim/pkg/math"

// Settings holds the per-object force coefficients and water-query options.
// Set at configuration time; read-only during simulation.
type Settings struct {
	// Force coefficients.
	BuoyancyCoefficient     float64 `yaml:"buoyancy_coefficient"`
	HydrodynamicCoefficient float64 `yaml:"hydrodynamic_coefficient"`
	SkinDragCoefficient     float64 `yaml:"skin_drag_coefficient"`
	SlamCoefficient         float64 `yaml:"slam_coefficient"`
	SuctionCoefficient      float64 `yaml:"suction_coefficient"`
	FinalForceCoefficient   float64 `yaml:"final_force_coefficient"`
	FinalTorqueCoefficient  float64 `yaml:"final_torque_coefficient"`

	// Fluid parameters.
	FluidDensity        float64 `yaml:"fluid_density"`
	VelocityDotExponent float64 `yaml:"velocity_dot_exponent"`

	// Values used when no provider is registered or a channel is disabled.
	DefaultWaterHeight float64   `yaml:"default_water_height"`
	DefaultWaterNormal math.Vec3 `yaml:"default_water_normal"`
	DefaultWaterFlow   math.Vec3 `yaml:"default_water_flow"`

	// Query-enable flags. A channel is only queried when its flag is set
	// and the active provider supports it.
	CalculateWaterHeights bool `yaml:"calculate_water_heights"`
	CalculateWaterNormals bool `yaml:"calculate_water_normals"`
	CalculateWaterFlows   bool `yaml:"calculate_water_flows"`
}

// DefaultSettings returns Settings with neutral coefficients and sea-water
// density.
func DefaultSettings() Settings {
	return Settings{
		BuoyancyCoefficient:     1.0,
		HydrodynamicCoefficient: 1.0,
		SkinDragCoefficient:     1.0,
		SlamCoefficient:         1.0,
		SuctionCoefficient:      1.0,
		FinalForceCoefficient:   1.0,
		FinalTorqueCoefficient:  1.0,
		FluidDensity:            1025.0,
		VelocityDotExponent:     1.0,
		DefaultWaterHeight:      0.0,
		DefaultWaterNormal:      math.Vec3{X: 0, Y: 1, Z: 0},
		DefaultWaterFlow:        math.Vec3{},
		CalculateWaterHeights:   true,
		CalculateWaterNormals:   true,
		CalculateWaterFlows:     true,
	}
}
