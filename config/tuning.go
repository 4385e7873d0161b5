package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// Tuning is the subset of gameplay values that can be overridden from YAML.
// Pointer fields distinguish "absent" from zero.
type Tuning struct {
	Player struct {
		WalkSpeed  *float64 `yaml:"walkSpeed"`
		HurtTorque *float64 `yaml:"hurtTorque"`
		Mass       *float64 `yaml:"mass"`
	} `yaml:"player"`
	Physics struct {
		FallRate    *float64 `yaml:"fallRate"`
		Gravity     *float64 `yaml:"gravity"`
		GroundSnap  *float64 `yaml:"groundSnap"`
		ContactSkin *float64 `yaml:"contactSkin"`
	} `yaml:"physics"`
	Boulder struct {
		Radius   *float64 `yaml:"radius"`
		Mass     *float64 `yaml:"mass"`
		Friction *float64 `yaml:"friction"`
	} `yaml:"boulder"`
	Fatigue struct {
		GainRate      *float64 `yaml:"gainRate"`
		DecayRate     *float64 `yaml:"decayRate"`
		HurtThreshold *float64 `yaml:"hurtThreshold"`
	} `yaml:"fatigue"`
	Slope struct {
		RayLength *float64 `yaml:"rayLength"`
		Blend     *float64 `yaml:"blend"`
	} `yaml:"slope"`
	Marker struct {
		Thresholds []float64 `yaml:"thresholds"`
	} `yaml:"marker"`
	Terrain struct {
		SlopeDegrees *float64 `yaml:"slopeDegrees"`
		JitterDeg    *float64 `yaml:"jitterDegrees"`
		Seed         *int64   `yaml:"seed"`
	} `yaml:"terrain"`
}

// LoadDefaultTuning applies the embedded tuning.yaml.
func LoadDefaultTuning() error {
	return LoadTuning(bytes.NewReader(defaultTuning))
}

// LoadTuningFile applies overrides from a YAML file on disk.
func LoadTuningFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()
	return LoadTuning(f)
}

// LoadTuning decodes YAML overrides and applies them to the global config.
// Unknown keys are rejected; nothing is applied when validation fails.
func LoadTuning(r io.Reader) error {
	var t Tuning
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.apply()
	return nil
}

func (t *Tuning) validate() error {
	if t.Fatigue.HurtThreshold != nil && (*t.Fatigue.HurtThreshold < 0 || *t.Fatigue.HurtThreshold > Fatigue.Max) {
		return fmt.Errorf("fatigue.hurtThreshold %v outside [0,%v]", *t.Fatigue.HurtThreshold, Fatigue.Max)
	}
	if t.Slope.Blend != nil && (*t.Slope.Blend <= 0 || *t.Slope.Blend > 1) {
		return fmt.Errorf("slope.blend %v outside (0,1]", *t.Slope.Blend)
	}
	if t.Boulder.Radius != nil && *t.Boulder.Radius <= 0 {
		return fmt.Errorf("boulder.radius must be positive")
	}
	if t.Fatigue.GainRate != nil && *t.Fatigue.GainRate < 0 {
		return fmt.Errorf("fatigue.gainRate %v must not be negative", *t.Fatigue.GainRate)
	}
	if t.Fatigue.DecayRate != nil && *t.Fatigue.DecayRate < 0 {
		return fmt.Errorf("fatigue.decayRate %v must not be negative", *t.Fatigue.DecayRate)
	}
	if t.Physics.FallRate != nil && *t.Physics.FallRate >= 0 {
		return fmt.Errorf("physics.fallRate %v must be negative", *t.Physics.FallRate)
	}
	if t.Player.Mass != nil && *t.Player.Mass <= 0 {
		return fmt.Errorf("player.mass must be positive")
	}
	if t.Player.WalkSpeed != nil && *t.Player.WalkSpeed < 0 {
		return fmt.Errorf("player.walkSpeed %v must not be negative", *t.Player.WalkSpeed)
	}
	radius := Boulder.Radius
	if t.Boulder.Radius != nil {
		radius = *t.Boulder.Radius
	}
	skin := Physics.ContactSkin
	if t.Physics.ContactSkin != nil {
		skin = *t.Physics.ContactSkin
	}
	if skin < 0 || skin >= radius {
		return fmt.Errorf("physics.contactSkin %v outside [0,%v)", skin, radius)
	}
	if n := len(t.Marker.Thresholds); n > 0 {
		if n != 6 {
			return fmt.Errorf("marker.thresholds needs 6 values, got %d", n)
		}
		for i := 1; i < n; i++ {
			if t.Marker.Thresholds[i] <= t.Marker.Thresholds[i-1] {
				return fmt.Errorf("marker.thresholds must be ascending")
			}
		}
	}
	return nil
}

func (t *Tuning) apply() {
	setFloat(&Player.WalkSpeed, t.Player.WalkSpeed)
	setFloat(&Player.HurtTorque, t.Player.HurtTorque)
	setFloat(&Player.Mass, t.Player.Mass)

	setFloat(&Physics.FallRate, t.Physics.FallRate)
	setFloat(&Physics.Gravity, t.Physics.Gravity)
	setFloat(&Physics.GroundSnap, t.Physics.GroundSnap)
	setFloat(&Physics.ContactSkin, t.Physics.ContactSkin)

	setFloat(&Boulder.Radius, t.Boulder.Radius)
	setFloat(&Boulder.Mass, t.Boulder.Mass)
	setFloat(&Boulder.Friction, t.Boulder.Friction)

	setFloat(&Fatigue.GainRate, t.Fatigue.GainRate)
	setFloat(&Fatigue.DecayRate, t.Fatigue.DecayRate)
	setFloat(&Fatigue.HurtThreshold, t.Fatigue.HurtThreshold)

	setFloat(&Slope.RayLength, t.Slope.RayLength)
	setFloat(&Slope.Blend, t.Slope.Blend)

	if len(t.Marker.Thresholds) > 0 {
		Marker.Thresholds = append([]float64(nil), t.Marker.Thresholds...)
	}

	setFloat(&Terrain.SlopeDegrees, t.Terrain.SlopeDegrees)
	setFloat(&Terrain.JitterDeg, t.Terrain.JitterDeg)
	if t.Terrain.Seed != nil {
		Terrain.Seed = *t.Terrain.Seed
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
