// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. FORCELAYOUT_ALPHA_MIN.
const EnvPrefix = "FORCELAYOUT"

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of simulation tuning values.
type Config struct {
	// Viewport
	ViewportWidth  float64 `mapstructure:"viewport_width" toml:"viewport_width" validate:"gt=0"`
	ViewportHeight float64 `mapstructure:"viewport_height" toml:"viewport_height" validate:"gt=0"`
	BorderMargin   float64 `mapstructure:"border_margin" toml:"border_margin" validate:"gte=0"`

	// Cooling
	VelocityDecay   float64 `mapstructure:"velocity_decay" toml:"velocity_decay" validate:"gte=0,lte=1"`
	AlphaDecay      float64 `mapstructure:"alpha_decay" toml:"alpha_decay" validate:"gte=0,lte=1"`
	AlphaMin        float64 `mapstructure:"alpha_min" toml:"alpha_min" validate:"gte=0,lte=1"`
	InitialAlpha    float64 `mapstructure:"initial_alpha" toml:"initial_alpha" validate:"gte=0,lte=1"`
	ReheatAlpha     float64 `mapstructure:"reheat_alpha" toml:"reheat_alpha" validate:"gte=0,lte=1"`
	DragAlphaTarget float64 `mapstructure:"drag_alpha_target" toml:"drag_alpha_target" validate:"gte=0,lte=1"`

	// Collision
	CollisionPadding           float64 `mapstructure:"collision_padding" toml:"collision_padding" validate:"gte=0"`
	ClusterPadding             float64 `mapstructure:"cluster_padding" toml:"cluster_padding" validate:"gte=0"`
	RepulsionFactor            float64 `mapstructure:"repulsion_factor" toml:"repulsion_factor" validate:"gte=1"`
	MaxCollisionNeighborRadius float64 `mapstructure:"max_collision_neighbor_radius" toml:"max_collision_neighbor_radius" validate:"gte=0"`
	DefaultRadius              float64 `mapstructure:"default_radius" toml:"default_radius" validate:"gt=0"`

	// Links
	LinkBaseDistance float64 `mapstructure:"link_base_distance" toml:"link_base_distance" validate:"gt=0"`
	LinkMinStrength  float64 `mapstructure:"link_min_strength" toml:"link_min_strength" validate:"gt=0,lte=1"`
	LinkIterations   int     `mapstructure:"link_iterations" toml:"link_iterations" validate:"gte=1,lte=16"`

	// Charge (many-body); strength 0 with charge_auto off disables it.
	ChargeStrength    float64 `mapstructure:"charge_strength" toml:"charge_strength"`
	ChargeAuto        bool    `mapstructure:"charge_auto" toml:"charge_auto"`
	ChargeTheta       float64 `mapstructure:"charge_theta" toml:"charge_theta" validate:"gte=0"`
	ChargeDistanceMax float64 `mapstructure:"charge_distance_max" toml:"charge_distance_max" validate:"gte=0"`

	CenterForce bool    `mapstructure:"center_force" toml:"center_force"`
	PinNewNodes bool    `mapstructure:"pin_new_nodes" toml:"pin_new_nodes"`
	FrameRate   float64 `mapstructure:"frame_rate" toml:"frame_rate" validate:"gte=0"`
}

// Default returns the values the layout was tuned with.
func Default() Config {
	return Config{
		ViewportWidth:  960,
		ViewportHeight: 600,
		BorderMargin:   26,

		VelocityDecay:   0.4,
		AlphaDecay:      DefaultAlphaDecay,
		AlphaMin:        0.001,
		InitialAlpha:    1,
		ReheatAlpha:     0.1,
		DragAlphaTarget: 0.3,

		CollisionPadding:           30,
		ClusterPadding:             50,
		RepulsionFactor:            3,
		MaxCollisionNeighborRadius: 100,
		DefaultRadius:              6,

		LinkBaseDistance: 25,
		LinkMinStrength:  0.4,
		LinkIterations:   1,

		ChargeStrength:    0,
		ChargeAuto:        false,
		ChargeTheta:       0.9,
		ChargeDistanceMax: 0,

		CenterForce: false,
		PinNewNodes: false,
		FrameRate:   60,
	}
}

// DefaultAlphaDecay cools alpha from 1 to 0.001 in about 300 ticks.
const DefaultAlphaDecay = 0.0228

// SetDefaults registers Default() on v so that unset keys fall back to it.
func SetDefaults(v *viper.Viper) {
	d := Default()

	// viewport
	v.SetDefault("viewport_width", d.ViewportWidth)
	v.SetDefault("viewport_height", d.ViewportHeight)
	v.SetDefault("border_margin", d.BorderMargin)

	// cooling
	v.SetDefault("velocity_decay", d.VelocityDecay)
	v.SetDefault("alpha_decay", d.AlphaDecay)
	v.SetDefault("alpha_min", d.AlphaMin)
	v.SetDefault("initial_alpha", d.InitialAlpha)
	v.SetDefault("reheat_alpha", d.ReheatAlpha)          // after a data update
	v.SetDefault("drag_alpha_target", d.DragAlphaTarget) // while a node is dragged

	// collision
	v.SetDefault("collision_padding", d.CollisionPadding)
	v.SetDefault("cluster_padding", d.ClusterPadding)
	v.SetDefault("repulsion_factor", d.RepulsionFactor)
	v.SetDefault("max_collision_neighbor_radius", d.MaxCollisionNeighborRadius)
	v.SetDefault("default_radius", d.DefaultRadius)

	// links
	v.SetDefault("link_base_distance", d.LinkBaseDistance)
	v.SetDefault("link_min_strength", d.LinkMinStrength)
	v.SetDefault("link_iterations", d.LinkIterations)

	// charge
	v.SetDefault("charge_strength", d.ChargeStrength)
	v.SetDefault("charge_auto", d.ChargeAuto)
	v.SetDefault("charge_theta", d.ChargeTheta)
	v.SetDefault("charge_distance_max", d.ChargeDistanceMax)

	v.SetDefault("center_force", d.CenterForce)
	v.SetDefault("pin_new_nodes", d.PinNewNodes)
	v.SetDefault("frame_rate", d.FrameRate)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads a TOML file (optional; "" skips it), applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "config: read %s", path)
		}
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the values held by v.
func LoadWithViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field ranges and the cross-field viewport rule.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return errors.Wrap(ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if 2*c.BorderMargin >= c.ViewportWidth || 2*c.BorderMargin >= c.ViewportHeight {
		return errors.Wrapf(ErrInvalidConfig,
			"border_margin %.1f leaves no room in a %.0fx%.0f viewport",
			c.BorderMargin, c.ViewportWidth, c.ViewportHeight)
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	key := snake(fe.Field())
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", key)
	}
}

// snake turns a Go field name into its config key.
func snake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "config: encode")
}
