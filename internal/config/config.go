package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/dijkstra"
)

// EnvPrefix is prepended to every environment override, e.g. PATHLAB_GRAPH_NODES.
const EnvPrefix = "PATHLAB"

// Config holds all application configuration.
type Config struct {
	Graph    GraphConfig    `mapstructure:"graph"`
	Dijkstra DijkstraConfig `mapstructure:"dijkstra"`
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
}

// GraphConfig drives builder.RandomGraph.
type GraphConfig struct {
	Nodes     int     `mapstructure:"nodes"`
	Density   float64 `mapstructure:"density"`
	MinValue  int     `mapstructure:"min_value"`
	MaxValue  int     `mapstructure:"max_value"`
	MinWeight int     `mapstructure:"min_weight"`
	MaxWeight int     `mapstructure:"max_weight"`
	// Seed 0 means "pick one from the clock".
	Seed     int64  `mapstructure:"seed"`
	IDScheme string `mapstructure:"id_scheme"`
}

type DijkstraConfig struct {
	Source   string `mapstructure:"source"`
	Target   string `mapstructure:"target"`
	TieBreak string `mapstructure:"tie_break"`
	Steps    bool   `mapstructure:"steps"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

// Defaults returns the configuration used when neither a file, the
// environment nor flags say otherwise.
func Defaults() Config {
	return Config{
		Graph: GraphConfig{
			Nodes:     8,
			Density:   0.3,
			MinValue:  1,
			MaxValue:  100,
			MinWeight: builder.DefaultMinWeight,
			MaxWeight: builder.DefaultMaxWeight,
			IDScheme:  "letters",
		},
		Dijkstra: DijkstraConfig{
			Source:   "A",
			TieBreak: dijkstra.TieBreakInsertion.String(),
			Steps:    true,
		},
		Log: LogConfig{
			Level:  zerolog.InfoLevel.String(),
			Format: "console",
		},
	}
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Graph.Nodes < 0 {
		warnings = append(warnings, fmt.Sprintf("graph nodes %d is negative", c.Graph.Nodes))
	}
	if c.Graph.Density < 0 || c.Graph.Density > 1 {
		warnings = append(warnings, fmt.Sprintf("graph density %.2f is outside [0.0, 1.0]", c.Graph.Density))
	}
	if c.Graph.MinValue > c.Graph.MaxValue {
		warnings = append(warnings, fmt.Sprintf("graph min_value %d exceeds max_value %d", c.Graph.MinValue, c.Graph.MaxValue))
	}
	if c.Graph.MinWeight < 0 || c.Graph.MinWeight > c.Graph.MaxWeight {
		warnings = append(warnings, fmt.Sprintf("graph weight range [%d, %d] is invalid", c.Graph.MinWeight, c.Graph.MaxWeight))
	}
	if _, ok := builder.IDScheme(c.Graph.IDScheme); !ok {
		warnings = append(warnings, fmt.Sprintf("graph id_scheme '%s' is unknown", c.Graph.IDScheme))
	}
	if _, ok := dijkstra.ParseTieBreak(c.Dijkstra.TieBreak); !ok {
		warnings = append(warnings, fmt.Sprintf("dijkstra tie_break '%s' is unknown", c.Dijkstra.TieBreak))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		warnings = append(warnings, fmt.Sprintf("log level '%s' is unknown", c.Log.Level))
	}
	if c.Log.Format != "" && c.Log.Format != "json" && c.Log.Format != "console" {
		warnings = append(warnings, fmt.Sprintf("log format '%s' is not json or console", c.Log.Format))
	}

	return warnings
}

// Load reads configuration from defaults, an optional file, the environment
// and the given flags, in increasing order of precedence. Keys of flags are
// config keys ("graph.nodes"); only flags the user actually set override.
func Load(path string, flags map[string]*pflag.Flag) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("graph.nodes", d.Graph.Nodes)
	v.SetDefault("graph.density", d.Graph.Density)
	v.SetDefault("graph.min_value", d.Graph.MinValue)
	v.SetDefault("graph.max_value", d.Graph.MaxValue)
	v.SetDefault("graph.min_weight", d.Graph.MinWeight)
	v.SetDefault("graph.max_weight", d.Graph.MaxWeight)
	v.SetDefault("graph.seed", d.Graph.Seed)
	v.SetDefault("graph.id_scheme", d.Graph.IDScheme)
	v.SetDefault("dijkstra.source", d.Dijkstra.Source)
	v.SetDefault("dijkstra.target", d.Dijkstra.Target)
	v.SetDefault("dijkstra.tie_break", d.Dijkstra.TieBreak)
	v.SetDefault("dijkstra.steps", d.Dijkstra.Steps)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.pretty", d.Output.Pretty)
}
