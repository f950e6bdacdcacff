package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load builds a Config layering, from lowest to highest priority: package
// defaults, the file at path (if non-empty), environment variables
// prefixed with envPrefix (if non-empty), and finally overrides. Any
// layer may be empty/zero; Load still validates the resulting Config
// before returning it.
func Load(path, envPrefix string, overrides map[string]interface{}) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("bs_subsys_size", d.BSSubsysSize)
	v.SetDefault("integrator_type", string(d.IntegratorType))
	v.SetDefault("recenter", d.Recenter)
	v.SetDefault("verify_split", d.VerifySplit)
	v.SetDefault("split_shortcuts", d.SplitShortcuts)
	v.SetDefault("max_parallel_depth", d.MaxParallelDepth)
}
