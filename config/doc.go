// Package config defines the Evolver's tunable knobs and loads them from a
// file, a map of overrides, or both layered together via spf13/viper. No
// command-line surface is defined here; embedding applications wire their
// own flags and pass the results in as an overrides map.
package config
