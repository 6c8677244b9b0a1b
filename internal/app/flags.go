package app

import (
	"flag"

	"mapforge/internal/storage"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Recipe   string
	Snapshot string
	Store    string
	DBPath   string
	Param    string
	Scale    int
	TPS      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Store:  storage.DefaultStoreKind(),
		DBPath: "mapforge.db",
		Scale:  24,
		TPS:    30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Recipe, "recipe", c.Recipe, "JSON recipe to build (default: built-in demo)")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "stored snapshot id to load instead of a recipe")
	fs.StringVar(&c.Store, "store", c.Store, "store backend: memory|sqlite")
	fs.StringVar(&c.DBPath, "db-path", c.DBPath, "sqlite database path")
	fs.StringVar(&c.Param, "param", c.Param, "parameter to show first")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}
