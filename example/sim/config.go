package main

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// simConfig carries the defaults for the command line flags. Any field may be
// overridden from the environment before the flags are parsed.
type simConfig struct {
	Width   int `config:"SIM_WIDTH"`
	Height  int `config:"SIM_HEIGHT"`
	Grass   int `config:"SIM_GRASS"`
	Rabbits int `config:"SIM_RABBITS"`
	Wolves  int `config:"SIM_WOLVES"`
	Ticks   int `config:"SIM_TICKS"`
}

func loadConfig() (simConfig, error) {
	cfg := simConfig{
		Width:   30,
		Height:  20,
		Grass:   20,
		Rabbits: 12,
		Wolves:  3,
		Ticks:   10,
	}
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "loading sim config from environment")
	}
	return cfg, nil
}
