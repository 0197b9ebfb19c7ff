// Command sim runs a small rabbits and wolves ecology on a toroidal map.
// It is loosely based on http://www.shodor.org/interactivate/activities/RabbitsAndWolves
// (there's not quite enough there to fully specify how the sim should behave).
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cogworks/cogs"
	cogslog "github.com/cogworks/cogs/log"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var (
		seed    uint64
		legend  bool
		verbose int
	)
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Rabbits eat grass, wolves eat rabbits",
		RunE: func(cmd *cobra.Command, args []string) error {
			if legend {
				printLegend(cmd)
				return nil
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixMilli())
			}
			return runSim(cmd, cfg, seed, verbose)
		},
	}
	cmd.Flags().IntVar(&cfg.Grass, "grass", cfg.Grass, "number of grass patches to start with")
	cmd.Flags().IntVar(&cfg.Rabbits, "rabbits", cfg.Rabbits, "number of rabbits to start with")
	cmd.Flags().IntVar(&cfg.Wolves, "wolves", cfg.Wolves, "number of wolves to start with")
	cmd.Flags().IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "number of times to run the sim")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random number seed (default: time based)")
	cmd.Flags().BoolVar(&legend, "legend", false, "describe map symbols and exit")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "print extra information (up to -vvv)")
	return cmd
}

func printLegend(cmd *cobra.Command) {
	cmd.Println("~ is short grass")
	cmd.Println("| is tall grass")
	cmd.Println("r is a rabbit")
	cmd.Println("w is a wolf")
	cmd.Println("* is the skeleton of a rabbit or wolf")
	cmd.Println()
	cmd.Println("Newborn rabbits and wolves are green.")
	cmd.Println("New skeletons are red.")
}

func logLevel(verbose int) zerolog.Level {
	switch {
	case verbose >= 3:
		return zerolog.TraceLevel
	case verbose == 2:
		return zerolog.DebugLevel
	case verbose == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

func addGrassPatch(world *World, store *cogs.Store, center Point, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			loc := Pt(center.X+dx, center.Y+dy)
			if world.Distance2(center, loc) < radius && len(world.Cell(loc)) == 0 {
				addGrass(world, store, loc)
			}
		}
	}
}

func runSim(cmd *cobra.Command, cfg simConfig, seed uint64, verbose int) error {
	registerAll()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(logLevel(verbose)).
		With().Timestamp().Logger()
	logger.Debug().Uint64("seed", seed).Msg("starting sim")
	cogslog.Registry(&logger, cogs.DefaultRegistry(), zerolog.DebugLevel)

	rng := rand.New(rand.NewSource(int64(seed)))
	world := NewWorld(cfg.Width, cfg.Height, rng, verbose, logger)
	store := cogs.NewStore()

	for i := 0; i < cfg.Grass; i++ {
		radius := 1 + rng.Intn(19)
		center := Pt(rng.Intn(cfg.Width), rng.Intn(cfg.Height))
		addGrassPatch(world, store, center, radius)
	}
	for i := 0; i < cfg.Rabbits; i++ {
		addRabbit(world, store, Pt(rng.Intn(cfg.Width), rng.Intn(cfg.Height)))
	}
	for i := 0; i < cfg.Wolves; i++ {
		addWolf(world, store, Pt(rng.Intn(cfg.Width), rng.Intn(cfg.Height)))
	}
	if err := store.Sync(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := world.RenderTo(store, out); err != nil {
		return err
	}
	for i := 0; i < cfg.Ticks; i++ {
		if err := world.Step(store); err != nil {
			return err
		}
		cycle, err := world.RenderTo(store, out)
		if err != nil {
			return err
		}
		if cycle == Dead {
			fmt.Fprintln(out, "Stopping early: world has stabilized")
			break
		}
	}
	return nil
}
