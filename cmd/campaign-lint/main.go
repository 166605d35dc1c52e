// Command campaign-lint loads a campaign content directory and reports every
// load and cross-reference diagnostic. The exit code follows the soft
// validation policy: diagnostics alone do not fail the lint unless -strict
// is given; only an unloadable campaign does.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tabletop/internal/config"
	"github.com/cory-johannsen/tabletop/internal/game/campaign"
	"github.com/cory-johannsen/tabletop/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to config YAML (optional)")
	content := flag.String("content", "", "campaign content directory (overrides config)")
	strict := flag.Bool("strict", false, "exit non-zero when any diagnostic is reported")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *content != "" {
		cfg.Content.Root = *content
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	c, diags, ok := campaign.NewLoader(logger).Load(cfg.Content.Root)
	for _, d := range diags {
		fmt.Println(d)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "campaign failed to load")
		os.Exit(1)
	}

	fmt.Printf("%s (%s): %d locations, %d npcs, %d monsters, %d items, %d trials, %d minigames, %d diagnostics\n",
		c.Name, c.ID,
		len(c.Locations()), len(c.NPCs()), c.Monsters().Len(), c.Items().Len(),
		len(c.Trials()), len(c.MiniGames()), len(diags))

	if *strict && len(diags) > 0 {
		os.Exit(1)
	}
	logger.Info("lint complete", zap.Bool("fully_loaded", c.FullyLoaded()))
}
