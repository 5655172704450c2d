package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GridRacingRL/internal/config"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/mitchelldurbincs/GridRacingRL/internal/race"
	"github.com/mitchelldurbincs/GridRacingRL/internal/storage"
	"github.com/mitchelldurbincs/GridRacingRL/internal/track"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	trackPath := flag.String("track", "", "YAML track definition to race on")
	agents := flag.String("agents", "1", "Comma-separated agent ids")
	races := flag.Int("races", 10, "Number of races to run")
	train := flag.Bool("train", true, "Persist Q-value and stats updates after every race")
	epsilon := flag.Float64("epsilon", -1, "Exploration rate (-1 to use config default)")
	backend := flag.String("store", "", "Storage backend, memory or sqlite (empty to use config default)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *trackPath == "" {
		log.Fatal().Msg("-track is required")
	}
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()
	if *backend != "" {
		cfg.Storage.Backend = *backend
	}

	agentIDs, err := parseAgents(*agents)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -agents")
	}

	settings := cfg.RaceSettings()
	policy := settings.Policy
	if *epsilon >= 0 {
		policy.Epsilon = *epsilon
	}

	if err := run(cfg, settings, *trackPath, agentIDs, *races, *train, policy); err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}
}

func run(cfg *config.Config, settings race.Settings, trackPath string, agentIDs []uint32, races int, train bool, policy learning.PolicyConfig) error {
	ctx := context.Background()

	t, err := track.LoadFile(trackPath)
	if err != nil {
		return err
	}
	stats := track.ComputeStats(t)
	fmt.Printf("Track %d %q: %dx%d, fastest %d ticks, %d start tiles\n",
		t.ID, t.Name, t.Width, t.Height, t.FastestTickTime, stats.Start)

	registry := track.NewRegistry(log.Logger)
	registry.Add(t)

	store, err := storage.NewStore(cfg.Storage.Backend, cfg.Storage.SQLitePath, cfg.StorageLimits())
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer storage.CloseIfSupported(store)

	svc := race.NewService(registry, store, settings, log.Logger)
	for i := 1; i <= races; i++ {
		res, err := svc.SimulateRace(ctx, race.Request{
			TrackID:  t.ID,
			AgentIDs: agentIDs,
			Train:    train,
			Policy:   &policy,
		})
		if err != nil {
			return fmt.Errorf("race %d: %w", i, err)
		}
		printResult(i, res)
	}

	if train {
		for _, id := range agentIDs {
			st, err := svc.GetTrainingStats(ctx, race.StatsQuery{AgentID: id, TrackID: &t.ID})
			if err != nil {
				return err
			}
			rec := st[0].Solo
			if len(agentIDs) > 1 {
				rec = st[0].Competitive
			}
			fmt.Printf("agent %d: %d races, %d wins (%d%%), fastest %d\n", id, rec.Tally, rec.Wins, rec.WinRate, rec.Fastest)
		}
	}
	return nil
}

func printResult(n int, res *race.Result) {
	var b strings.Builder
	for _, r := range res.Rankings {
		fmt.Fprintf(&b, " #%d=agent %d", r.Rank, r.AgentID)
	}
	steps := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = fmt.Sprintf("%d:%d", s.AgentID, s.StepsTaken)
	}
	fmt.Printf("race %3d %s ticks=%3d winners=%v steps=[%s]%s\n",
		n, res.RaceID[:8], res.Ticks, res.WinnerIDs, strings.Join(steps, " "), b.String())
}

func parseAgents(s string) ([]uint32, error) {
	var ids []uint32
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("agent id %q: %w", part, err)
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}
