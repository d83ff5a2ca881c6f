package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/emberfield/palisade/internal/config"
	"github.com/emberfield/palisade/internal/game"
	"github.com/emberfield/palisade/internal/game/catalog"
	"github.com/emberfield/palisade/internal/game/events"
	"github.com/emberfield/palisade/internal/game/events/subscribers"
	"github.com/emberfield/palisade/internal/game/tavern"
	"github.com/emberfield/palisade/internal/persist"
	"github.com/emberfield/palisade/internal/telemetry"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	days := flag.Int("days", 0, "Days to simulate (0 to run until the invasion arrives)")
	seed := flag.Int64("seed", 0, "RNG seed (0 for a time-based seed)")
	save := flag.Bool("save", false, "Write a snapshot when the run ends")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	// Setup logging
	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	log.Info().
		Int64("seed", *seed).
		Int("hand_limit", cfg.Game.Hand.Limit).
		Int("invasion_distance", cfg.Game.Invasion.Distance).
		Msg("Starting village demo")

	registry, err := catalog.Load(catalog.Paths{
		Buildings:     cfg.Data.Buildings,
		Slots:         cfg.Data.Slots,
		SlotLocations: cfg.Data.SlotLocations,
		Stickers:      cfg.Data.Stickers,
		Cards:         cfg.Data.Cards,
	}, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load game data")
	}

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("demo-logger", log.Logger, zerolog.DebugLevel))
	journal := subscribers.NewJournalSubscriber("demo-journal", 1024, log.Logger)
	bus.Subscribe(journal)
	if cfg.Development.TrackTelemetry {
		bus.Subscribe(subscribers.NewTrackerSubscriber("demo-tracker", telemetry.NewLogTracker(log.Logger)))
	}

	engine, err := game.NewEngine(registry, game.Options{
		HandLimit:        cfg.Game.Hand.Limit,
		DeckLimit:        cfg.Game.Hand.DeckLimit,
		InvasionDistance: cfg.Game.Invasion.Distance,
		InvasionSpeed:    cfg.Game.Invasion.SpeedPerTurn,
		StartingCards:    cfg.Game.StartingCards,
	}, bus, rng, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}

	adventures, err := tavern.LoadOptions(cfg.Data.Adventures)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load adventures")
	}
	for _, opt := range adventures {
		engine.Tavern().AddOption(opt)
	}

	engine.DrawUpToLimit()

	for day := 1; ; day++ {
		if *days > 0 && day > *days {
			fmt.Printf("Reached maximum days (%d)\n", *days)
			break
		}
		if engine.Clock().HasArrived() {
			fmt.Printf("The invasion arrived on day %d\n", engine.Clock().Day())
			break
		}

		if err := playDay(engine, rng); err != nil {
			log.Fatal().Err(err).Int("day", day).Msg("Day failed")
		}
		printStatus(engine)

		if _, err := engine.AdvanceDay(); err != nil {
			log.Fatal().Err(err).Int("day", day).Msg("Failed to advance day")
		}
	}

	fmt.Println("Final state:")
	printStatus(engine)

	fmt.Println("Events seen:")
	for eventType, count := range journal.CountByType() {
		fmt.Printf("  %s: %d\n", eventType, count)
	}

	if *save {
		store, err := persist.NewFileStore(cfg.Persistence.SaveDir)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open save dir")
		}
		if err := engine.SaveSnapshot(store, cfg.Persistence.AutosaveKey); err != nil {
			log.Fatal().Err(err).Msg("Failed to save snapshot")
		}
		fmt.Printf("Snapshot saved to %s/%s.json\n", cfg.Persistence.SaveDir, cfg.Persistence.AutosaveKey)
	}
}

// playDay plays out one day with random decisions. This is just for
// demonstration - in a real game, commands would come from the player.
func playDay(engine *game.Engine, rng *rand.Rand) error {
	// Play the whole hand to bank its track values
	for engine.Hand().Size() > 0 {
		if _, err := engine.PlayCard(0); err != nil {
			return err
		}
	}

	// Try to put up one building on a random free slot
	slots := engine.Board().Slots()
	rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })
construct:
	for _, slot := range slots {
		if slot.IsOccupied() {
			continue
		}
		for _, buildingID := range slot.Available {
			if !engine.Board().CanConstruct(buildingID, slot.ID) {
				continue
			}
			built, err := engine.ConstructBuilding(buildingID, slot.ID)
			if err != nil {
				return err
			}
			if built {
				break construct
			}
		}
	}

	// Recruit something if a building unlocked it
	if unlocked := engine.Pool().List(); len(unlocked) > 0 && rng.Float32() < 0.5 {
		if _, err := engine.Recruit(unlocked[rng.Intn(len(unlocked))]); err != nil {
			return err
		}
	}

	// 40% chance to try an adventure with whatever power is left
	if rng.Float32() < 0.4 {
		opts, err := engine.Tavern().OptionsFor(tavern.LevelEasy)
		if err != nil {
			return err
		}
		if _, err := engine.AttemptAdventure(opts[rng.Intn(len(opts))]); err != nil {
			return err
		}
	}

	return nil
}

func printStatus(engine *game.Engine) {
	snap := engine.Snapshot()
	fmt.Printf("Day %d | invasion in %d | deck %d / discard %d / hand %d\n",
		snap.Day, snap.Distance, snap.DeckSize, snap.DiscardSize, snap.HandSize)
	for name, amount := range snap.Resources {
		if amount > 0 {
			fmt.Printf("  %s: %d\n", name, amount)
		}
	}
	for slotID, buildingID := range snap.Constructed {
		fmt.Printf("  %s: %s\n", slotID, buildingID)
	}
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
