package cli

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/tenets/internal/config"
	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/flock"
	"github.com/mrz1836/tenets/internal/game"
	"github.com/mrz1836/tenets/internal/ruleset"
)

// world is everything a command needs from disk: config, ruleset and save.
type world struct {
	cfg   *config.Config
	rules *ruleset.Ruleset
	store *game.FileStore
	state *game.State
}

// loadConfig loads the layered configuration, or the --config file alone,
// and applies the --ruleset and --save overrides.
func loadConfig(ctx context.Context, flags *GlobalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.ConfigFile != "" {
		cfg, err = config.LoadFile(ctx, flags.ConfigFile)
	} else {
		cfg, err = config.Load(ctx)
	}
	if err != nil {
		return nil, err
	}

	return config.ApplyOverrides(cfg, &config.Config{
		Ruleset: config.RulesetConfig{Path: flags.RulesetPath},
		Game:    config.GameConfig{SavePath: flags.SavePath},
	})
}

// openStore creates the save store described by cfg.
func openStore(cfg *config.Config) (*game.FileStore, error) {
	return game.NewFileStore(cfg.Game.SavePath, game.WithLockOptions(flock.Options{
		Timeout:       cfg.Game.LockTimeout,
		RetryInterval: constants.LockRetryInterval,
	}))
}

// loadRules loads only the ruleset, for commands that never touch the save.
func loadRules(ctx context.Context, flags *GlobalFlags) (*config.Config, *ruleset.Ruleset, error) {
	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return nil, nil, err
	}
	rules, err := ruleset.NewLoader("").Load(cfg.Ruleset.Path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load ruleset")
	}
	return cfg, rules, nil
}

// loadWorld loads the ruleset and the save in parallel.
func loadWorld(ctx context.Context, flags *GlobalFlags) (*world, error) {
	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return nil, err
	}
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	w := &world{cfg: cfg, store: store}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rules, err := ruleset.NewLoader("").Load(cfg.Ruleset.Path)
		if err != nil {
			return errors.Wrap(err, "failed to load ruleset")
		}
		w.rules = rules
		return nil
	})
	g.Go(func() error {
		st, err := store.Load(gctx)
		if err != nil {
			return err
		}
		w.state = st
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("ruleset", w.rules.Name()).
		Str("save", store.Path()).
		Int("civilizations", len(w.state.Civilizations)).
		Int("religions", len(w.state.Religions)).
		Msg("world loaded")
	return w, nil
}
