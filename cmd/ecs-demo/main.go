package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/compose/ecs"
	"github.com/plus3/compose/geom"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", os.Getenv("ECS_DEMO_CONFIG"), "Path to a TOML config file.")
	entities := flag.Int("entities", 0, "Extra entities to run after the scripted scenario.")
	lifetime := flag.Int("lifetime", 0, "Ticks before an extra entity kills itself.")
	interval := flag.Duration("interval", 0, "Tick interval for the extra run.")
	profileMode := flag.String("profile", "", "Enable profiling: cpu or mem.")
	flag.Parse()

	cfg, err := LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "entities":
			cfg.Demo.Entities = *entities
		case "lifetime":
			cfg.Demo.Lifetime = *lifetime
		case "interval":
			cfg.Demo.Interval = *interval
		case "profile":
			cfg.Profile.Mode = *profileMode
		}
	})
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	switch cfg.Profile.Mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile.Path), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.Profile.Path), profile.NoShutdownHook).Stop()
	}

	m := ecs.NewManager(ecs.WithLogger(log.Named("manager")))

	if err := runScenario(log, m); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if cfg.Demo.Entities > 0 {
		if err := runLifetimes(log, m, cfg.Demo); err != nil {
			return fmt.Errorf("lifetimes: %w", err)
		}
	}

	report := &Report{
		Config: cfg.Demo,
		Stats:  m.Stats(),
	}
	fmt.Println("\n--- Manager Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	return nil
}

// runScenario walks one entity through add/get/has/remove, then drives three
// entities through the manager lifecycle and purges it.
func runScenario(log *zap.Logger, m *ecs.Manager) error {
	first := ecs.NewEntityAt(geom.Vec3{X: 1, Y: 2, Z: 3}, geom.Identity, geom.One)

	one, err := ecs.Add(first, NewAlpha(log, 3, 5))
	if err != nil {
		return err
	}
	if _, err := ecs.Add(first, NewBeta(log, 7, 9, one)); err != nil {
		return err
	}

	tr, err := ecs.Get[*ecs.Transform](first)
	if err != nil {
		return err
	}
	beta, err := ecs.Get[*Beta](first)
	if err != nil {
		return err
	}
	log.Info("component ids",
		zap.Uint32("transform", uint32(tr.TypeID())),
		zap.Uint32("alpha", uint32(one.TypeID())),
		zap.Uint32("beta", uint32(beta.TypeID())))
	log.Info("placement",
		zap.Stringer("position", tr.Position),
		zap.Stringer("rotation", tr.Rotation),
		zap.Stringer("scale", tr.Scale))
	log.Info("first has", zap.Bool("alpha", ecs.Has[*Alpha](first)), zap.Bool("beta", ecs.Has[*Beta](first)))

	for range 3 {
		first.Update()
	}

	log.Info("removing beta from first")
	ecs.Remove[*Beta](first)
	log.Info("first has", zap.Bool("beta", ecs.Has[*Beta](first)))

	for range 3 {
		first.Update()
	}

	second := ecs.NewEntityAt(geom.Vec3{X: 1, Y: 2, Z: 3}, geom.Identity, geom.One)
	one, err = ecs.Add(second, NewAlpha(log, 3, 5))
	if err != nil {
		return err
	}
	if _, err := ecs.Add(second, NewBeta(log, 7, 9, one)); err != nil {
		return err
	}

	third := ecs.NewEntityAt(geom.Vec3{X: 1, Y: 2, Z: 3}, geom.Identity, geom.One)
	if _, err := ecs.Add(third, NewAlpha(log, 3, 5)); err != nil {
		return err
	}

	for _, e := range []*ecs.Entity{first, second, third} {
		if err := m.Admit(e); err != nil {
			return err
		}
	}
	if err := m.Reap(); err != nil {
		return err
	}
	if err := m.CommitPending(); err != nil {
		return err
	}

	if err := tickN(m, 3); err != nil {
		return err
	}
	second.Kill()
	if err := tickN(m, 3); err != nil {
		return err
	}

	m.Purge()
	return nil
}

// runLifetimes restarts the manager and runs entities that expire on their
// own until a Drainer sees the live set empty or the timeout elapses.
func runLifetimes(log *zap.Logger, m *ecs.Manager, cfg DemoConfig) error {
	m.SetRunning(true)

	for i := range cfg.Entities {
		e := ecs.NewEntity()
		if _, err := ecs.Add(e, &Lifetime{Remaining: cfg.Lifetime + i%cfg.Lifetime}); err != nil {
			return err
		}
		if err := m.Admit(e); err != nil {
			return err
		}
	}

	drainer := ecs.NewEntity()
	if _, err := ecs.Add(drainer, &Drainer{Manager: m}); err != nil {
		return err
	}
	if err := m.Admit(drainer); err != nil {
		return err
	}
	log.Info("running lifetimes", zap.Int("entities", cfg.Entities), zap.Duration("interval", cfg.Interval))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := m.Run(ctx, cfg.Interval); err != nil {
		return fmt.Errorf("%d entities still live: %w", m.Len(), err)
	}
	return nil
}

func tickN(m *ecs.Manager, n int) error {
	for range n {
		if err := m.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
