package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelasco/roadready/internal/app"
	"github.com/avelasco/roadready/internal/config"
	"github.com/avelasco/roadready/internal/content"
	"github.com/avelasco/roadready/internal/insight"
	"github.com/avelasco/roadready/internal/ledger"
	"github.com/avelasco/roadready/internal/quiz"
	"github.com/avelasco/roadready/internal/srs"
	"github.com/avelasco/roadready/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "roadready",
	Short: "Driving theory exam trainer",
	Long:  "RoadReady — terminal trainer for the driving theory exam with spaced repetition and readiness prediction.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")
	rootCmd.PersistentFlags().String("db-path", "", "Path to SQLite database file (overrides ROADREADY_DB_PATH)")
	rootCmd.PersistentFlags().String("content-dir", "data", "Directory holding question collection JSON files")
	rootCmd.PersistentFlags().String("collection", "", "Question collection to study (default: last used)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// services bundles everything a command needs, wired in dependency
// order over one open store.
type services struct {
	cfg        config.Config
	st         *store.Store
	catalog    *content.Catalog
	ledger     *ledger.Ledger
	sched      *srs.Scheduler
	analyzer   *insight.Analyzer
	engine     *quiz.Engine
	collection string
}

func (s *services) Close() error {
	return s.st.Close()
}

// openServices resolves config, opens the store and content catalog and
// wires the domain services. The caller must Close the result.
func openServices(cmd *cobra.Command) (*services, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create DB directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	catalog, err := content.LoadCatalog(cfg.ContentDir)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load content: %w", err)
	}

	l := ledger.New(st)
	sched := srs.NewScheduler(st)
	analyzer := insight.New(catalog, l, sched)
	engine := quiz.NewEngine(catalog, l, sched, analyzer)
	engine.SetReviewLimit(cfg.ReviewLimit)

	collection, err := resolveCollection(cfg, st, catalog)
	if err != nil {
		st.Close()
		return nil, err
	}

	return &services{
		cfg:        cfg,
		st:         st,
		catalog:    catalog,
		ledger:     l,
		sched:      sched,
		analyzer:   analyzer,
		engine:     engine,
		collection: collection,
	}, nil
}

// resolveCollection picks the active collection: explicit config wins,
// then the last used one, then the first available. The choice is
// persisted for the next run.
func resolveCollection(cfg config.Config, st *store.Store, catalog *content.Catalog) (string, error) {
	available := catalog.Collections()
	if len(available) == 0 {
		return "", fmt.Errorf("no question collections in %s", cfg.ContentDir)
	}

	has := func(id string) bool {
		for _, c := range available {
			if c == id {
				return true
			}
		}
		return false
	}

	if cfg.Collection != "" {
		if !has(cfg.Collection) {
			return "", fmt.Errorf("unknown collection %q (available: %v)", cfg.Collection, available)
		}
		st.SetSelectedCollection(cfg.Collection)
		return cfg.Collection, nil
	}

	if last := st.SelectedCollection(); last != "" && has(last) {
		return last, nil
	}

	st.SetSelectedCollection(available[0])
	return available[0], nil
}

func runApp(cmd *cobra.Command) error {
	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	return app.Run(app.Options{
		Engine:         svc.engine,
		Catalog:        svc.catalog,
		Ledger:         svc.ledger,
		Analyzer:       svc.analyzer,
		Collection:     svc.collection,
		FlashcardCount: svc.cfg.FlashcardCount,
	})
}
