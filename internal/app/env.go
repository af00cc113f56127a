package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/config"
	"github.com/bayaz-archive/bayaz/internal/logging"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
	"github.com/bayaz-archive/bayaz/internal/remote"
)

// Options configure the bayaz application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bayaz/prefs.toml
	PollEvery  int    // seconds; zero uses default
	Debug      bool
}

// Env is everything a bayaz command needs once configuration is resolved.
type Env struct {
	Config  config.Config
	Logger  *zap.Logger
	Client  *remote.Client // nil when no catalog service is configured
	Catalog *catalog.Catalog
	Lyrics  lyrics.Fetcher
}

// Setup loads configuration, opens the log, connects the catalog service
// when configured, and loads the catalog.
func Setup(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogDir, opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	env := &Env{Config: cfg, Logger: logger}
	if cfg.Remote() {
		client, err := remote.NewClient(cfg.APIURL)
		if err != nil {
			return nil, fmt.Errorf("init catalog client: %w", err)
		}
		env.Client = client
	}
	env.Lyrics = lyricsSource(env)

	cat, err := loadCatalog(ctx, env)
	if err != nil {
		logger.Error("catalog load failed", zap.Error(err))
		return nil, err
	}
	env.Catalog = cat
	logger.Info("catalog loaded",
		zap.Int("songs", cat.Len()),
		zap.Bool("remote", cfg.Remote()),
	)
	return env, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	if e != nil && e.Logger != nil {
		_ = e.Logger.Sync()
	}
}

// Loader returns a lyrics loader logging under the "lyrics" name.
func (e *Env) Loader() *lyrics.Loader {
	return lyrics.NewLoader(e.Lyrics, e.Logger.Named("lyrics"))
}

func loadCatalog(ctx context.Context, env *Env) (*catalog.Catalog, error) {
	if env.Client != nil {
		cat, err := env.Client.FetchSongs(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog from %s: %w", env.Config.APIURL, err)
		}
		return cat, nil
	}
	cat, err := catalog.LoadFile(env.Config.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// lyricsSource prefers the catalog service and falls back to the local
// lyrics directory.
func lyricsSource(env *Env) lyrics.Fetcher {
	if env.Client != nil {
		return env.Client.Lyrics()
	}
	return lyrics.NewDirStore(env.Config.LyricsDir)
}
