package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/lustrous/internal/application/game"
	"github.com/younwookim/lustrous/internal/application/scene"
	"github.com/younwookim/lustrous/internal/application/scene/playing"
	"github.com/younwookim/lustrous/internal/application/scene/title"
	"github.com/younwookim/lustrous/internal/domain/dialogue"
	"github.com/younwookim/lustrous/internal/infrastructure/assets"
	"github.com/younwookim/lustrous/internal/infrastructure/config"
	"github.com/younwookim/lustrous/internal/infrastructure/tilemap"
	"github.com/younwookim/lustrous/internal/logger"
)

func main() {
	overrides := config.RegisterFlags(flag.CommandLine)
	recordPath := flag.String("record", "", "Record input to file (e.g., -record replay.json); \"auto\" picks a timestamped name")
	replayPath := flag.String("replay", "", "Play back a recorded input file instead of reading the keyboard")
	flag.Parse()

	fsys, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open embedded assets: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(fsys, overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, fsys, recordFile(*recordPath), *replayPath); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
}

// loadConfig reads the embedded game.yaml, then the user file, then flags
func loadConfig(fsys fs.FS, o *config.Overrides) (*config.GameConfig, error) {
	configs, err := fs.Sub(fsys, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(configs, "configs").LoadGame(config.DefaultFile)
	if err != nil {
		return nil, err
	}
	if o.ConfigPath != "" {
		if err := config.MergeFile(cfg, o.ConfigPath); err != nil {
			return nil, err
		}
	}
	o.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cfg *config.GameConfig, fsys fs.FS, recordPath, replayPath string) error {
	lib := assets.NewLibrary(fsys)
	mixer := assets.NewMixer(fsys, cfg.Audio.SampleRate)

	music, err := mixer.LoadMusic(cfg.Audio.Theme, cfg.Audio.MusicVolume)
	if err != nil {
		return err
	}
	textBlip, err := mixer.LoadSound(cfg.Audio.TextBlip, cfg.Audio.EffectVolume)
	if err != nil {
		return err
	}
	selectBlip, err := mixer.LoadSound(cfg.Audio.SelectBlip, cfg.Audio.EffectVolume)
	if err != nil {
		return err
	}

	world, err := tilemap.Load(fsys, cfg.Map.File)
	if err != nil {
		return err
	}
	script, err := dialogue.LoadFile(fsys, cfg.Script.File)
	if err != nil {
		return err
	}
	logger.Info("assets loaded",
		zap.String("map", cfg.Map.File),
		zap.Strings("scenes", script.Labels()))

	input, rec, err := inputSource(replayPath, recordPath, cfg.Map.File)
	if err != nil {
		return err
	}

	var (
		titleScene *title.Title
		playScene  *playing.Playing
	)
	playScene = playing.New(playing.Deps{
		Config:   cfg,
		Map:      world,
		Script:   script,
		Input:    input,
		Music:    music,
		Blip:     textBlip,
		Library:  lib,
		Renderer: tilemap.NewRenderer(world, fsys),
		ToTitle:  func() scene.Scene { return titleScene },
	})
	titleScene = title.New(cfg, lib, input, selectBlip, func() scene.Scene { return playScene })

	g := game.New(titleScene, cfg.Window.Width, cfg.Window.Height)
	g.SetDT(1.0 / float64(cfg.Window.TPS))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	err = ebiten.RunGame(g)
	saveRecording(rec, recordPath)
	return err
}
