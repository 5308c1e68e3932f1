package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/lustrous/internal/domain/entity"
)

// DefaultFile is the config file name looked up by LoadGame
const DefaultFile = "game.yaml"

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{Width: 800, Height: 600, Title: "Lustrous Legacy (Prototype)", TPS: 60},
		Player: PlayerConfig{
			Sprite: SpriteConfig{Texture: "textures/player.png", FrameWidth: entity.Tilesize, FrameHeight: entity.Tilesize},
			Start:  TileConfig{Col: 5, Row: 5},
			Speed:  entity.SpeedNormal,
		},
		Map:    MapConfig{File: "maps/start.tmx", AnimationInterval: 0.8},
		Script: ScriptConfig{File: "script/scenes.txt", IntroScene: "Intro", FirstScene: "Scene1"},
		Intro:  IntroConfig{Book: "textures/book.png", Portrait: "textures/face_warren.png", BookY: 0.3},
		Textbox: TextboxConfig{
			RevealInterval: 0.03,
			HeightRatio:    0.3,
			Margin:         25,
			PortraitSize:   128,
			FontSize:       18,
		},
		Title: TitleConfig{
			Background: "textures/title.png",
			Logo:       "textures/logo.png",
			Cursor:     "textures/cursor.png",
			PanSpeed:   20,
			FontSize:   24,
		},
		Fader: FaderConfig{Duration: 1.5},
		Audio: AudioConfig{
			SampleRate:   44100,
			Theme:        "audio/theme.wav",
			TextBlip:     "audio/text_blip.wav",
			SelectBlip:   "audio/select_blip.wav",
			MusicVolume:  0.5,
			EffectVolume: 0.15,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Loader reads YAML configuration through an fs.FS
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a loader rooted at a directory on disk
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a loader over fsys, e.g. embedded assets
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame reads name on top of Default
func (l *Loader) LoadGame(name string) (*GameConfig, error) {
	cfg := Default()
	if err := l.Merge(cfg, name); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge decodes name over cfg; keys missing from the file keep their value
func (l *Loader) Merge(cfg *GameConfig, name string) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", l.describe(name), err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", l.describe(name), err)
	}
	return nil
}

func (l *Loader) describe(name string) string {
	if l.basePath == "" || l.basePath == "." {
		return name
	}
	return l.basePath + "/" + name
}

// MergeFile decodes a YAML file on disk over cfg
func MergeFile(cfg *GameConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
