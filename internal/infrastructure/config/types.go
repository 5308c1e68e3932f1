package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/lustrous/internal/domain/entity"
)

// GameConfig is the root of game.yaml
type GameConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	NPCs    []NPCConfig   `yaml:"npcs"`
	Map     MapConfig     `yaml:"map"`
	Script  ScriptConfig  `yaml:"script"`
	Intro   IntroConfig   `yaml:"intro"`
	Textbox TextboxConfig `yaml:"textbox"`
	Title   TitleConfig   `yaml:"title"`
	Fader   FaderConfig   `yaml:"fader"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   bool          `yaml:"debug"` // start with the debug overlay on
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// TileConfig addresses a map tile
type TileConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Pos converts to the domain tile type
func (t TileConfig) Pos() entity.TilePos {
	return entity.TilePos{Col: t.Col, Row: t.Row}
}

// SpriteConfig describes an actor sprite sheet
type SpriteConfig struct {
	Texture     string `yaml:"texture"`
	FrameWidth  int    `yaml:"frameWidth"`
	FrameHeight int    `yaml:"frameHeight"`
}

type PlayerConfig struct {
	Sprite SpriteConfig `yaml:"sprite"`
	Start  TileConfig   `yaml:"start"`
	Speed  float64      `yaml:"speed"` // world units per second
}

// NPCConfig places one NPC. Route legs are walked in order and repeat.
type NPCConfig struct {
	Name        string             `yaml:"name"`
	Sprite      SpriteConfig       `yaml:"sprite"`
	Start       TileConfig         `yaml:"start"`
	Speed       float64            `yaml:"speed"`
	Route       []entity.Direction `yaml:"route"`
	StopCounter int                `yaml:"stopCounter"` // ticks per route leg
	Scene       string             `yaml:"scene"`       // dialogue played when talked to
	Portrait    string             `yaml:"portrait"`
}

type MapConfig struct {
	File              string  `yaml:"file"`
	AnimationInterval float64 `yaml:"animationInterval"` // seconds between background frames
}

type ScriptConfig struct {
	File       string `yaml:"file"`
	IntroScene string `yaml:"introScene"`
	FirstScene string `yaml:"firstScene"` // played after the intro runs out
}

type IntroConfig struct {
	Book     string  `yaml:"book"`
	Portrait string  `yaml:"portrait"`
	Skip     bool    `yaml:"skip"`
	BookY    float64 `yaml:"bookY"` // fraction of screen height
}

type TextboxConfig struct {
	RevealInterval float64 `yaml:"revealInterval"` // seconds per character
	HeightRatio    float64 `yaml:"heightRatio"`    // box height as a fraction of the screen
	Margin         int     `yaml:"margin"`
	PortraitSize   int     `yaml:"portraitSize"`
	FontSize       float64 `yaml:"fontSize"`
}

type TitleConfig struct {
	Background string  `yaml:"background"`
	Logo       string  `yaml:"logo"`
	Cursor     string  `yaml:"cursor"`
	PanSpeed   float64 `yaml:"panSpeed"` // background scroll, units per second
	FontSize   float64 `yaml:"fontSize"`
}

type FaderConfig struct {
	Duration float64 `yaml:"duration"` // seconds
}

type AudioConfig struct {
	SampleRate   int     `yaml:"sampleRate"`
	Theme        string  `yaml:"theme"`
	TextBlip     string  `yaml:"textBlip"`
	SelectBlip   string  `yaml:"selectBlip"`
	MusicVolume  float64 `yaml:"musicVolume"`
	EffectVolume float64 `yaml:"effectVolume"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks values the game cannot run without
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps %d must be positive", c.Window.TPS))
	}
	if c.Map.File == "" {
		errs = append(errs, errors.New("map.file is required"))
	}
	if c.Script.File == "" || c.Script.IntroScene == "" {
		errs = append(errs, errors.New("script.file and script.introScene are required"))
	}
	if c.Textbox.RevealInterval < 0 {
		errs = append(errs, fmt.Errorf("textbox.revealInterval %v must not be negative", c.Textbox.RevealInterval))
	}
	if c.Textbox.HeightRatio <= 0 || c.Textbox.HeightRatio > 1 {
		errs = append(errs, fmt.Errorf("textbox.heightRatio %v must be in (0,1]", c.Textbox.HeightRatio))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sampleRate %d must be positive", c.Audio.SampleRate))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed %v must be positive", c.Player.Speed))
	}
	for _, n := range c.NPCs {
		if n.Name == "" {
			errs = append(errs, errors.New("npc without a name"))
		}
		for _, d := range n.Route {
			if d == entity.None {
				errs = append(errs, fmt.Errorf("npc %s: route leg cannot be none", n.Name))
			}
		}
	}
	return errors.Join(errs...)
}
