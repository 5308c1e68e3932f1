// Package playing provides the overworld scene: the intro, free roaming
// on the map, dialogue and the pause screen.
package playing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/younwookim/lustrous/internal/application/scene"
	"github.com/younwookim/lustrous/internal/application/state"
	"github.com/younwookim/lustrous/internal/application/system"
	"github.com/younwookim/lustrous/internal/application/ui"
	"github.com/younwookim/lustrous/internal/domain/dialogue"
	"github.com/younwookim/lustrous/internal/domain/entity"
	"github.com/younwookim/lustrous/internal/infrastructure/assets"
	"github.com/younwookim/lustrous/internal/infrastructure/config"
	"github.com/younwookim/lustrous/internal/infrastructure/tilemap"
	"github.com/younwookim/lustrous/internal/logger"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// dialogueKind says what the textbox is playing
type dialogueKind int

const (
	dialogueNone    dialogueKind = iota
	dialogueRoaming              // toggled with F2, plays the story reader
	dialogueScene                // opened from an event region or an NPC
)

// Deps are the loaded resources the scene runs on
type Deps struct {
	Config *config.GameConfig
	Map    *tilemap.Map
	Script *dialogue.Script
	Input  system.InputSource
	Music  assets.Music
	Blip   assets.Sound

	// Library and Renderer are only used for drawing; nil skips textures
	Library  *assets.Library
	Renderer *tilemap.Renderer

	// ToTitle returns the scene F3 switches to while paused
	ToTitle func() scene.Scene
}

// sprite is a sheet of frameW x frameH cells, one row per facing
type sprite struct {
	img  *ebiten.Image
	w, h int
}

// Playing is the overworld scene
type Playing struct {
	cfg      *config.GameConfig
	world    *tilemap.Map
	renderer *tilemap.Renderer
	script   *dialogue.Script
	input    system.InputSource
	music    assets.Music
	toTitle  func() scene.Scene

	state    state.GameState
	player   *entity.Player
	npcs     []*entity.NPC
	book     *entity.NPC
	movement *system.MovementSystem
	last     system.FrameResult

	// reader is the story: Intro, then the first scene on repeat
	reader    *dialogue.Reader
	textbox   *ui.Textbox
	introBox  *ui.Textbox
	dialogue  dialogueKind
	talkingTo *entity.NPC

	fader *ui.Fader
	pause *ui.PauseScreen
	debug bool

	bgLayer tilemap.Layer
	bgTimer float64
	cam     entity.Vec // world position of the screen's top-left corner

	screenW int
	screenH int

	playerSprite  sprite
	npcSprites    []sprite // parallel to cfg.NPCs
	portraits     map[string]*ebiten.Image
	bookImg       *ebiten.Image
	introPortrait *ebiten.Image
}

// New creates the overworld scene. The scene is reset every time it is entered.
func New(d Deps) *Playing {
	cfg := d.Config
	p := &Playing{
		cfg:        cfg,
		world:      d.Map,
		renderer:   d.Renderer,
		script:     d.Script,
		input:      d.Input,
		music:      d.Music,
		toTitle:    d.ToTitle,
		movement:   system.NewMovementSystem(system.NewCollisionSystem(d.Map), d.Map.Contains),
		book:       entity.NewNPC("book", entity.Vec{}, 0),
		fader:      ui.NewFader(cfg.Fader.Duration, ui.FadeIn),
		debug:      cfg.Debug,
		screenW:    cfg.Window.Width,
		screenH:    cfg.Window.Height,
		npcSprites: make([]sprite, len(cfg.NPCs)),
		portraits:  make(map[string]*ebiten.Image),
	}

	var face, big text.Face
	if lib := d.Library; lib != nil {
		face = lib.Face(cfg.Textbox.FontSize)
		big = lib.Face(ui.FontBig)
		p.playerSprite = loadSprite(lib, cfg.Player.Sprite)
		for i, n := range cfg.NPCs {
			p.npcSprites[i] = loadSprite(lib, n.Sprite)
			if n.Portrait != "" {
				p.portraits[n.Name] = lib.Texture(n.Portrait, cfg.Textbox.PortraitSize, cfg.Textbox.PortraitSize)
			}
		}
		p.bookImg = lib.Texture(cfg.Intro.Book, entity.Tilesize, entity.Tilesize)
		if cfg.Intro.Portrait != "" {
			p.introPortrait = lib.Texture(cfg.Intro.Portrait, cfg.Textbox.PortraitSize, cfg.Textbox.PortraitSize)
		}
	}

	p.textbox = ui.NewTextbox(cfg.Textbox, p.screenW, p.screenH, face, nil, d.Blip)
	p.introBox = ui.NewTextbox(cfg.Textbox, p.screenW, p.screenH, face, p.introPortrait, d.Blip)
	p.pause = ui.NewPauseScreen(big, face)
	p.reset()
	return p
}

func loadSprite(lib *assets.Library, sc config.SpriteConfig) sprite {
	w, h := sc.FrameWidth, sc.FrameHeight
	if w <= 0 || h <= 0 {
		w, h = entity.Tilesize, entity.Tilesize
	}
	// four walk frames across, four facing rows down
	return sprite{img: lib.Texture(sc.Texture, w*entity.AnimationFrames, h*4), w: w, h: h}
}

// reset puts every actor back at its start and begins the intro
func (p *Playing) reset() {
	cfg := p.cfg
	p.player = entity.NewPlayer(cfg.Player.Start.Pos().Center(), cfg.Player.Speed)

	p.npcs = nil
	for _, nc := range cfg.NPCs {
		speed := nc.Speed
		if speed <= 0 {
			speed = entity.SpeedNormal
		}
		n := entity.NewNPC(nc.Name, nc.Start.Pos().Center(), speed, nc.Route...)
		if nc.StopCounter > 0 {
			n.SetStopCounter(nc.StopCounter)
		}
		n.SetScene(nc.Scene)
		p.npcs = append(p.npcs, n)
	}

	p.last = system.FrameResult{}
	p.dialogue = dialogueNone
	p.talkingTo = nil
	p.bgLayer = tilemap.Background1
	p.bgTimer = 0

	p.reader = p.openReader(cfg.Script.IntroScene)
	p.state = state.StateIntro
	p.introBox.Open(p.reader)
	if cfg.Intro.Skip {
		p.finishIntro()
	}
	p.updateCamera()
}

// openReader returns the reader for label, or an empty one when the
// script has no such scene
func (p *Playing) openReader(label string) *dialogue.Reader {
	r, err := p.script.Reader(label)
	if err != nil {
		logger.Warn("dialogue scene unavailable", zap.String("scene", label), zap.Error(err))
		return dialogue.NewReader(label, nil)
	}
	return r
}

func (p *Playing) finishIntro() {
	p.reader = p.openReader(p.cfg.Script.FirstScene)
	p.state = state.StatePlaying
	p.fader.Reset()
	logger.Info("intro finished", zap.String("next", p.reader.Label()))
}

// OnEnter starts a new game from the intro
func (p *Playing) OnEnter() {
	p.reset()
	if p.music != nil {
		p.music.Play()
	}
	logger.Info("game started", zap.Stringer("state", p.state))
}

// OnExit stops the music
func (p *Playing) OnExit() {
	if p.music != nil {
		p.music.Stop()
	}
}

// State returns the overworld's current state
func (p *Playing) State() state.GameState { return p.state }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in, ok := p.input.Poll()
	if !ok {
		logger.Info("input ended")
		return nil, ebiten.Termination
	}

	if in.ToggleDebug {
		p.debug = !p.debug
	}
	if in.Pause && p.state.CanPause() && p.fader.Complete() {
		p.togglePause()
	}

	switch p.state {
	case state.StatePaused:
		if in.ReturnToTitle && p.toTitle != nil {
			logger.Info("returning to title")
			return p.toTitle(), nil
		}
	case state.StateIntro:
		p.book.Patrol(dt)
		if p.introBox.Update(dt, in.Confirm) {
			p.finishIntro()
		}
	case state.StatePlaying:
		p.updatePlaying(dt, in)
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64, in system.InputState) {
	p.animateBackground(dt)
	p.fader.Update(dt)
	if !p.fader.Complete() {
		p.updateCamera()
		return
	}

	if in.ToggleDialogue {
		p.toggleRoaming()
	}

	if p.dialogue != dialogueNone {
		if p.textbox.Update(dt, in.Confirm) {
			p.closeDialogue()
		}
	} else {
		intents := system.Intents(in, p.cam)
		if !(wantsInteract(intents) && p.interact()) {
			p.last = p.movement.UpdatePlayer(p.player, intents, dt)
		}
	}

	for _, n := range p.npcs {
		p.movement.UpdateNPC(n, dt)
	}
	p.updateCamera()
}

func wantsInteract(intents []system.Intent) bool {
	for _, in := range intents {
		if _, ok := in.(system.InteractIntent); ok {
			return true
		}
	}
	return false
}

func (p *Playing) togglePause() {
	if p.state == state.StatePaused {
		p.state = state.StatePlaying
		if p.music != nil {
			p.music.Play()
		}
		logger.Info("game resumed")
		return
	}
	p.state = state.StatePaused
	if p.music != nil {
		p.music.Pause()
	}
	logger.Info("game paused")
}

// animateBackground alternates the two background layers
func (p *Playing) animateBackground(dt float64) {
	interval := p.cfg.Map.AnimationInterval
	if interval <= 0 {
		return
	}
	p.bgTimer += dt
	for p.bgTimer >= interval {
		p.bgTimer -= interval
		if p.bgLayer == tilemap.Background1 {
			p.bgLayer = tilemap.Background2
		} else {
			p.bgLayer = tilemap.Background1
		}
	}
}

func (p *Playing) toggleRoaming() {
	switch p.dialogue {
	case dialogueNone:
		p.textbox.SetPortrait(p.introPortrait)
		p.textbox.Open(p.reader)
		p.dialogue = dialogueRoaming
	case dialogueRoaming:
		p.dialogue = dialogueNone
	}
}

// interact opens the dialogue of the event region the player stands on,
// or of the NPC right in front of them
func (p *Playing) interact() bool {
	if ev := p.last.Event; ev != nil {
		if label := ev.Property(entity.SceneProperty, ""); label != "" {
			return p.openScene(label, nil)
		}
	}

	front := p.frontTile()
	for _, n := range p.npcs {
		if n.Scene() == "" || !n.Adjacent(p.player) || n.Tile() != front {
			continue
		}
		if p.openScene(n.Scene(), n) {
			n.StartTalk(p.player)
			return true
		}
	}
	return false
}

func (p *Playing) frontTile() entity.TilePos {
	t := p.player.Tile()
	dx, dy := p.player.Facing().Delta()
	return entity.TilePos{Col: t.Col + int(dx), Row: t.Row + int(dy)}
}

func (p *Playing) openScene(label string, npc *entity.NPC) bool {
	r, err := p.script.Reader(label)
	if err != nil {
		logger.Warn("no dialogue for scene", zap.String("scene", label), zap.Error(err))
		return false
	}

	var portrait *ebiten.Image
	if npc != nil {
		portrait = p.portraits[npc.Name()]
	}
	p.textbox.SetPortrait(portrait)
	p.textbox.Open(r)
	p.dialogue = dialogueScene
	p.talkingTo = npc
	logger.Debug("dialogue opened", zap.String("scene", label))
	return true
}

func (p *Playing) closeDialogue() {
	if p.dialogue == dialogueRoaming && p.reader.IsEmpty() {
		p.reader = p.openReader(p.cfg.Script.FirstScene)
	}
	if p.talkingTo != nil {
		p.talkingTo.EndTalk()
		p.talkingTo = nil
	}
	p.dialogue = dialogueNone
}

func (p *Playing) updateCamera() {
	half := entity.Vec{X: float64(p.screenW) / 2, Y: float64(p.screenH) / 2}
	p.cam = p.player.Position().Sub(half)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if p.state == state.StateIntro {
		ui.BlackScreen(screen)
		p.drawBook(screen)
		p.introBox.Draw(screen)
		p.drawDebug(screen)
		return
	}

	p.drawLayer(screen, p.bgLayer)
	p.drawLayer(screen, tilemap.Field)
	p.drawLayer(screen, tilemap.CollisionObjects)

	p.drawActor(screen, p.player.Actor, p.playerSprite)
	if p.fader.Complete() {
		for i, n := range p.npcs {
			p.drawActor(screen, n.Actor, p.npcSprites[i])
		}
	}

	p.drawLayer(screen, tilemap.Overlay)

	if p.debug {
		p.drawLayer(screen, tilemap.CollisionBoxes)
		p.drawLayer(screen, tilemap.EventLayer)
		ui.DrawRegions(screen, p.world.Objects(entity.CollisionLayer), p.cam, ui.ColorCollision)
		ui.DrawRegions(screen, p.world.Objects(entity.EventLayer), p.cam, ui.ColorEvent)
	}

	if p.dialogue != dialogueNone {
		p.textbox.Draw(screen)
	}
	p.fader.Draw(screen)
	if p.state == state.StatePaused {
		p.pause.Draw(screen)
	}
	p.drawDebug(screen)
}

func (p *Playing) drawLayer(screen *ebiten.Image, l tilemap.Layer) {
	if p.renderer != nil {
		p.renderer.DrawLayer(screen, l, p.cam)
	}
}

func (p *Playing) drawActor(screen *ebiten.Image, a *entity.Actor, s sprite) {
	if s.img == nil {
		return
	}
	frame := s.img.SubImage(a.TextureRect(s.w, s.h)).(*ebiten.Image)
	pos := a.Position().Sub(p.cam)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X-float64(s.w)/2, pos.Y-float64(s.h)/2)
	screen.DrawImage(frame, op)
}

// drawBook draws the hovering intro book in screen space
func (p *Playing) drawBook(screen *ebiten.Image) {
	if p.bookImg == nil {
		return
	}
	b := p.bookImg.Bounds()
	x := float64(p.screenW-b.Dx()) / 2
	y := float64(p.screenH)*p.cfg.Intro.BookY - float64(b.Dy())/2 + p.book.HoverOffset()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(p.bookImg, op)
}

func (p *Playing) drawDebug(screen *ebiten.Image) {
	if p.debug {
		ui.DrawDebug(screen, ebiten.ActualFPS(), p.player.Position())
	}
}
