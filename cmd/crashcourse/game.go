package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/crashcourse"
	"github.com/oliverbestmann/crashcourse/physics"
)

const (
	tickRate = 60

	// the level is this many screens wide
	levelScreens = 4

	cellCactus = 1

	spawnInterval = tickRate
	cactusPenalty = 5

	runSpeed  = 160
	jumpSpeed = 320
)

// falling objects share a group and pass through each other
var objectFilter = physics.ShapeFilter{
	Group:      1,
	Categories: physics.DefaultShapeFilter.Categories,
	Mask:       physics.DefaultShapeFilter.Mask,
}

var colors = map[string]cp.FColor{
	crashcourse.LabelPlayer: {R: 0.2, G: 0.6, B: 1, A: 1},
	crashcourse.LabelObject: {R: 1, G: 0.8, B: 0.2, A: 1},
	crashcourse.LabelCactus: {G: 0.7, A: 1},
	crashcourse.LabelFloor:  {R: 0.6, G: 0.4, B: 0.2, A: 1},
}

type game struct {
	cfg    crashcourse.Config
	logger *slog.Logger

	space   *physics.Space
	manager *crashcourse.EventManager
	world   *crashcourse.WorldBuilder
	score   *crashcourse.Score
	sounds  *crashcourse.ObjectSounds

	player   *physics.Body
	grounded int

	// bodies to remove after the current step
	remove []*physics.Body

	ticks int
	rand  *rand.Rand
}

func newGame(cfg crashcourse.Config, bank crashcourse.SoundBank, logger *slog.Logger) (*game, error) {
	g := &game{
		cfg:    cfg,
		logger: logger,
		space: physics.NewSpace(cp.Vector{Y: -cfg.Gravity}),
		world: crashcourse.NewWorldBuilder(),
		score: &crashcourse.Score{},
		rand:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	g.space.SetLogger(logger)

	g.manager = crashcourse.NewEventManager(g.space,
		crashcourse.WithPairPolicy(cfg.PairPolicy),
		crashcourse.WithLogger(logger),
	)
	g.sounds = crashcourse.NewObjectSounds(g.score, bank)
	g.sounds.SetObjectVols()

	// the grid covers one screen and repeats for every screen of the level
	g.world.SetGrid(cfg.Canvas)
	g.world.OnObjectCollided(g.objectCollided)

	if err := g.buildLevel(); err != nil {
		return nil, err
	}

	if err := g.manager.RegisterObjectCollision(g.world, crashcourse.ObjectFloorCollision); err != nil {
		return nil, err
	}

	if err := g.manager.RegisterObjectCollision(g.world, crashcourse.PlayerCactusCollision); err != nil {
		return nil, err
	}

	sensor := crashcourse.NewActionTable("playerSensor").
		BindFunc("land", func() { g.grounded++ }).
		BindFunc("leave", func() { g.grounded = max(0, g.grounded-1) })

	g.manager.RegisterPlayerCollision(sensor, crashcourse.CollisionStart, "land")
	g.manager.RegisterPlayerCollision(sensor, crashcourse.CollisionEnd, "leave")

	return g, nil
}

func (g *game) levelWidth() float64 {
	return float64(g.world.Canvas().Width * levelScreens)
}

func (g *game) buildLevel() error {
	canvas := g.world.Canvas()
	width := g.levelWidth()

	g.space.AddBody(physics.Static, cp.Vector{},
		physics.ColliderOf(crashcourse.LabelFloor, physics.SegmentShape{
			A:      cp.Vector{X: 0, Y: crashcourse.BlockHeight},
			B:      cp.Vector{X: width, Y: crashcourse.BlockHeight},
			Radius: 1,
		}),
	)

	// walls keep the player inside the level
	for _, x := range []float64{0, width} {
		g.space.AddBody(physics.Static, cp.Vector{},
			physics.ColliderOf(crashcourse.LabelPlatform, physics.SegmentShape{
				A: cp.Vector{X: x},
				B: cp.Vector{X: x, Y: float64(canvas.Height)},
			}),
		)
	}

	// place cacti on the row just above the floor
	row := g.world.Rows() - 2
	for col := 6; col < g.world.Cols(); col += 9 {
		if err := g.world.Place(row, col, cellCactus); err != nil {
			return fmt.Errorf("place cactus: %w", err)
		}
	}

	grid, err := g.world.Grid()
	if err != nil {
		return err
	}

	canvasHeight := float64(canvas.Height)
	for screen := range levelScreens {
		offset := float64(screen * canvas.Width)

		for row, cells := range grid {
			for col, cell := range cells {
				if cell != cellCactus {
					continue
				}

				center := cp.Vector{
					X: offset + (float64(col)+0.5)*crashcourse.BlockWidth,
					Y: canvasHeight - (float64(row)+0.5)*crashcourse.BlockHeight,
				}

				g.space.AddBody(physics.Static, center,
					physics.ColliderOf(crashcourse.LabelCactus, physics.BoxShape{
						Width:  crashcourse.BlockWidth / 2,
						Height: crashcourse.BlockHeight,
					}),
				)
			}
		}
	}

	g.player = g.space.AddBody(physics.Dynamic, cp.Vector{X: 32, Y: 64},
		physics.ColliderOf(crashcourse.LabelPlayer, physics.BoxShape{Width: 12, Height: 24, Radius: 1}).WithFriction(0),
		physics.ColliderOf(crashcourse.LabelPlayerSensor, physics.SegmentShape{
			A:      cp.Vector{X: -5, Y: -13},
			B:      cp.Vector{X: 5, Y: -13},
			Radius: 1,
		}).AsSensor(),
	)

	// the player never tips over
	g.player.CP().SetMoment(math.Inf(1))

	g.logger.Info("Level built",
		slog.Int("rows", g.world.Rows()),
		slog.Int("cols", g.world.Cols()),
		slog.Int("bodies", g.space.Bodies()),
		slog.String("pairPolicy", g.manager.PairPolicy().String()),
	)

	return nil
}

func (g *game) objectCollided(notification crashcourse.CollisionNotification) {
	for _, pair := range notification.Pairs {
		if crashcourse.AnyOf(crashcourse.LabelCactus).Match(pair) {
			g.score.Penalize(cactusPenalty)
			continue
		}

		g.score.Add(1)

		// the object breaks on impact
		for _, body := range []crashcourse.Body{pair.BodyA, pair.BodyB} {
			if ref, ok := body.Ref.(*physics.Body); ok && body.Label == crashcourse.LabelObject {
				g.remove = append(g.remove, ref)
			}
		}
	}
}

func (g *game) spawnObject() {
	camera := g.camera()

	pos := cp.Vector{
		X: camera.X + g.rand.Float64()*float64(g.cfg.Canvas.Width),
		Y: float64(g.cfg.Canvas.Height) + 16,
	}

	g.space.AddBody(physics.Dynamic, pos,
		physics.ColliderOf(crashcourse.LabelObject, physics.CircleShape{Radius: 4 + g.rand.Float64()*4}).
			WithFilter(objectFilter),
	)
}

func (g *game) camera() cp.Vector {
	x := g.player.Position().X - float64(g.cfg.Canvas.Width)/2
	return cp.Vector{X: max(0, min(g.levelWidth()-float64(g.cfg.Canvas.Width), x))}
}

func (g *game) handleInput() {
	vel := g.player.Velocity()
	vel.X = 0

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		vel.X -= runSpeed
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		vel.X += runSpeed
	}

	jump := g.grounded > 0 && inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if jump {
		vel.Y = 0
	}

	g.player.SetVelocity(vel)

	if jump {
		g.player.ApplyImpulse(cp.Vector{Y: jumpSpeed * g.player.Mass()})
	}
}

func (g *game) Update() error {
	g.ticks++

	g.handleInput()

	if g.ticks%spawnInterval == 0 {
		g.spawnObject()
	}

	if err := g.space.Step(1.0 / tickRate); err != nil {
		g.logger.Warn("Collision dispatch failed", slog.String("error", err.Error()))
	}

	for _, body := range g.remove {
		g.space.RemoveBody(body)
	}

	g.remove = g.remove[:0]

	g.sounds.LoadObjectSounds()

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.space.DrawDebug(screen, g.camera(), colors)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("score %d", g.score.ShowPoints()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}
