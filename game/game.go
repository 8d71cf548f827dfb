package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Game owns the player, the live pickups and the level counter, and runs
// the sense -> move -> update -> render loop against a Device. Exactly one
// goroutine drives a Game; nothing here is locked.
type Game struct {
	dev Device
	rng Rand

	player  GameObject
	pickups []GameObject

	pickupAmount int
	levelStart   int64
}

// New builds a game against the given device. A nil rng gets a time-seeded
// source; tests pass their own to pin spawn positions.
func New(dev Device, rng Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		dev:          dev,
		rng:          rng,
		player:       newPlayer(),
		pickupAmount: FirstLevelPickups,
	}
}

// Setup runs the one-time startup check: the compass must be calibrated
// before headings mean anything.
func (g *Game) Setup() {
	if !g.dev.Compass.IsCalibrated() {
		g.dev.Compass.Calibrate()
	}
}

// StartLevel clears and respawns the pickups, puts the player back at the
// center (brightness is untouched), wipes the display and records the level
// start time.
func (g *Game) StartLevel() {
	g.spawnPickups(g.pickupAmount)
	g.player.Pos = Position{X: GridCenter, Y: GridCenter}
	g.dev.Display.Clear()
	g.levelStart = g.dev.Clock.NowMillis()
}

func (g *Game) spawnPickups(amount int) {
	g.pickups = g.pickups[:0]
	for i := 0; i < amount; i++ {
		// Two pickups may land on the same cell; that's allowed.
		g.pickups = append(g.pickups, newPickup(g.rng))
	}
}

// Facing returns the cardinal the wearer is currently pointing at.
func (g *Game) Facing() Direction {
	return FromHeading(g.dev.Compass.Heading())
}

func (g *Game) readInput() {
	dir := g.Facing()

	if ShouldMove(g.dev.Accel.X(), g.dev.Accel.Y(), g.dev.Accel.Z()) {
		g.player.Move(dir)
	}

	// B shows the facing label, A recalibrates. B wins if both were
	// pressed this tick.
	if g.dev.Buttons.WasPressed(ButtonB) {
		g.dev.Display.ScrollText(g.Facing().String(), ScrollDelayMillis)
	} else if g.dev.Buttons.WasPressed(ButtonA) {
		g.dev.Compass.Calibrate()
	}
}

// collect removes every pickup under the player. Coincident pickups all go
// in the same tick.
func (g *Game) collect() {
	kept := g.pickups[:0]
	for _, p := range g.pickups {
		if p.Pos != g.player.Pos {
			kept = append(kept, p)
		}
	}
	g.pickups = kept
}

func (g *Game) render() {
	g.dev.Display.Clear()
	for _, p := range g.pickups {
		draw(g.dev.Display, p)
	}
	// Player last, so an occupied cell always shows the player.
	draw(g.dev.Display, g.player)
}

// Over reports whether every pickup on the level has been collected.
func (g *Game) Over() bool {
	return len(g.pickups) == 0
}

// Tick runs one iteration of the running level: sense and maybe move,
// handle the buttons, resolve collisions, redraw.
func (g *Game) Tick() {
	g.readInput()
	g.collect()
	g.render()
}

func (g *Game) completeLevel() {
	elapsed := (g.dev.Clock.NowMillis() - g.levelStart) / 1000
	g.dev.Display.ScrollText(fmt.Sprintf("TIME:%d SECONDS.", elapsed), ScrollDelayMillis)
	g.pickupAmount++
}

// Run drives the level loop. The device has no off switch, so this never
// returns on real hardware; ctx is the injectable stop used by tests and by
// remote sessions, where a dropped connection is the power going out. The
// pacing sleep runs every tick regardless of branch.
func (g *Game) Run(ctx context.Context) {
	g.Setup()
	g.dev.Display.ScrollText(IntroText, ScrollDelayMillis)

	for {
		g.StartLevel()

		for !g.Over() {
			if ctx.Err() != nil {
				return
			}

			g.Tick()

			if g.Over() {
				g.completeLevel()
			}

			g.dev.Clock.SleepMillis(TickMillis)
		}

		if ctx.Err() != nil {
			return
		}
	}
}
