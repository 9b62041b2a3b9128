package breakout

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/breakout/internal/core"
)

// testInput is a scripted core.Input.
type testInput struct {
	down    map[core.Key]bool
	pressed map[core.Key]bool
}

func noInput() testInput {
	return testInput{}
}

func held(keys ...core.Key) testInput {
	in := testInput{down: make(map[core.Key]bool)}
	for _, k := range keys {
		in.down[k] = true
	}
	return in
}

func pressed(k core.Key) testInput {
	return testInput{
		down:    map[core.Key]bool{k: true},
		pressed: map[core.Key]bool{k: true},
	}
}

func (in testInput) IsKeyDown(k core.Key) bool    { return in.down[k] }
func (in testInput) IsKeyPressed(k core.Key) bool { return in.pressed[k] }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     12345,
	}
}

// playingGame returns a game already in the playing state with no balls.
func playingGame() *Game {
	g := New(testConfig())
	g.state = StatePlaying
	g.balls = g.balls[:0]
	return g
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := New(testConfig())

	if g.Phase() != StateMenu {
		t.Errorf("initial state = %s, expected menu", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("initial score = %d, expected 0", g.Score())
	}
	if got := len(g.Blocks()); got != GridCols*GridRows {
		t.Errorf("initial blocks = %d, expected %d", got, GridCols*GridRows)
	}
	if got := len(g.Balls()); got != 1 {
		t.Errorf("initial balls = %d, expected 1", got)
	}
}

func TestStartFromMenu(t *testing.T) {
	g := New(testConfig())

	result := g.Step(pressed(core.KeySpace), 1.0/60)

	if g.Phase() != StatePlaying {
		t.Fatalf("state after Space = %s, expected playing", g.Phase())
	}
	if result.State.Score != 0 || result.State.Lives != PlayerLives || result.State.GameOver {
		t.Errorf("unexpected state summary: %+v", result.State)
	}
	if len(g.Blocks()) != 36 {
		t.Errorf("blocks = %d, expected 36", len(g.Blocks()))
	}

	balls := g.Balls()
	if len(balls) != 1 {
		t.Fatalf("balls = %d, expected 1", len(balls))
	}
	ball := balls[0]
	if ball.Rect.X != 400 || ball.Rect.Y != 300 {
		t.Errorf("ball at (%v, %v), expected screen center (400, 300)", ball.Rect.X, ball.Rect.Y)
	}
	if math.Abs(ball.Vel.Len()-1) > 1e-9 {
		t.Errorf("ball velocity length = %v, expected 1", ball.Vel.Len())
	}
	if ball.Vel.Y <= 0 {
		t.Errorf("ball velocity Y = %v, expected downward", ball.Vel.Y)
	}
}

func TestMenuIgnoresMovement(t *testing.T) {
	g := New(testConfig())
	before := g.Player().Rect.X

	g.Step(held(core.KeyRight), 0.5)

	if g.Player().Rect.X != before {
		t.Error("paddle should not move in the menu")
	}
	if g.Balls()[0].Rect.Y != 300 {
		t.Error("ball should not move in the menu")
	}
}

func TestGridLayout(t *testing.T) {
	g := New(testConfig())
	blocks := g.Blocks()

	first := blocks[0].Rect
	if first.X != 85 || first.Y != 50 {
		t.Errorf("first block at (%v, %v), expected (85, 50)", first.X, first.Y)
	}
	last := blocks[len(blocks)-1].Rect
	if last.X != 610 || last.Y != 275 {
		t.Errorf("last block at (%v, %v), expected (610, 275)", last.X, last.Y)
	}
	for i, b := range blocks {
		if b.Lives != BlockLives {
			t.Errorf("block %d lives = %d, expected %d", i, b.Lives, BlockLives)
		}
	}
}

func TestPlayerStaysOnScreen(t *testing.T) {
	inputs := map[string]testInput{
		"none":  noInput(),
		"left":  held(core.KeyLeft),
		"right": held(core.KeyRight),
		"both":  held(core.KeyLeft, core.KeyRight),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			g := playingGame()
			for _, dt := range []float64{0.016, 0.1, 1, 5} {
				g.Step(in, dt)
				x := g.Player().Rect.X
				if x < 0 || x > 800-PlayerW {
					t.Fatalf("paddle x = %v outside [0, %v] after dt=%v", x, 800-PlayerW, dt)
				}
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	g := playingGame()
	start := g.Player().Rect.X

	g.Step(held(core.KeyLeft), 0.1)
	if got := g.Player().Rect.X; got != start-70 {
		t.Errorf("left: x = %v, expected %v", got, start-70)
	}

	g.Step(held(core.KeyLeft, core.KeyRight), 0.1)
	if got := g.Player().Rect.X; got != start-70 {
		t.Errorf("both keys should cancel out, x = %v", got)
	}

	g.Step(held(core.KeyRight), 0.2)
	if got := g.Player().Rect.X; got != start+70 {
		t.Errorf("right: x = %v, expected %v", got, start+70)
	}
}

func TestBallReversesAtSideWalls(t *testing.T) {
	g := playingGame()
	g.balls = append(g.balls,
		Ball{Rect: core.NewRect(2, 340, BallSize, BallSize), Vel: core.Vec2{X: -0.6, Y: 0.8}},
		Ball{Rect: core.NewRect(745, 340, BallSize, BallSize), Vel: core.Vec2{X: 0.6, Y: 0.8}},
	)

	g.Step(noInput(), 0.1)

	balls := g.Balls()
	if balls[0].Rect.X >= 0 || balls[0].Vel.X <= 0 {
		t.Errorf("left ball: x=%v vx=%v, expected x<0 and vx>0", balls[0].Rect.X, balls[0].Vel.X)
	}
	if balls[1].Rect.X <= 800-BallSize || balls[1].Vel.X >= 0 {
		t.Errorf("right ball: x=%v vx=%v, expected past edge and vx<0", balls[1].Rect.X, balls[1].Vel.X)
	}
}

func TestBlockTakesTwoHits(t *testing.T) {
	g := playingGame()
	g.blocks = []Block{
		NewBlock(core.Vec2{X: 100, Y: 100}),
		NewBlock(core.Vec2{X: 600, Y: 100}),
	}

	// Ball overlapping the bottom of the first block, moving up
	hit := func() {
		g.balls = []Ball{{Rect: core.NewRect(120, 132, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: -1}}}
		g.Step(noInput(), 0)
	}

	hit()
	if g.blocks[0].Lives != 1 {
		t.Fatalf("lives after first hit = %d, expected 1", g.blocks[0].Lives)
	}
	if g.Score() != 0 {
		t.Errorf("score after first hit = %d, expected 0", g.Score())
	}
	if g.Balls()[0].Vel.Y <= 0 {
		t.Error("ball should bounce downward off the block bottom")
	}

	hit()
	if len(g.Blocks()) != 1 {
		t.Fatalf("blocks after second hit = %d, expected 1", len(g.Blocks()))
	}
	if g.Score() != BlockPoints {
		t.Errorf("score after second hit = %d, expected %d", g.Score(), BlockPoints)
	}
	if g.Phase() != StatePlaying {
		t.Errorf("state = %s, expected playing while blocks remain", g.Phase())
	}
}

func TestDeadBlockIsNotScoredTwice(t *testing.T) {
	g := playingGame()
	g.blocks = []Block{
		{Rect: core.NewRect(100, 100, BlockW, BlockH), Lives: 1},
		NewBlock(core.Vec2{X: 600, Y: 100}),
	}
	// Two balls hit the same block in one frame
	g.balls = []Ball{
		{Rect: core.NewRect(110, 132, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: -1}},
		{Rect: core.NewRect(140, 132, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: -1}},
	}

	g.Step(noInput(), 0)

	if g.Score() != BlockPoints {
		t.Errorf("score = %d, expected %d", g.Score(), BlockPoints)
	}
	if g.Balls()[1].Rect.Y != 132 {
		t.Error("second ball should pass through the destroyed block")
	}
}

func TestLosingLastBall(t *testing.T) {
	g := playingGame()
	g.balls = []Ball{{Rect: core.NewRect(400, 600, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: 1}}}

	g.Step(noInput(), 0)

	if len(g.Balls()) != 0 {
		t.Fatalf("balls = %d, expected the lost ball removed", len(g.Balls()))
	}
	if g.Player().Lives != PlayerLives-1 {
		t.Errorf("lives = %d, expected %d", g.Player().Lives, PlayerLives-1)
	}
	if g.Phase() != StatePlaying {
		t.Errorf("state = %s, expected playing", g.Phase())
	}

	g.player.Lives = 1
	g.balls = []Ball{{Rect: core.NewRect(400, 650, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: 1}}}
	result := g.Step(noInput(), 0)

	if g.Player().Lives != 0 {
		t.Errorf("lives = %d, expected 0", g.Player().Lives)
	}
	if g.Phase() != StateDead {
		t.Errorf("state = %s, expected dead", g.Phase())
	}
	if !result.State.GameOver {
		t.Error("dead state should be reported as game over")
	}
}

func TestLosingOneOfSeveralBalls(t *testing.T) {
	tests := []struct {
		name  string
		balls []Ball
	}{
		{
			name: "one of two lost",
			balls: []Ball{
				{Rect: core.NewRect(400, 600, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: 1}},
				{Rect: core.NewRect(400, 350, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: 1}},
			},
		},
		{
			name: "two lost together",
			balls: []Ball{
				{Rect: core.NewRect(400, 600, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: 1}},
				{Rect: core.NewRect(100, 640, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: 1}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := playingGame()
			g.balls = tc.balls

			g.Step(noInput(), 0)

			if g.Player().Lives != PlayerLives {
				t.Errorf("lives = %d, expected %d when more than one ball was in play", g.Player().Lives, PlayerLives)
			}
		})
	}
}

func TestDestroyingLastBlockCompletesLevel(t *testing.T) {
	g := playingGame()
	g.player.Lives = 1
	g.blocks = []Block{{Rect: core.NewRect(100, 100, BlockW, BlockH), Lives: 1}}
	g.balls = []Ball{
		{Rect: core.NewRect(120, 132, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: -1}},
		{Rect: core.NewRect(500, 350, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: 1}},
	}

	g.Step(noInput(), 0)

	if g.Phase() != StateLevelCompleted {
		t.Errorf("state = %s, expected level_completed", g.Phase())
	}
	if g.Score() != BlockPoints {
		t.Errorf("score = %d, expected %d", g.Score(), BlockPoints)
	}
}

func TestLevelCompletedOverridesDeathInSameFrame(t *testing.T) {
	g := playingGame()
	g.player.Lives = 1
	// Block near the bottom edge: the bounce pushes the only ball off screen
	g.blocks = []Block{{Rect: core.NewRect(100, 580, BlockW, BlockH), Lives: 1}}
	g.balls = []Ball{{Rect: core.NewRect(120, 590, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: -1}}}

	g.Step(noInput(), 0)

	if g.Player().Lives != 0 {
		t.Errorf("lives = %d, expected 0", g.Player().Lives)
	}
	if g.Phase() != StateLevelCompleted {
		t.Errorf("state = %s, expected level_completed", g.Phase())
	}
}

func TestSpaceSpawnsBallWhilePlaying(t *testing.T) {
	g := playingGame()

	g.Step(pressed(core.KeySpace), 0)
	g.Step(noInput(), 0)
	g.Step(pressed(core.KeySpace), 0)

	if len(g.Balls()) != 2 {
		t.Errorf("balls = %d, expected 2", len(g.Balls()))
	}
}

func TestResetFromTerminalStates(t *testing.T) {
	for _, terminal := range []State{StateDead, StateLevelCompleted} {
		t.Run(terminal.String(), func(t *testing.T) {
			g := playingGame()
			g.score = 120
			g.player.Lives = 0
			g.player.Rect.X = 0
			g.blocks = g.blocks[:3]
			g.balls = []Ball{{Rect: core.NewRect(10, 10, BallSize, BallSize), Vel: core.Vec2{X: 0, Y: 1}}}
			g.state = terminal

			// Held keys alone do nothing
			g.Step(held(core.KeyRight), 0.1)
			if g.Phase() != terminal {
				t.Fatalf("state changed without a Space press: %s", g.Phase())
			}

			g.Step(pressed(core.KeySpace), 0.1)

			if g.Phase() != StateMenu {
				t.Errorf("state = %s, expected menu", g.Phase())
			}
			if g.Score() != 0 {
				t.Errorf("score = %d, expected 0", g.Score())
			}
			if g.Player().Lives != PlayerLives {
				t.Errorf("lives = %d, expected %d", g.Player().Lives, PlayerLives)
			}
			if g.Player().Rect.X != 325 {
				t.Errorf("paddle x = %v, expected centered 325", g.Player().Rect.X)
			}
			if len(g.Blocks()) != 36 {
				t.Errorf("blocks = %d, expected 36", len(g.Blocks()))
			}
			if len(g.Balls()) != 0 {
				t.Errorf("balls = %d, expected 0", len(g.Balls()))
			}
		})
	}
}

func TestSameSeedSameBall(t *testing.T) {
	g1 := New(testConfig())
	g2 := New(testConfig())

	for range 5 {
		g1.SpawnBall()
		g2.SpawnBall()
	}

	for i := range g1.Balls() {
		if g1.Balls()[i].Vel != g2.Balls()[i].Vel {
			t.Fatalf("ball %d velocity differs between identical seeds", i)
		}
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		state State
		text  string
	}{
		{StateMenu, "Press SPACE to start"},
		{StatePlaying, "score: 0"},
		{StateLevelCompleted, "You win! Score: 0"},
		{StateDead, "You DIED! Score: 0"},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			g := New(testConfig())
			g.state = tc.state

			canvas := core.NewCanvas(core.NewScreen(80, 30), 10, 20)
			g.Draw(canvas)

			out := canvas.Screen().String()
			if !strings.Contains(out, tc.text) {
				t.Errorf("rendered screen does not contain %q", tc.text)
			}
		})
	}
}

func TestDrawPlayingShowsLives(t *testing.T) {
	g := playingGame()
	canvas := core.NewCanvas(core.NewScreen(80, 30), 10, 20)

	g.Draw(canvas)

	if row := canvas.Screen().Row(0); !strings.HasPrefix(row[3:], "lives: 3") {
		t.Errorf("HUD row = %q, expected lives at column 3", row)
	}
}

func TestBlockColors(t *testing.T) {
	canvas := core.NewCanvas(core.NewScreen(20, 5), 10, 20)

	full := NewBlock(core.Vec2{X: 0, Y: 0})
	full.Draw(canvas)
	if c := canvas.Screen().GetCell(0, 0).Color; c != core.ColorRed {
		t.Errorf("undamaged block color = %v, expected red", c)
	}

	damaged := Block{Rect: core.NewRect(100, 0, BlockW, BlockH), Lives: 1}
	damaged.Draw(canvas)
	if c := canvas.Screen().GetCell(10, 0).Color; c != core.ColorOrange {
		t.Errorf("damaged block color = %v, expected orange", c)
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateMenu:           "menu",
		StatePlaying:        "playing",
		StateLevelCompleted: "level_completed",
		StateDead:           "dead",
		State(42):           "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, expected %q", int(s), got, want)
		}
	}
}
