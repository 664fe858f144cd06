package session

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-bazaar/internal/config"
	"github.com/vovakirdan/brick-bazaar/internal/games/brickbreaker"
	"github.com/vovakirdan/brick-bazaar/internal/progression"
	"github.com/vovakirdan/brick-bazaar/internal/storage"
)

type harness struct {
	clock *ManualClock
	m     *Machine
	runs  *storage.Memory
	views []View
}

// winConfig places the only brick on the spawn point, so the first
// frame clears the grid.
func winConfig() config.BrickBreakerConfig {
	cfg := config.DefaultBrickBreakerConfig()
	cfg.Viewport = config.ViewportConfig{Width: 200, Height: 100}
	cfg.Bricks.Columns = 1
	cfg.Bricks.Rows = 1
	cfg.Bricks.OffsetTop = 45
	return cfg
}

// loseConfig has an unreachable brick and a tiny paddle; the single
// ball falls past the paddle on frame 31.
func loseConfig() config.BrickBreakerConfig {
	cfg := config.DefaultBrickBreakerConfig()
	cfg.Viewport = config.ViewportConfig{Width: 200, Height: 60}
	cfg.Paddle.Width = 10
	cfg.Bricks.Columns = 1
	cfg.Bricks.Rows = 1
	cfg.Bricks.OffsetTop = 1000
	return cfg
}

const framesToLose = 31

func newHarness(t *testing.T, cfg config.BrickBreakerConfig, setup func(*progression.Store)) *harness {
	t.Helper()
	h := &harness{clock: NewManualClock(), runs: storage.NewMemory()}

	store := progression.Load(storage.NewMemory(), log.New(io.Discard))
	if setup != nil {
		setup(store)
	}

	h.m = New(Options{
		Config:   cfg,
		Economy:  progression.NewEconomy(store, cfg.Economy),
		Frames:   h.clock,
		Timers:   h.clock,
		Renderer: RendererFunc(func(v View) { h.views = append(h.views, v) }),
		Recorder: h.runs,
		Player:   "tester",
		Logger:   log.New(io.Discard),
	})
	return h
}

func (h *harness) record() progression.Record {
	return h.m.Economy().Store().Record()
}

func (h *harness) lastView() View {
	return h.views[len(h.views)-1]
}

// run starts and plays through the countdown.
func (h *harness) run(t *testing.T) {
	t.Helper()
	h.m.Start()
	h.clock.Advance(3500 * time.Millisecond)
	if h.m.State() != StateRunning {
		t.Fatalf("State() = %v after countdown, expected running", h.m.State())
	}
}

func (h *harness) history(t *testing.T) []storage.RunRecord {
	t.Helper()
	runs, err := h.runs.TopRuns("tester", 100)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	return runs
}

func TestIdleRendersInitialLayout(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), nil)

	if h.m.State() != StateIdle {
		t.Errorf("State() = %v, expected idle", h.m.State())
	}
	if len(h.views) != 1 {
		t.Errorf("rendered %d views, expected 1", len(h.views))
	}
	if h.clock.PendingFrames() != 0 || h.clock.PendingTimers() != 0 {
		t.Error("idle machine should not schedule anything")
	}
	if v := h.lastView(); v.Sim.Grid().ActiveCount() != 300 || v.Balls != 1 {
		t.Errorf("initial view: %d bricks, %d balls", v.Sim.Grid().ActiveCount(), v.Balls)
	}
}

func TestCountdownSequence(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), nil)

	h.m.Start()
	if h.m.State() != StateCountdown || h.lastView().Countdown != "3" {
		t.Fatalf("after Start: %v %q, expected countdown \"3\"", h.m.State(), h.lastView().Countdown)
	}
	if h.record().TimesPlayed != 1 {
		t.Errorf("TimesPlayed = %d, expected 1", h.record().TimesPlayed)
	}

	for _, want := range []string{"2", "1", "GO!"} {
		h.clock.Advance(time.Second)
		if got := h.lastView().Countdown; got != want {
			t.Fatalf("countdown label = %q, expected %q", got, want)
		}
		if h.clock.PendingFrames() != 0 {
			t.Fatal("no frames may be requested during the countdown")
		}
	}

	h.clock.Advance(499 * time.Millisecond)
	if h.m.State() != StateCountdown {
		t.Fatalf("State() = %v before the GO delay elapsed", h.m.State())
	}

	h.clock.Advance(time.Millisecond)
	if h.m.State() != StateRunning {
		t.Fatalf("State() = %v, expected running", h.m.State())
	}
	if h.clock.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, expected 1", h.clock.PendingFrames())
	}
	if h.clock.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected countdown timers released", h.clock.PendingTimers())
	}
	if h.m.Sim().Tick() != 0 {
		t.Errorf("simulation stepped %d times during countdown", h.m.Sim().Tick())
	}
}

func TestRedundantStartAndRetryIgnored(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), nil)

	h.m.Retry()
	if h.m.State() != StateIdle {
		t.Fatalf("Retry() from idle changed state to %v", h.m.State())
	}

	h.m.Start()
	h.m.Start()
	h.m.Retry()
	if h.record().TimesPlayed != 1 {
		t.Errorf("TimesPlayed = %d, expected 1", h.record().TimesPlayed)
	}
	if h.clock.PendingTimers() != 1 {
		t.Errorf("PendingTimers() = %d, expected a single countdown", h.clock.PendingTimers())
	}

	h.clock.Advance(3500 * time.Millisecond)
	h.m.Start()
	if h.m.State() != StateRunning || h.record().TimesPlayed != 1 {
		t.Error("Start() while running should be ignored")
	}
}

func TestSingleOutstandingFrame(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), nil)
	h.run(t)

	for i := range 200 {
		if ran := h.clock.Frame(); ran != 1 {
			t.Fatalf("frame %d ran %d callbacks, expected 1", i, ran)
		}
		if h.m.State() != StateRunning {
			break
		}
		if h.clock.PendingFrames() != 1 {
			t.Fatalf("frame %d: PendingFrames() = %d, expected 1", i, h.clock.PendingFrames())
		}
	}
	if h.m.Sim().Tick() != 200 {
		t.Errorf("Tick() = %d, expected 200", h.m.Sim().Tick())
	}
}

func TestInputMovesPaddle(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), nil)
	h.run(t)

	h.m.SetInput(false, true)
	h.clock.Frames(10)
	if got := h.m.Sim().Paddle().X; got != 510 {
		t.Errorf("Paddle().X = %v, expected 510", got)
	}

	h.m.SetInput(true, true)
	h.clock.Frames(2)
	if got := h.m.Sim().Paddle().X; got != 520 {
		t.Errorf("Paddle().X = %v with both held, expected 520", got)
	}
}

func TestWinFiresOnce(t *testing.T) {
	h := newHarness(t, winConfig(), nil)
	h.run(t)

	h.clock.Frame()

	if h.m.State() != StateWon {
		t.Fatalf("State() = %v, expected won", h.m.State())
	}
	rec := h.record()
	if rec.Wins != 1 || rec.Balance != 1 || rec.BestScore != 1 {
		t.Errorf("record = %+v, expected 1 win, balance 1, best 1", rec)
	}
	if h.clock.PendingFrames() != 0 {
		t.Error("the frame loop must be released on win")
	}
	if v := h.lastView(); v.Message != MessageWon || v.State != StateWon {
		t.Errorf("last view = %q/%v, expected win overlay", v.Message, v.State)
	}

	h.clock.Frames(10)
	h.m.Debug(DebugForceWin)
	if h.record().Wins != 1 {
		t.Errorf("Wins = %d, expected exactly 1", h.record().Wins)
	}

	runs := h.history(t)
	if len(runs) != 1 || !runs[0].Won || runs[0].Score != 1 {
		t.Errorf("runs = %+v, expected one won run with score 1", runs)
	}
}

func TestLossFiresOnce(t *testing.T) {
	h := newHarness(t, loseConfig(), nil)
	h.run(t)

	h.clock.Frames(framesToLose - 1)
	if h.m.State() != StateRunning {
		t.Fatalf("State() = %v before the ball fell", h.m.State())
	}

	h.clock.Frame()
	if h.m.State() != StateLost {
		t.Fatalf("State() = %v, expected lost", h.m.State())
	}
	if h.clock.PendingFrames() != 0 {
		t.Error("the frame loop must be released on loss")
	}
	if h.lastView().Message != MessageLost {
		t.Errorf("Message = %q, expected %q", h.lastView().Message, MessageLost)
	}
	if h.record().Wins != 0 {
		t.Error("a loss must not count as a win")
	}

	runs := h.history(t)
	if len(runs) != 1 || runs[0].Won || runs[0].BallsLost != 1 {
		t.Errorf("runs = %+v, expected one lost run", runs)
	}
}

func TestRetryReseedsOwnedBallCount(t *testing.T) {
	h := newHarness(t, loseConfig(), nil)
	h.run(t)
	h.clock.Frames(framesToLose)
	if h.m.State() != StateLost {
		t.Fatalf("setup: State() = %v, expected lost", h.m.State())
	}

	h.m.Economy().Store().SetBallCount(3)
	h.m.Retry()

	if h.m.State() != StateCountdown {
		t.Fatalf("State() = %v after Retry, expected countdown", h.m.State())
	}
	sim := h.m.Sim()
	if sim.BallCount() != 3 {
		t.Errorf("BallCount() = %d, expected 3", sim.BallCount())
	}
	if sim.Score() != 0 || sim.BallsLost() != 0 {
		t.Errorf("score=%d lost=%d, expected fresh run", sim.Score(), sim.BallsLost())
	}
	if sim.Grid().ActiveCount() != sim.Grid().Total() {
		t.Error("grid should be all active after Retry")
	}
	if h.record().TimesPlayed != 2 {
		t.Errorf("TimesPlayed = %d, expected 2", h.record().TimesPlayed)
	}

	h.m.Retry()
	if h.record().TimesPlayed != 2 {
		t.Error("Retry() during countdown should be ignored")
	}
}

func TestExtraBallDuringRun(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), func(s *progression.Store) {
		s.SetBalance(1000)
	})
	h.run(t)
	h.clock.Frames(5)

	if !h.m.Purchase(config.ItemExtraBall) {
		t.Fatal("Purchase(extra_ball) should succeed")
	}

	rec := h.record()
	if rec.Balance != 0 || rec.BallCount != 2 {
		t.Errorf("record = %+v, expected balance 0 and 2 balls", rec)
	}
	balls := h.m.Sim().Balls()
	if len(balls) != 2 {
		t.Fatalf("live balls = %d, expected 2", len(balls))
	}
	added := balls[1]
	if added.Pos.X != 500 || added.Pos.Y != 590 || added.Vel.X != 1.5 || added.Vel.Y != -1.5 {
		t.Errorf("new ball = %+v, expected default spawn", added)
	}
}

func TestPurchaseAfterRunDoesNotTouchFinishedRun(t *testing.T) {
	h := newHarness(t, loseConfig(), func(s *progression.Store) {
		s.SetBalance(1000)
	})
	h.run(t)
	h.clock.Frames(framesToLose)

	if !h.m.Purchase(config.ItemExtraBall) {
		t.Fatal("Purchase(extra_ball) should succeed")
	}
	if h.m.Sim().BallCount() != 0 {
		t.Errorf("finished run got %d balls, expected 0", h.m.Sim().BallCount())
	}

	h.m.Retry()
	if h.m.Sim().BallCount() != 2 {
		t.Errorf("BallCount() after Retry = %d, expected 2", h.m.Sim().BallCount())
	}
}

func TestRejectedPurchaseIsSilent(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), func(s *progression.Store) {
		s.SetBalance(40)
	})
	before := len(h.views)

	if h.m.Purchase(config.ItemViewBalance) {
		t.Fatal("Purchase() with balance 40 should be rejected")
	}
	if len(h.views) != before {
		t.Error("rejected purchase should not re-render")
	}
	if h.record().Balance != 40 || h.record().ViewBalance {
		t.Errorf("record = %+v, expected untouched", h.record())
	}
}

func TestForceWinDuringRun(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), nil)
	h.run(t)
	h.clock.Frames(3)

	h.m.Debug(DebugForceWin)

	if h.m.State() != StateWon {
		t.Fatalf("State() = %v, expected won", h.m.State())
	}
	if h.m.Sim().Score() != 300 || !h.m.Sim().Grid().IsCleared() {
		t.Errorf("score=%d, expected cleared grid at 300", h.m.Sim().Score())
	}
	if h.record().Wins != 1 {
		t.Errorf("Wins = %d, expected 1", h.record().Wins)
	}
	if h.clock.PendingFrames() != 0 {
		t.Error("ForceWin must release the frame loop")
	}
}

func TestForceWinDuringCountdownStopsTimers(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), nil)
	h.m.Start()

	h.m.Debug(DebugForceWin)
	h.clock.Advance(10 * time.Second)

	if h.m.State() != StateWon {
		t.Errorf("State() = %v, expected won", h.m.State())
	}
	if h.clock.PendingTimers() != 0 || h.clock.PendingFrames() != 0 {
		t.Error("countdown must not resume after a forced win")
	}
}

func TestDebugOps(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), func(s *progression.Store) {
		s.SetBestScore(80)
		s.IncrementWins()
		s.IncrementTickles()
		s.SetBallCount(3)
		s.SetHighScore(true)
	})

	h.m.Debug(DebugAddBalance)
	if h.record().Balance != DebugGrant {
		t.Errorf("Balance = %d, expected %d", h.record().Balance, DebugGrant)
	}
	if !h.record().BazaarHint {
		t.Error("granted balance should reveal the bazaar hint")
	}

	for _, op := range []DebugOp{DebugClearRecord, DebugResetWins, DebugResetBalance, DebugResetTickles} {
		h.m.Debug(op)
	}
	rec := h.record()
	if rec.BestScore != 0 || rec.Wins != 0 || rec.Balance != 0 || rec.Tickles != 0 {
		t.Errorf("record = %+v, expected counters reset", rec)
	}

	if h.m.Sim().BallCount() != 3 {
		t.Fatalf("setup: idle run has %d balls, expected 3", h.m.Sim().BallCount())
	}
	h.m.Debug(DebugClearUpgrades)
	rec = h.record()
	if rec.BallCount != 1 || rec.HighScore || rec.BazaarHint || rec.PeruseHint {
		t.Errorf("record = %+v, expected upgrades cleared", rec)
	}
	if h.m.Sim().BallCount() != 1 {
		t.Errorf("idle run has %d balls after ClearUpgrades, expected 1", h.m.Sim().BallCount())
	}
}

func TestParseDebugOp(t *testing.T) {
	if op, err := ParseDebugOp(" Force-Win "); err != nil || op != DebugForceWin {
		t.Errorf("ParseDebugOp() = %q, %v", op, err)
	}
	if _, err := ParseDebugOp("godmode"); err == nil {
		t.Error("ParseDebugOp() should reject unknown ops")
	}
}

func TestTogglesAndTickle(t *testing.T) {
	h := newHarness(t, config.DefaultBrickBreakerConfig(), nil)

	h.m.ToggleBazaar()
	h.m.ToggleDebug()
	if v := h.lastView(); !v.BazaarOpen || !v.DebugOpen {
		t.Errorf("view = bazaar %v, debug %v, expected both open", v.BazaarOpen, v.DebugOpen)
	}
	h.m.ToggleBazaar()
	if h.lastView().BazaarOpen {
		t.Error("second ToggleBazaar() should close the bazaar")
	}

	if h.m.Tickle() {
		t.Error("Tickle() without Bricko should be ignored")
	}
	h.m.Economy().Store().SetBricko(true)
	if !h.m.Tickle() || h.record().Tickles != 1 {
		t.Error("Tickle() with Bricko should count")
	}
}

func TestActivate(t *testing.T) {
	h := newHarness(t, loseConfig(), nil)

	h.m.Activate()
	if h.m.State() != StateCountdown {
		t.Fatalf("Activate() from idle: %v, expected countdown", h.m.State())
	}
	h.m.Activate()
	if h.record().TimesPlayed != 1 {
		t.Error("Activate() during countdown should be ignored")
	}

	h.clock.Advance(3500 * time.Millisecond)
	h.clock.Frames(framesToLose)
	h.m.Activate()
	if h.m.State() != StateCountdown || h.record().TimesPlayed != 2 {
		t.Errorf("Activate() after loss: %v, played %d", h.m.State(), h.record().TimesPlayed)
	}
}

var _ progression.BallSpawner = (*brickbreaker.Simulation)(nil)
