package brickbreaker

import "math"

// Snapshot is a flat copy of the simulation state used for determinism
// checks and the headless simulator report.
type Snapshot struct {
	Tick      uint64
	Score     int
	BallsLost int
	PaddleX   float64
	Speed     float64

	// Each ball is 4 floats: X, Y, DX, DY
	BallData []float64

	// Brick states in column-major order, each is Status*16 + Blink
	BrickData []int
}

// Snapshot returns the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(s.balls)*4)
	for _, b := range s.balls {
		ballData = append(ballData, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}

	brickData := make([]int, 0, s.grid.Total())
	s.grid.Each(func(b *Brick) {
		brickData = append(brickData, int(b.Status)*16+b.Blink)
	})

	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		BallsLost: s.ballsLost,
		PaddleX:   s.paddle.X,
		Speed:     s.speed,
		BallData:  ballData,
		BrickData: brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsLost) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.Speed)

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
