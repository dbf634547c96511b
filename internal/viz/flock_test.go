package viz

import (
	"math"
	"testing"
)

func TestFlockStepPanicsBelowTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("flockStep on one boid did not panic")
		}
	}()
	flockStep([]Boid{{}}, 100, 100, NewRand(1))
}

func TestFlockStepAgesAndMoves(t *testing.T) {
	// Far enough apart that the randomized separation rule cannot fire.
	boids := []Boid{
		{Point: Point{X: 100}, VX: 1},
		{Point: Point{X: -100}, VX: -1},
	}
	flockStep(boids, 1000, 1000, NewRand(1))

	for i := range boids {
		if boids[i].Age != 1 {
			t.Fatalf("boid %d age = %d, want 1", i, boids[i].Age)
		}
	}
	// Cohesion pulls the pair toward each other.
	if boids[0].VX >= 1 {
		t.Fatalf("cohesion did not pull boid 0 inward: vx = %v", boids[0].VX)
	}
	if boids[1].VX <= -1 {
		t.Fatalf("cohesion did not pull boid 1 inward: vx = %v", boids[1].VX)
	}
}

func TestFlockStepClampsSpeed(t *testing.T) {
	w, h := 600.0, 600.0
	maxSpeed := math.Min(w, h) / FlockSpeedDiv
	boids := []Boid{
		{VX: 500, VY: 500, VZ: 500},
		{Point: Point{X: 50, Y: 50}},
	}
	flockStep(boids, w, h, NewRand(1))

	speed := Vec3{boids[0].VX, boids[0].VY, boids[0].VZ}.Len()
	if speed > maxSpeed+1e-9 {
		t.Fatalf("speed %v above clamp %v", speed, maxSpeed)
	}
}

func TestFlockStepBounces(t *testing.T) {
	w, h := 400.0, 400.0
	// Both boids outside the right bound, still heading out.
	boids := []Boid{
		{Point: Point{X: w/2 + 10}, VX: 3},
		{Point: Point{X: w/2 + 50, Y: 120}, VX: 3},
	}
	flockStep(boids, w, h, NewRand(1))

	if boids[0].VX >= 0 {
		t.Fatalf("boid exiting +x kept vx = %v", boids[0].VX)
	}
}

func TestFlockStepDeterministic(t *testing.T) {
	mk := func() []Boid {
		return []Boid{
			{Point: Point{X: 10, Y: 5}, VX: 1},
			{Point: Point{X: -20, Y: 8}, VY: -1},
			{Point: Point{Z: 30}, VZ: 0.5},
		}
	}
	a, b := mk(), mk()
	flockStep(a, 800, 600, NewRand(99))
	flockStep(b, 800, 600, NewRand(99))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at boid %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
