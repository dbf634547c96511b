package viz

// Boid is a visual point with a velocity and an age, used only by the
// RingSwaying strategy. Removed once Age reaches FlockAgeLimit.
type Boid struct {
	Point
	VX, VY, VZ float64
	Age        int
}

// flockStep advances one channel's population by the boids rules:
// cohesion, separation, alignment, speed clamp, edge bounce, then position
// and age. The population must hold at least two boids; a smaller set
// means the cold-start seeding invariant was broken.
func flockStep(boids []Boid, w, h float64, rng *Rand) {
	n := len(boids)
	if n < 2 {
		panic("viz: flock step on population below 2")
	}

	var sumPos, sumVel Vec3
	for i := range boids {
		sumPos = sumPos.Add(boids[i].Pos())
		sumVel = sumVel.Add(Vec3{boids[i].VX, boids[i].VY, boids[i].VZ})
	}

	minDim := w
	if h < minDim {
		minDim = h
	}
	sep := minDim / 12
	maxSpeed := minDim / FlockSpeedDiv
	others := float64(n - 1)

	for i := range boids {
		b := &boids[i]
		pos := b.Pos()
		vel := Vec3{b.VX, b.VY, b.VZ}

		// Cohesion: steer 5% toward the centroid of everyone else.
		centroid := sumPos.Sub(pos).Scale(1 / others)
		vel = vel.Add(centroid.Sub(pos).Scale(FlockCohesion))

		// Separation: push away from close neighbours; the trigger
		// distance is randomized per pair, scaled by screen size.
		for j := range boids {
			if j == i {
				continue
			}
			if pos.DistSq(boids[j].Pos()) < rng.Float64()*sep*sep {
				vel = vel.Sub(boids[j].Pos().Sub(pos))
			}
		}

		// Alignment: blend 1/100th of the gap to the mean velocity.
		avgVel := sumVel.Sub(Vec3{b.VX, b.VY, b.VZ}).Scale(1 / others)
		vel = vel.Add(avgVel.Sub(vel).Scale(1 / FlockAlignDiv))

		if speed := vel.Len(); speed > maxSpeed {
			vel = vel.Scale(maxSpeed / speed)
		}

		// Bounce off the visible bounds when still heading outward.
		if (pos.X < -w/2 && vel.X < 0) || (pos.X > w/2 && vel.X > 0) {
			vel.X = -vel.X
		}
		if (pos.Y < -h/2 && vel.Y < 0) || (pos.Y > h/2 && vel.Y > 0) {
			vel.Y = -vel.Y
		}
		if (pos.Z < -FlockDepth && vel.Z < 0) || (pos.Z > FlockDepth && vel.Z > 0) {
			vel.Z = -vel.Z
		}

		b.VX, b.VY, b.VZ = vel.X, vel.Y, vel.Z
		b.X += vel.X
		b.Y += vel.Y
		b.Z += vel.Z
		b.Age++
	}
}
