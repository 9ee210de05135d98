package skyrail

// CollisionCheck tests every active entity of as against every active entity
// of bs. Two entities collide if the distance between their positions is less
// than the sum of their radii. Both entities of a colliding pair get their
// Collides method called. Returns the number of collisions.
//
// Activity is checked for every pair, an entity deactivated by a collision
// does not collide again in the same check.
func CollisionCheck[A, B Behavior](as []A, bs []B) int {
	var hits int

	for _, a := range as {
		for _, b := range bs {
			ea, eb := a.Base(), b.Base()
			if !ea.IsActive() || !eb.IsActive() {
				continue
			}

			distanceSq := ea.Position().Sub(eb.Position()).LengthSqr()

			radii := ea.Radius() + eb.Radius()
			if distanceSq >= radii*radii {
				continue
			}

			a.Collides()
			b.Collides()

			hits++
		}
	}

	return hits
}
