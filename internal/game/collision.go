package game

// OutOfBounds reports whether a vertical position is past the ceiling or
// floor. The boundaries themselves are survivable: only y < 0 or
// y > worldH is fatal.
func OutOfBounds(y, worldH float64) bool {
	return y < 0 || y > worldH
}

// Collides reports whether the entity has hit the world bounds or any
// obstacle. Pure and deterministic: same positions, same answer.
// Every slot is checked every frame; recycled slots sit far to the
// right of the field and cannot overlap the entity.
func Collides(e Entity, slots []Obstacle, obstacleW, worldH float64) bool {
	if OutOfBounds(e.Y, worldH) {
		return true
	}

	er := e.Rect()
	for _, o := range slots {
		if er.Intersects(o.Rect(obstacleW, worldH)) {
			return true
		}
	}
	return false
}
