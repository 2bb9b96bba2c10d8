package game

import "math"

// NearestEnemy returns the index of the enemy closest to (cx, cy).
// Ties keep the first enemy found. ok is false when there are no enemies.
func NearestEnemy(enemies []Enemy, cx, cy float64) (index int, ok bool) {
	index = -1
	minDistance := math.Inf(1)
	for i, e := range enemies {
		distance := math.Hypot(e.X-cx, e.Y-cy)
		if distance < minDistance {
			minDistance = distance
			index = i
		}
	}
	return index, index >= 0
}

// Direction returns the unit vector from (fromX, fromY) to (toX, toY).
// ok is false when the points coincide, since no direction exists.
func Direction(fromX, fromY, toX, toY float64) (dx, dy float64, ok bool) {
	dx = toX - fromX
	dy = toY - fromY
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance == 0 {
		return 0, 0, false
	}
	return dx / distance, dy / distance, true
}
