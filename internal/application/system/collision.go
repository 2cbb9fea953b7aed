package system

import "github.com/younwookim/spacewar/internal/domain/entity"

// HitboxShrink is the fraction of each sprite box that counts for collisions.
// Hitboxes are smaller than the drawn sprites so near misses stay misses.
const HitboxShrink = 0.7

// Overlaps reports whether a and b collide using the shrunken hitboxes
func Overlaps(a, b entity.Rect) bool {
	return OverlapsWithShrink(a, b, HitboxShrink)
}

// OverlapsWithShrink shrinks both boxes by factor around their centers
// and tests them for overlap. Touching edges do not overlap.
func OverlapsWithShrink(a, b entity.Rect, factor float64) bool {
	sa := a.Shrink(factor)
	sb := b.Shrink(factor)
	return sa.Left() < sb.Right() &&
		sa.Right() > sb.Left() &&
		sa.Top() < sb.Bottom() &&
		sa.Bottom() > sb.Top()
}

// Collide is Overlaps over anything with bounds
func Collide(a, b entity.Bounded) bool {
	return Overlaps(a.Bounds(), b.Bounds())
}
