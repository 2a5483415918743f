package scene

import "github.com/mohamedtouja/multipoles/internal/models"

// ViewSize is the fixed camera-frame dimension every asset is scaled into.
const ViewSize = 2.0

// Normalize centers the scene at the origin and applies the two-stage
// uniform scale: assets arrive in arbitrary units and must first fit the
// fixed view frame, then respond proportionally to the height slider.
//
//	scale = (ViewSize / maxDim) * (height / ReferenceHeight)
//
// Degenerate bounds (no meshes, or a zero-size box) keep scale 1 so a broken
// asset renders rather than collapsing. The computation depends only on the
// local bounds, so repeated calls with the same height are idempotent.
func Normalize(s *Scene, height float64) {
	b := s.Bounds()
	if b.IsEmpty() {
		s.Translation = Vec3{}
		s.Scale = 1
		return
	}

	s.Translation = b.Center().Mul(-1)

	maxDim := b.MaxDim()
	if maxDim <= 0 {
		s.Scale = 1
		return
	}
	s.Scale = (ViewSize / maxDim) * (height / models.ReferenceHeight)
}
