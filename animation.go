package sway

import (
	"time"

	"golang.org/x/image/math/f64"
)

// The AnimateTo* helpers create an activity for a node, schedule it on the
// scene, and return it so callers can chain, loop, or terminate it. A zero
// duration applies the final value immediately and returns nil.

// AnimateToColor blends n's color to c over d.
func (s *Scene) AnimateToColor(n *Node, c Color, d time.Duration) *ColorActivity {
	if d == 0 {
		n.SetColor(c)
		return nil
	}
	ca := NewColorActivity(d, DefaultStepRate, n, c)
	s.AddActivity(ca)
	return ca
}

// AnimateToAlpha fades n's alpha to a over d.
func (s *Scene) AnimateToAlpha(n *Node, a float64, d time.Duration) *InterpolatingActivity {
	if d == 0 {
		n.SetAlpha(a)
		return nil
	}
	ia := newAlphaActivity(n, a, d, DefaultStepRate)
	s.AddActivity(ia)
	return ia
}

// newAlphaActivity fades n's alpha from its value at start to the given one.
func newAlphaActivity(n *Node, to float64, d, stepRate time.Duration) *InterpolatingActivity {
	ia := NewInterpolatingActivity(d, stepRate, &alphaInterpolator{node: n, to: to})
	ia.animation = true
	return ia
}

type alphaInterpolator struct {
	node     *Node
	from, to float64
}

func (ai *alphaInterpolator) CaptureSource() { ai.from = ai.node.Alpha }

func (ai *alphaInterpolator) SetRelativeTargetValue(t float64) {
	ai.node.SetAlpha(lerp(ai.from, ai.to, t))
}

func (ai *alphaInterpolator) targetDisposed() bool { return ai.node.IsDisposed() }

// AnimateToPosition moves n in a straight line to (x, y) over d, starting
// from wherever n stands when the activity begins.
func (s *Scene) AnimateToPosition(n *Node, x, y float64, d time.Duration) *InterpolatingActivity {
	if d == 0 {
		n.SetPosition(x, y)
		return nil
	}
	ia := newMoveActivity(n, Vec2{x, y}, d, DefaultStepRate)
	s.AddActivity(ia)
	return ia
}

func newMoveActivity(n *Node, to Vec2, d, stepRate time.Duration) *InterpolatingActivity {
	ia := NewInterpolatingActivity(d, stepRate, &moveInterpolator{node: n, to: to})
	ia.animation = true
	return ia
}

type moveInterpolator struct {
	node     *Node
	from, to Vec2
}

func (mi *moveInterpolator) CaptureSource() { mi.from = Vec2{mi.node.X, mi.node.Y} }

func (mi *moveInterpolator) SetRelativeTargetValue(t float64) {
	mi.node.SetPosition(lerp(mi.from.X, mi.to.X, t), lerp(mi.from.Y, mi.to.Y, t))
}

func (mi *moveInterpolator) targetDisposed() bool { return mi.node.IsDisposed() }

// AnimateToTransform interpolates n's local transform to m over d.
func (s *Scene) AnimateToTransform(n *Node, m f64.Aff3, d time.Duration) *TransformActivity {
	if d == 0 {
		n.SetTransform(m)
		return nil
	}
	ta := NewTransformActivity(d, DefaultStepRate, n, m)
	s.AddActivity(ta)
	return ta
}

// AnimateToPositionScaleRotation animates n to position (x, y), uniform scale,
// and rotation (radians) over d. Skew is cleared by the end of the animation.
func (s *Scene) AnimateToPositionScaleRotation(n *Node, x, y, scale, rotation float64, d time.Duration) *TransformActivity {
	dest := Node{
		X: x, Y: y,
		ScaleX: scale, ScaleY: scale,
		Rotation: rotation,
		PivotX:   n.PivotX, PivotY: n.PivotY,
	}
	return s.AnimateToTransform(n, dest.Transform(), d)
}

// AnimateAlongPath moves n along path over d. The path is in n's parent
// coordinate space.
func (s *Scene) AnimateAlongPath(n *Node, path *Path, d time.Duration) *PositionPathActivity {
	if d == 0 {
		if pts := path.Flatten(DefaultCurveSegments); len(pts) > 0 {
			last := pts[len(pts)-1]
			n.SetPosition(last.X, last.Y)
		}
		return nil
	}
	pa := NewPositionPathActivity(d, DefaultStepRate, n, path)
	s.AddActivity(pa)
	return pa
}
