package sway

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// ScriptEntry describes one scripted activity. Durations use Go syntax
// ("250ms", "1.5s").
type ScriptEntry struct {
	// ID names the entry so later entries can start after it.
	ID string `yaml:"id,omitempty"`
	// Node is the name of the animated node; "root" is the scene root.
	Node string `yaml:"node"`
	// Kind is one of color, alpha, transform, position, or path.
	Kind string `yaml:"kind"`

	Duration time.Duration `yaml:"duration"`
	StepRate time.Duration `yaml:"stepRate,omitempty"`
	// Delay offsets the start from now, or from the end of After.
	Delay time.Duration `yaml:"delay,omitempty"`
	After string        `yaml:"after,omitempty"`

	// Loops is the loop count; 0 means 1 and -1 loops forever.
	Loops         int    `yaml:"loops,omitempty"`
	Mode          string `yaml:"mode,omitempty"`
	SlowInSlowOut *bool  `yaml:"slowInSlowOut,omitempty"`
	Ease          string `yaml:"ease,omitempty"`

	// Destination values, by kind.
	Color    []float64    `yaml:"color,omitempty"`
	Alpha    float64      `yaml:"alpha,omitempty"`
	X        float64      `yaml:"x,omitempty"`
	Y        float64      `yaml:"y,omitempty"`
	Scale    *float64     `yaml:"scale,omitempty"`
	Rotation float64      `yaml:"rotation,omitempty"`
	Path     [][2]float64 `yaml:"path,omitempty"`
}

// Script is a declarative list of activities loaded from YAML (or JSON).
type Script struct {
	Activities []ScriptEntry `yaml:"activities"`
}

// LoadScript parses a YAML or JSON activity script.
func LoadScript(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse activity script: %w", err)
	}
	if len(sc.Activities) == 0 {
		return nil, fmt.Errorf("parse activity script: no activities")
	}
	return &sc, nil
}

var scriptModes = map[string]Mode{
	"":                            SourceToDestination,
	"sourceToDestination":         SourceToDestination,
	"destinationToSource":         DestinationToSource,
	"sourceToDestinationToSource": SourceToDestinationToSource,
}

var scriptEases = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// Apply builds every scripted activity against the scene's nodes and
// schedules them so that each pass steps them in script order. Nothing is
// scheduled if any entry is invalid. The returned activities are in script
// order.
func (sc *Script) Apply(s *Scene) ([]*Activity, error) {
	now := s.GlobalTime()
	built := make([]Schedulable, 0, len(sc.Activities))
	byID := make(map[string]*Activity, len(sc.Activities))

	for i := range sc.Activities {
		e := &sc.Activities[i]
		ia, err := e.build(s)
		if err != nil {
			return nil, fmt.Errorf("activity script entry %d: %w", i, err)
		}
		a := ia.activity()
		if e.After != "" {
			prev, ok := byID[e.After]
			if !ok {
				return nil, fmt.Errorf("activity script entry %d: unknown after %q", i, e.After)
			}
			a.StartAfter(prev)
			if start := a.StartTime(); start <= maxTime-e.Delay {
				a.SetStartTime(start + e.Delay)
			}
		} else {
			a.SetStartTime(now + e.Delay)
		}
		if e.ID != "" {
			if _, dup := byID[e.ID]; dup {
				return nil, fmt.Errorf("activity script entry %d: duplicate id %q", i, e.ID)
			}
			byID[e.ID] = a
		}
		built = append(built, ia)
	}

	out := make([]*Activity, len(built))
	for i, b := range built {
		s.Scheduler().AddActivityLast(b)
		out[i] = b.activity()
	}
	return out, nil
}

// interpolating is satisfied by every activity type built from a script.
type interpolating interface {
	Schedulable
	SetMode(Mode)
	SetLoopCount(int)
	SetSlowInSlowOut(bool)
	SetEase(ease.TweenFunc)
}

func (e *ScriptEntry) build(s *Scene) (interpolating, error) {
	n := s.Root()
	if e.Node != "root" {
		n = s.Root().FindChild(e.Node)
	}
	if n == nil {
		return nil, fmt.Errorf("unknown node %q", e.Node)
	}
	if e.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", e.Duration)
	}
	mode, ok := scriptModes[e.Mode]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", e.Mode)
	}
	var fn ease.TweenFunc
	if e.Ease != "" {
		if fn, ok = scriptEases[e.Ease]; !ok {
			return nil, fmt.Errorf("unknown ease %q", e.Ease)
		}
	}
	rate := e.StepRate
	if rate <= 0 {
		rate = DefaultStepRate
	}

	var act interpolating
	switch e.Kind {
	case "color":
		c, err := e.color()
		if err != nil {
			return nil, err
		}
		act = NewColorActivity(e.Duration, rate, n, c)

	case "alpha":
		act = newAlphaActivity(n, e.Alpha, e.Duration, rate)

	case "transform":
		scale := 1.0
		if e.Scale != nil {
			scale = *e.Scale
		}
		dest := Node{
			X: e.X, Y: e.Y,
			ScaleX: scale, ScaleY: scale,
			Rotation: e.Rotation,
			PivotX:   n.PivotX, PivotY: n.PivotY,
		}
		act = NewTransformActivity(e.Duration, rate, n, dest.Transform())

	case "position":
		act = newMoveActivity(n, Vec2{e.X, e.Y}, e.Duration, rate)

	case "path":
		if len(e.Path) == 0 {
			return nil, fmt.Errorf("path activity needs at least one point")
		}
		pts := make([]Vec2, len(e.Path))
		for i, p := range e.Path {
			pts[i] = Vec2{p[0], p[1]}
		}
		pa := NewPositionPathActivity(e.Duration, rate, n, nil)
		pa.SetPositions(pts)
		act = pa

	default:
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}

	act.SetMode(mode)
	switch {
	case e.Loops < 0:
		act.SetLoopCount(LoopForever)
	case e.Loops > 0:
		act.SetLoopCount(e.Loops)
	}
	if e.SlowInSlowOut != nil {
		act.SetSlowInSlowOut(*e.SlowInSlowOut)
	}
	act.SetEase(fn)
	return act, nil
}

func (e *ScriptEntry) color() (Color, error) {
	switch len(e.Color) {
	case 3:
		return Color{e.Color[0], e.Color[1], e.Color[2], 1}, nil
	case 4:
		return Color{e.Color[0], e.Color[1], e.Color[2], e.Color[3]}, nil
	default:
		return Color{}, fmt.Errorf("color needs 3 or 4 channels, got %d", len(e.Color))
	}
}
