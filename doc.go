// Package sway animates retained-mode 2D scenes for [Ebitengine] with
// time-based activities.
//
// An [Activity] is a unit of work with a start time, a duration, and a step
// rate. A [Scheduler] steps every scheduled activity once per frame; each
// activity moves from idle to stepping to finished and notifies its
// [Delegate] along the way. Interpolating activities turn elapsed time into
// progress, shape it with easing and a [Mode], and write the result into a
// target:
//
//   - [ColorActivity] blends a [ColorTarget]'s color channel by channel.
//   - [TransformActivity] blends the six coefficients of a [TransformTarget]'s
//     affine matrix.
//   - [PositionPathActivity] moves a [PositionTarget] along a [Path] at
//     constant speed.
//
// # Quick start
//
// A [Scene] owns the node tree and the scheduler, and [Run] drives it:
//
//	scene := sway.NewScene()
//	box := sway.NewRect("box", 40, 40, sway.Color{R: 0.3, G: 0.7, B: 1, A: 1})
//	scene.Root().AddChild(box)
//
//	pulse := scene.AnimateToColor(box, sway.Color{R: 1, A: 1}, time.Second)
//	pulse.SetMode(sway.SourceToDestinationToSource)
//	pulse.SetLoopCount(sway.LoopForever)
//
//	sway.Run(scene, sway.RunConfig{Title: "Pulse", Width: 640, Height: 480})
//
// # Time
//
// All times are [time.Duration] values on the global clock returned by
// [GlobalTime]. Tests replace the clock with [SetClock].
//
// # Chaining and looping
//
// [Activity.StartAfter] starts one activity where another ends. Interpolating
// activities restart from the current time when a loop completes, and
// [Activity.Terminate] ends one early, optionally without its finish
// notification.
//
// # Scripts
//
// [LoadScript] reads a YAML list of activities that [Script.Apply] builds
// against named nodes. Easing names map to [gween] curves.
//
// The model is single-threaded: schedule, step, and terminate activities from
// the goroutine that runs the game loop.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sway
