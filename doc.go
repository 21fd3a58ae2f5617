// Package bouncer animates colored rectangles and circles that bounce inside
// a fixed-size window on [Ebitengine], recoloring themselves from a fixed
// palette on a timer.
//
// # Quick start
//
//	d := bouncer.NewDisplay(bouncer.Config{})
//	d.Append(bouncer.NewRectangle(20, 20, 100, 200))
//	if err := bouncer.Run(d, bouncer.RunConfig{}); err != nil {
//		log.Fatal(err)
//	}
//
// # Motion
//
// Every tick, [Display.Update] proposes coordinate+speed on each axis and
// hands it to [ReflectAndMove]. When the proposal leaves the open interval
// (0, bound-extent) the axis direction flips, and the shape moves by the
// proposal's distance in the new direction.
//
// # Rendering
//
// Shapes draw through the [Renderer] interface. [ScreenRenderer] paints an
// ebiten.Image with the vector package; [Canvas] paints a [gg] software
// context and backs [Snapshot], [Display.Screenshot], and tests.
//
// # Unattended runs
//
// A JSON [Script] can wait, take screenshots, force recolors, pause, and
// quit. A YAML [Scene] describes the window and initial shapes.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package bouncer
