package game

// draw emits the single pixel an object occupies. The only translation
// between entity state and the display API lives here.
func draw(d Display, o GameObject) {
	d.SetPixel(o.Pos.X, o.Pos.Y, o.Brightness)
}
