package control

// MapSurface is the rendering collaborator the controller owns. The
// surface draws country shapes and camera moves; it never computes or
// caches fill colors. Fills come from palette.FillsFor each render pass
// and are passed to the renderer explicitly.
//
// The controller disposes the current surface before adopting a new one
// and on teardown. A disposed surface must reject further calls.
type MapSurface interface {
	// ZoomTo focuses the view on the continent containing the country.
	ZoomTo(code string, animate bool) error

	// ResetView returns to the zoomed-out world layout.
	ResetView() error

	// Dispose releases the surface's resources and subscriptions.
	Dispose() error
}

// Event is an asynchronous controller notification, posted from timer
// callbacks into whatever event loop hosts the controller.
type Event interface {
	isEvent()
}

// HoverReady fires when a debounced hover-enter survives its delay.
// The receiver passes it back to Controller.CommitHover, which applies
// it only if Token is still current.
type HoverReady struct {
	Country string
	Token   uint64
}

func (HoverReady) isEvent() {}
