package core

// Renderer is the drawing collaborator the game draws into once per frame.
// Coordinates are logical screen units; text is positioned by its top-left
// corner. Implementations own their font.
type Renderer interface {
	ClearBackground(c Color)
	DrawRectangle(r Rect, c Color)
	DrawText(text string, x, y, size float64, c Color)
	MeasureText(text string, size float64) (w, h float64)
	ScreenSize() (w, h float64)
}
