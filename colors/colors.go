package colors

// package colors contains functions to quickly and easily generate softras.Color instances by name (i.e. "White()", "Blue()", "Green()", etc).

import "github.com/solarlune/softras"

// White generates a softras.Color instance of the provided name.
func White() softras.Color {
	return softras.NewColor(1, 1, 1)
}

// Black generates a softras.Color instance of the provided name.
func Black() softras.Color {
	return softras.NewColor(0, 0, 0)
}

// Gray generates a softras.Color instance of the provided name.
func Gray() softras.Color {
	return softras.NewColor(0.5, 0.5, 0.5)
}

// LightGray generates a softras.Color instance of the provided name.
func LightGray() softras.Color {
	return softras.NewColor(0.8, 0.8, 0.8)
}

// DarkGray generates a softras.Color instance of the provided name.
func DarkGray() softras.Color {
	return softras.NewColor(0.2, 0.2, 0.2)
}

// Red generates a softras.Color instance of the provided name.
func Red() softras.Color {
	return softras.NewColor(1, 0, 0)
}

// Orange generates a softras.Color instance of the provided name.
func Orange() softras.Color {
	return softras.NewColor(1, 0.5, 0)
}

// Yellow generates a softras.Color instance of the provided name.
func Yellow() softras.Color {
	return softras.NewColor(1, 1, 0)
}

// Green generates a softras.Color instance of the provided name.
func Green() softras.Color {
	return softras.NewColor(0, 1, 0)
}

// SkyBlue generates a softras.Color instance of the provided name.
func SkyBlue() softras.Color {
	return softras.NewColor(0, 0.5, 1)
}

// Blue generates a softras.Color instance of the provided name.
func Blue() softras.Color {
	return softras.NewColor(0, 0, 1)
}

// Purple generates a softras.Color instance of the provided name.
func Purple() softras.Color {
	return softras.NewColor(0.5, 0, 1)
}

// ByName returns the named color (lowercase, e.g. "skyblue") and true, or black and false if the name isn't known.
// The command-line examples use it to parse color flags.
func ByName(name string) (softras.Color, bool) {
	switch name {
	case "white":
		return White(), true
	case "black":
		return Black(), true
	case "gray", "grey":
		return Gray(), true
	case "lightgray", "lightgrey":
		return LightGray(), true
	case "darkgray", "darkgrey":
		return DarkGray(), true
	case "red":
		return Red(), true
	case "orange":
		return Orange(), true
	case "yellow":
		return Yellow(), true
	case "green":
		return Green(), true
	case "skyblue":
		return SkyBlue(), true
	case "blue":
		return Blue(), true
	case "purple":
		return Purple(), true
	}
	return Black(), false
}
