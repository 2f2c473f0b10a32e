package softras

// DrawLine draws a line of the Color given from x0, y0 to x1, y1 (both inclusive) into the Sink using Bresenham's
// integer algorithm. Pixels that fall outside of the Sink are dropped by the Sink itself.
func DrawLine(x0, y0, x1, y1 int, sink Sink, color Color) {

	steep := false

	// Transpose steep lines so we always step along the longer axis
	if abs(x0-x1) < abs(y0-y1) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}

	// Draw from left to right
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	derror2 := abs(y1-y0) * 2
	error2 := 0

	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	y := y0

	for x := x0; x <= x1; x++ {

		if steep {
			sink.Set(y, x, color)
		} else {
			sink.Set(x, y, color)
		}

		error2 += derror2
		if error2 > dx {
			y += ystep
			error2 -= dx * 2
		}

	}

}
