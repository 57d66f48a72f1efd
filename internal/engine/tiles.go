package engine

import "image"

// Tiles partitions a width x height grid into nx columns and ny rows of
// rectangles. Boundaries fall at i*width/nx, so uneven divisions produce
// unequal tiles. Empty tiles are dropped; the rest are disjoint and cover
// the grid exactly.
func Tiles(width, height, nx, ny int) []image.Rectangle {
	if width <= 0 || height <= 0 || nx < 1 || ny < 1 {
		return nil
	}

	tiles := make([]image.Rectangle, 0, nx*ny)
	for i := 0; i < nx; i++ {
		x0, x1 := i*width/nx, (i+1)*width/nx
		for j := 0; j < ny; j++ {
			y0, y1 := j*height/ny, (j+1)*height/ny
			r := image.Rect(x0, y0, x1, y1)
			if r.Empty() {
				continue
			}
			tiles = append(tiles, r)
		}
	}
	return tiles
}
