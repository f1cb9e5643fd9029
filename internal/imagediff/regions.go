package imagediff

import "image"

// extractRegions clusters the differing pixels in mask (row-major, w*h) into
// bounding rectangles, one per 4-connected component. The scan is iterative
// with an explicit queue so pathological masks cannot overflow the stack.
func extractRegions(mask []bool, w, h int) []image.Rectangle {
	visited := make([]bool, len(mask))
	var regions []image.Rectangle
	var queue []int

	for start := range mask {
		if !mask[start] || visited[start] {
			continue
		}

		// BFS flood fill from start, tracking the component's bounding box.
		minX, minY := start%w, start/w
		maxX, maxY := minX, minY
		visited[start] = true
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			idx := queue[0]
			queue = queue[1:]
			x, y := idx%w, idx/w

			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}

			for _, n := range neighbors(x, y, w, h) {
				if mask[n] && !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}

		// Bounding box is inclusive of maxX/maxY, image.Rect is half-open.
		regions = append(regions, image.Rect(minX, minY, maxX+1, maxY+1))
	}
	return regions
}

// neighbors returns the row-major indices of the 4-connected neighbors of
// (x, y) that fall inside a w*h grid.
func neighbors(x, y, w, h int) []int {
	out := make([]int, 0, 4)
	if x > 0 {
		out = append(out, y*w+x-1)
	}
	if x < w-1 {
		out = append(out, y*w+x+1)
	}
	if y > 0 {
		out = append(out, (y-1)*w+x)
	}
	if y < h-1 {
		out = append(out, (y+1)*w+x)
	}
	return out
}
