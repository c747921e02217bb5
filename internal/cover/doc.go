// Package cover implements the raster geometry for splitting a scanned
// book-cover image into press panels.
//
// A flattened cover scan is one wide image containing, left to right, the
// back cover, the spine and the front cover. The functions in this package
// cut that image apart, join panels back together, and synthesize bleed
// margin by stretching the outermost edge strips.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Regions are half-open: (x1,y1) inclusive, (x2,y2) exclusive
//
// # Value Semantics
//
// Every transform returns a new *image.NRGBA and leaves its inputs
// untouched. There is no shared mutable state; the functions can be called
// concurrently on different images.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Crop regions outside the source image bounds
//   - Images of differing heights passed to ConcatHorizontal
//   - File I/O or decode errors during image loading
package cover
