// Package bleed renders a raster panel as a single-page PDF and attaches a
// BleedBox computed from pixel offsets against the page's MediaBox.
package bleed
