// Package filter provides the raster effects the sprite baker composes:
//
//   - Gaussian blur (separable, single-channel)
//   - Drop shadow (blur + offset + colorize)
//
// Filters operate on alpha coverage masks rather than full-color images;
// the baker only ever softens piece silhouettes.
package filter
