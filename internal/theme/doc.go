// Package theme resolves the display color for a block category or
// diagnostic severity, and fades disabled accents toward the
// background using perceptual (Lab-space) blending so fades don't
// pass through the muddy grays RGB interpolation produces.
package theme
