// Package buffer implements the grapheme-accurate line editing model.
//
// Positions are byte offsets into the current text and always fall on
// grapheme cluster boundaries. Ranges are half-open: [Start, End).
//
// Motions are described by Movement values, which can be used to move the
// cursor (MoveTo), to read text (Copy) or to remove it (Kill) with identical
// boundary rules.
package buffer
