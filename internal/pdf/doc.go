// SPDX-License-Identifier: MPL-2.0

// Package pdf extracts the plain-text layer from statement PDFs.
//
// Extraction is deliberately geometry-blind: pages are concatenated in order
// and the downstream parser recovers structure from the text itself. Scanned
// (image-only) statements therefore yield empty text, not an error.
package pdf
