// Package measure provides measure and baseline callbacks for text leaves.
//
// Cells measures text on a monospace terminal grid where each row is one
// unit tall. Face measures text with a golang.org/x/image/font face in
// pixels. Both wrap at Unicode line-break opportunities when the width is
// constrained.
package measure
