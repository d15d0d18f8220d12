// Package layout implements a pure-Go flexbox layout engine.
//
// It follows the CSS Flexible Box model with a few extensions: aspect ratio,
// gap, baseline alignment, measure and baseline callbacks for leaves, and
// rounding to a pixel grid. Nodes form a tree; every style setter marks the
// node and its ancestors dirty so that a later [Node.CalculateLayout] only
// revisits what changed. Leaf measurements are cached per node and reused
// when new constraints are compatible with old ones.
//
// Undefined lengths are represented by NaN ([Undefined]). Misuse of the API,
// such as giving a node two owners, panics with a [*UsageError].
//
// Types are re-exported through the root flex package for public consumption.
package layout
