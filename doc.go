// Package flex computes flexbox layouts for trees of styled boxes.
//
// Build a tree with NewNode and AppendChild, set style properties on each
// node, then call CalculateLayout on the root. Every node then reports its
// position relative to its owner and its size through the Computed*
// accessors.
//
//	root := flex.NewNode()
//	root.SetFlexDirection(flex.FlexDirectionRow)
//	root.SetWidth(flex.Point(300))
//	child := flex.NewNode()
//	child.SetFlexGrow(1)
//	root.AppendChild(child)
//	root.CalculateLayout(flex.Undefined, flex.Undefined, flex.DirectionLTR)
//
// Leaves that hold content, such as text, get a MeasureFunc. The measure
// package provides ones for terminal cells and font faces.
package flex
