// Package fixture loads layout trees from TOML or YAML documents, lays them
// out and snapshots the computed boxes.
//
// A document holds the available size, the root direction, an optional
// [config] table and a [root] node table. Nodes nest through "children".
// Lengths are numbers (points) or strings such as "50%", "auto" or
// "undefined". Nodes with "text" are measured as terminal cells, or with a
// 7x13 bitmap face when measurer = "face".
package fixture
