// Package render turns swap plans into visual outputs.
//
// Three renderers are provided:
//
//   - [Text] draws a terminal wire diagram: one horizontal wire per slot,
//     with SWAP gates marking each step in order.
//   - [ToDOT] emits a Graphviz DOT graph of the swap sequence, rendered to
//     SVG or PNG with [SVG] and [PNG].
//   - [PDF] converts rendered SVG to PDF via the external rsvg-convert tool.
package render
