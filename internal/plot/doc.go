// Package plot turns kinetics curves into rendered charts.
//
// A [Figure] is the presentation-level description of one chart: a title,
// axis labels, styled series and annotations. Figures are built from
// generator output by [EyringFigure] and [SaltEffectFigure] and rendered by
//
//   - [Render]: PNG or SVG through go-chart
//   - [Terminal]: ANSI line chart through asciigraph
package plot
