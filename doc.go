/*
Package plotaxis implements the coordinate transforms and tick labels
of an interactive two-dimensional plot.

# Coordinates

A plot is described by four coordinate systems.
Real coordinates are the values of the plotted data.
Linear coordinates are real coordinates passed through an [AxisScale],
so that the plot is a linear map of them; for a [LogScale] the linear
coordinate of 100 is 2.
Screen coordinates are continuous positions within the plot area, where the
pixel with index i covers [i, i+1).
Pixel coordinates are integer pixel indices.

A [Scale] holds the size of the plot and the linear coordinates of the centers
of its boundary pixels, and converts between all four systems.

# Labels

Tick labels are chosen by the axis scale for a range of linear coordinates and
a minimum distance between labels.
Label positions are exact decimals from package [github.com/govalues/plotaxis/decimal],
and they are compared with the visible range exactly,
so labels do not flicker while the plot is zoomed or panned.

# Constraints

[Constraints] limit the visible area.
After every change of the view, a [Scale] snaps the bounds to the limits
or translates them back inside.
*/
package plotaxis
