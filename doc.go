// Package yieldcurve resolves U.S. Treasury yield curves out of a sparse daily
// time series of constant maturity yields.
//
// The core functionalities include:
//   - Maturity Configuration: the static table of the eleven constant maturity
//     Treasury series, their labels, their length in years and their FRED
//     identifiers.
//   - Yield Series: a chronological, date-unique series of fixed-shape daily
//     records where any maturity may be missing on any given day.
//   - Curve Resolution: a pure function that reconciles a user-selected date
//     with the trading days actually present in a series and extracts the curve
//     to plot, reporting every expected no-data situation as an outcome rather
//     than an error.
//   - Data Loading: a provider contract, the collapse of provider failures into
//     an empty series, and a session scoped memoization of fetches.
//
// This package serves as the foundational logic for the `ycurve` command-line
// tool. The FRED provider lives in package fred, rendering in packages plot and
// renderer.
package yieldcurve
