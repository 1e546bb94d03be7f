// Package site renders the portfolio as static HTML with inline SVG widgets,
// writes it to disk and serves it.
package site
