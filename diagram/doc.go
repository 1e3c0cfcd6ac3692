// Package diagram renders a deterministic 2D projection of real
// eigenvectors as an SVG document.
//
// The diagram package provides:
//
//   - Render, a pure function of an eigen.Result: complex eigenvalues are
//     skipped, real basis vectors are unit-normalized (zero vectors pass
//     through unchanged), sign-flipped for negative eigenvalues, and their
//     first two coordinates are projected onto a fixed square canvas.
//   - Visual reference layers with no data dependency: background grid,
//     two axis lines through the origin, and a dashed unit circle of
//     radius equal to the projection scale.
//   - One dashed arrow per basis vector plus one solid, labeled arrow for
//     the first vector of each drawable eigenspace.
//
// When no eigenvalue yields a drawable real vector, Render reports
// ErrNothingToDraw — an explicit absence, distinct from an empty-but-valid
// document.
//
// Canvas geometry and palette are configurable through functional options;
// identical input and options yield byte-identical SVG.
package diagram
