// Package physics implements the force and geometry rules of the simulation.
//
// The package provides:
//
//   - [Gravity]: pairwise Newtonian attraction with a stability clamp for
//     heavy mass products
//   - [Radius]: the mass-to-radius mapping shared by collision detection,
//     boundary checks, and rendering
//   - [DetectCollision]: first overlapping pair in index order
//   - [Boundary]: circular limit on ground-plane distance from the vertical
//     axis
//
// # Units
//
// Masses, distances, and the gravitational constant use arbitrary
// simulation units tuned for on-screen behavior, not SI. The default
// constant of 0.3 produces slow, watchable orbits at the default scale.
package physics
