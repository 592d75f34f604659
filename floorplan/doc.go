// Package floorplan is the core of the fixed-outline placement engine: it
// binds a bstree.Tree to a macro assignment and rotation state (Floorplan),
// packs that state into coordinates on a contour.Contour (Pack), and
// explores the neighborhood of a placement via three random-neighborhood
// operators (Perturb).
//
// Floorplan depends only on the Database interface, not on *model.Database
// directly, so tests can exercise it against small in-memory fakes.
package floorplan
