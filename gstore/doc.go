// Package gstore adapts github.com/dominikbraun/graph as a backend for the
// weight package's Store contract.
//
// Vertices are stored as *node records hashed by name, so vertex attribute
// bundles stay mutable after creation. Edge attribute bundles ride in the
// library's EdgeProperties.Data slot; adding an edge for an ordered pair
// that already exists merges the new bundle into the existing one, which
// keeps layered cost attributes on a single edge exactly like the native
// agraph backend.
//
// Enumerations (VertexNames, Edges) are sorted snapshots, so downstream
// span and example output is reproducible.
//
// Like the rest of the module, a gstore.Graph is meant for single-threaded
// population followed by read-only querying.
package gstore
