// Package kernel holds the raw relaxation loops: one directional pass (or one
// simultaneous step) over validated CSR or BSR storage.
//
// Nothing here validates its inputs or allocates beyond small per-call
// scratch; the relaxation package checks shapes, element types and options
// once and then drives these loops according to a sweep.Plan.
//
// All kernels update x in place. Division by a missing or zero diagonal, or
// by an empty row norm, is not trapped: the non-finite result propagates.
package kernel
