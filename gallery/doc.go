// Package gallery builds the model operators used to exercise smoothers:
// the 1-D and 2-D Poisson problems in CSR form and a block (BSR) variant.
//
// All constructors return validated storage with ascending column indices
// and fail with ErrBadSize for a dimension below 1.
package gallery
