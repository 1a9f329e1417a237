// Package table implements the fixation table: a columnar container of
// fixation events plus parameters shared by every row.
//
// A Table maps field names to typed, equal-length columns (Field). The
// mandatory coordinate fields are "x" and "y"; any number of metadata fields
// (subject, filenumber, category, start, end, ...) may sit next to them, each
// with its own kind (float64, int64, uint64). Parameters are small float
// vectors keyed by name, for example image_size = [height, width] and
// pixels_per_degree = [45].
//
// Values, not references:
//   - Field is immutable; accessors returning slices hand out copies.
//   - Take, Join and Clone always build new tables; the sources never change.
//   - AddField, RemoveField and SetParam mutate the receiver and either fully
//     succeed or leave it untouched.
//
// Errors are sentinels matched with errors.Is:
//
//	ErrShape          length or dimension mismatch
//	ErrSchemaMismatch Join over different field sets or kinds
//	ErrFieldNotFound  missing field (key lookup)
//	ErrParamNotFound  missing parameter (key lookup)
//	ErrInvalidValue   invalid argument value
//
// Filtering and grouping live in the view package; density maps in density.
package table
