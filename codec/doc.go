// SPDX-License-Identifier: MIT

// Package codec reads and writes fixation tables as JSON or YAML documents.
//
// Both formats carry a table.Record: one entry per field with its kind and
// typed values, plus the parameter vectors. Decoding rebuilds the table with
// table.FromRecord, so every shape and kind check of table.New applies.
//
// JSON has no literal for NaN or ±Inf; such float entries are written as the
// strings "NaN", "+Inf" and "-Inf" and read back exactly. YAML uses its own
// .nan and .inf literals. Integer fields keep their full 64-bit range in both
// formats, so a table survives Encode then Decode unchanged.
//
// Load and Save pick the format from the file extension (.json, .yaml, .yml).
package codec
