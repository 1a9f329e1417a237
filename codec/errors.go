// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrUnknownFormat indicates a file extension other than .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrDecode indicates a document that is not a well-formed table record.
	ErrDecode = errors.New("codec: malformed document")
)
