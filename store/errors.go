// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrNotFound indicates no table is stored under the requested name.
	ErrNotFound = errors.New("store: table not found")

	// ErrClosed indicates use of a Store after Close.
	ErrClosed = errors.New("store: closed")
)
