// SPDX-License-Identifier: MIT

package table

// Well-known field and parameter names.
const (
	FieldX          = "x"
	FieldY          = "y"
	FieldCategory   = "category"
	FieldFilenumber = "filenumber"
	FieldSubject    = "subject"
	FieldStart      = "start"
	FieldEnd        = "end"

	ParamImageSize       = "image_size"
	ParamPixelsPerDegree = "pixels_per_degree"
)

// Option configures New. Options are applied in order.
type Option func(*options)

type options struct {
	required []string
}

// WithRequired makes New fail with ErrShape when any of names is not among
// the supplied fields.
func WithRequired(names ...string) Option {
	return func(o *options) { o.required = append(o.required, names...) }
}

// WithXY is shorthand for WithRequired("x", "y"), the fields every density
// computation needs.
func WithXY() Option {
	return WithRequired(FieldX, FieldY)
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
