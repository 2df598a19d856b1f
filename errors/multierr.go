package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened. All
// unpacked errors are directly included into the result set so that the
// result is never nested.
func Append(errs ...error) error {
	var collection []error
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if u, ok := err.(unpacker); ok {
			collection = append(collection, u.Unpack()...)
		} else {
			collection = append(collection, err)
		}
	}

	switch len(collection) {
	case 0:
		return nil
	case 1:
		return collection[0]
	default:
		return multiError(collection)
	}
}

// multiError represents a group of errors. It is container only. All clubbed
// errors are equal and their order carries no meaning.
type multiError []error

func (errs multiError) Error() string {
	switch len(errs) {
	case 0:
		return "<nil>"
	case 1:
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(errs), strings.Join(msgs, "\n\t"))
}

// Unpack implements unpacker interface.
func (errs multiError) Unpack() []error {
	return errs
}

var _ unpacker = (multiError)(nil)
