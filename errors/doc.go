/*
Package errors implements the error handling used across this module.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when necessary. It is best to declare a new error
here if you feel it is going to be package-agnostic. The gov package is a
good example of declaring a custom taxonomy on top of this one.

To register a custom error use Register(code, description). For reusing
errors use Errxxx.New and Errxxx.Newf. The code allows to distinguish kinds
of errors on the client side and act accordingly.

There is also support for stacktraces. Please ensure you create the error
using ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation
to attach a stacktrace. If you wrap multiple times, only the first wrap
records the stacktrace. (And don't do this as a global
`var ErrFoo = errors.ErrInvalidInput.New("foo")` or you will get a useless
stacktrace).

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
for the error

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
