package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declare errors upfront so that DeepEqual can be used for comparison.
	var (
		unauthorizedNameErr = Field("name", ErrUnauthorized, "a")
		inputNameErr        = Field("name", ErrInvalidInput, "b")
		emptyPowerErr       = Field("power", ErrEmpty, "power is required")
		governorMultiErr    = Field("governor", Append(
			inputNameErr,
			Append(emptyPowerErr, ErrDuplicate),
		), "governor data invalid")

		emptyPowerWrapErr = Field("power", emptyPowerErr, "outer")
	)

	cases := map[string]struct {
		Err   error
		Field string
		Want  []error
	}{
		"a single error found by the name": {
			Err:   unauthorizedNameErr,
			Field: "name",
			Want:  []error{unauthorizedNameErr},
		},
		"two errors found by the name": {
			Err: Append(
				unauthorizedNameErr,
				inputNameErr,
			),
			Field: "name",
			Want: []error{
				unauthorizedNameErr,
				inputNameErr,
			},
		},
		"field can contain a multierror": {
			Err:   governorMultiErr,
			Field: "governor",
			Want:  []error{governorMultiErr},
		},
		"field can inspect errors tree to find match (name)": {
			Err:   governorMultiErr,
			Field: "name",
			Want:  []error{inputNameErr},
		},
		"field can inspect errors tree to find match (power)": {
			Err:   governorMultiErr,
			Field: "power",
			Want:  []error{emptyPowerErr},
		},
		"nil error returns nothing": {
			Err:   nil,
			Field: "foo",
			Want:  nil,
		},
		"error not found by the field name": {
			Err:   ErrUnauthorized,
			Field: "foo",
			Want:  nil,
		},
		"error not found by the wrong field name": {
			Err:   Field("a-name", ErrUnauthorized, "a description"),
			Field: "foo",
			Want:  nil,
		},
		"field is wrapped": {
			Err:   Wrap(Wrap(inputNameErr, "inner"), "outer"),
			Field: "name",
			Want:  []error{inputNameErr},
		},
		"multi error field is wrapped (power)": {
			Err:   Wrap(Wrap(governorMultiErr, "inner"), "outer"),
			Field: "power",
			Want:  []error{emptyPowerErr},
		},
		"multi error field is wrapped (name)": {
			Err:   Wrap(Wrap(governorMultiErr, "inner"), "outer"),
			Field: "name",
			Want:  []error{inputNameErr},
		},
		"multi error field is wrapped, no match": {
			Err:   Wrap(Wrap(governorMultiErr, "inner"), "outer"),
			Field: "unknown-name",
			Want:  nil,
		},
		"multiple field wrap with most inner as the result": {
			Err:   Field("a", Field("b", inputNameErr, "b desc"), "a desc"),
			Field: "name",
			Want:  []error{inputNameErr},
		},
		"multiple field wrap with the same field return the most outside only": {
			Err:   emptyPowerWrapErr,
			Field: "power",
			Want:  []error{emptyPowerWrapErr},
		},
		"complex error with multiple results": {
			Err: Wrap(Append(
				Wrap(unauthorizedNameErr, "a"),
				Wrap(inputNameErr, "b"),
				Wrap(emptyPowerErr, "c"),
			), "outer"),
			Field: "name",
			Want:  []error{unauthorizedNameErr, inputNameErr},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.Err, tc.Field)
			if !reflect.DeepEqual(tc.Want, got) {
				t.Logf("want: %#v", tc.Want)
				t.Logf(" got: %#v", got)
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestAppendFieldNils(t *testing.T) {
	if err := AppendField(nil, "name", nil); err != nil {
		t.Fatalf("two nils must produce a nil: %+v", err)
	}
	if err := AppendField(nil, "name", ErrEmpty); err == nil {
		t.Fatal("a field error must be returned")
	} else if got := FieldErrors(err, "name"); len(got) != 1 {
		t.Fatalf("want a single field error, got %d", len(got))
	}
}
