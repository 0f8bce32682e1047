package vtcore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"format", &FormatError{Reason: "x"}, ErrFormat},
		{"lookup", &LookupError{Name: "mauve"}, ErrLookup},
		{"geometry", &GeometryError{Reason: "x"}, ErrGeometry},
		{"grid", &GridConfigurationError{Reason: "x"}, ErrGridConfiguration},
		{"bind", &BindError{Reason: "x"}, ErrBind},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, errors.Is(c.err, c.want))
		})
	}
}

func TestLookupErrorMessageIncludesName(t *testing.T) {
	err := &LookupError{Name: "mauve"}
	assert.Contains(t, err.Error(), "mauve")
}
