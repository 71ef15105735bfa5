package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("boom")
	for _, c := range []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare", PinInUse, PinInUse},
		{"wrapped", Wrap(InvalidParams, "config.Parse", "bad mode", cause), InvalidParams},
		{"foreign", cause, Error},
	} {
		if got := Of(c.err); got != c.want {
			t.Fatalf("%s: Of = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestWrapMatchesCodeAndCause(t *testing.T) {
	cause := errors.New("disk")
	err := Wrap(InvalidParams, "config.Load", "", cause)
	if !errors.Is(err, InvalidParams) {
		t.Fatal("errors.Is did not match the code")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is did not reach the cause")
	}
	if got, want := err.Error(), "config.Load: invalid_params: disk"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
