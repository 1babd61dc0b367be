package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeOutOfRange, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
	if ErrorCodeOutOfRange.String() != "out_of_range" || ErrorCode(4242).String() != "unknown" {
		t.Fatalf("unexpected code names")
	}
}

func TestError_Render(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	src := stderrs.New("eof")
	cases := []struct {
		err  error
		want string
	}{
		{Newf(ErrorCodeJSON, "bad json %d", 12), "bad json 12"},
		{Wrapf(src, ErrorCodeInvalidArgument, "pack %s", "house.yaml"), "pack house.yaml: eof"},
		{WithOp(OutOfRangef("position 9"), "WordAt"), "WordAt: position 9"},
		{WithOp(Wrapf(src, ErrorCodeNotFound, "read"), "LoadFile"), "LoadFile: read: eof"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("Error() = %q, want %q", got, c.want)
		}
	}
	if !stderrs.Is(Wrapf(src, ErrorCodeJSON, "x"), src) {
		t.Fatalf("Wrapf must keep the cause for errors.Is")
	}
}

func TestMutators_CopyOnWrite(t *testing.T) {
	base := OutOfRangef("position %d", 9)
	withField := WithField(base, "position")
	withOp := WithOp(withField, "WordAt")

	if e, _ := As(withOp); e.Field() != "position" || e.Op() != "WordAt" || e.Code() != ErrorCodeOutOfRange {
		t.Fatalf("mutators lost data: %+v", e)
	}
	if e, _ := As(base); e.Field() != "" || e.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "x") != foreign {
		t.Fatalf("foreign errors should pass through")
	}
	wrapped := fmt.Errorf("outer: %w", withField)
	if !IsCode(wrapped, ErrorCodeOutOfRange) {
		t.Fatalf("IsCode should see through fmt wrapping")
	}
	if IsCode(nil, ErrorCodeUnknown) {
		t.Fatalf("nil error must not match any code")
	}
}

func TestHTTP(t *testing.T) {
	if st, w := HTTP(nil); st != http.StatusOK || w != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", st, w)
	}

	err := WithOp(WithField(Wrapf(stderrs.New("secret cause"), ErrorCodeNotFound, "unknown preset %q", "x"), "preset"), "Get")
	st, w := HTTP(err)
	if st != http.StatusNotFound || w.Message != `unknown preset "x"` || w.Field != "preset" {
		t.Fatalf("HTTP(ours) = %d %+v", st, w)
	}

	st, w = HTTP(stderrs.New("boom"))
	if st != http.StatusInternalServerError || w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("HTTP(foreign) = %d %+v", st, w)
	}

	sugar := map[ErrorCode]error{
		ErrorCodeNotFound:        NotFoundf("x"),
		ErrorCodeInvalidArgument: InvalidArgf("x"),
		ErrorCodeOutOfRange:      OutOfRangef("x"),
		ErrorCodeJSON:            JSONErrf("x"),
		ErrorCodePanic:           PanicErrf("x"),
		ErrorCodeUnknown:         Internalf("x"),
		ErrorCodeValidation:      New(ErrorCodeValidation, "x"),
	}
	for code, err := range sugar {
		if CodeOf(err) != code {
			t.Fatalf("CodeOf = %v, want %v", CodeOf(err), code)
		}
	}
}
