package errors

import (
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different root errors": {
			a:      ErrNotFound,
			b:      ErrState,
			wantIs: false,
		},
		"wrapped error is a root error": {
			a:      ErrNotFound,
			b:      Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"deeply wrapped error is a root error": {
			a:      ErrNotFound,
			b:      Wrap(Wrap(ErrNotFound, "gone"), "almost"),
			wantIs: true,
		},
		"wrapped error of another root": {
			a:      ErrNotFound,
			b:      Wrap(ErrState, "gone"),
			wantIs: false,
		},
		"stdlib error is never a root error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib"),
			wantIs: false,
		},
		"nil is not an error": {
			a:      ErrNotFound,
			b:      nil,
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(ErrInput, "name")
	if got, want := err.Error(), "name: invalid input"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "duplicate of unauthorized")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("boom")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}
