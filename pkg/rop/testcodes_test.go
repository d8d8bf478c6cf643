package rop

import (
	"errors"
	"testing"
)

type testCode uint32

const (
	codeUserNotFound     testCode = 1
	codeNoUsersAtAddress testCode = 2
	codeValidation       testCode = 1024
	codeInvalidZipCode            = 2 | codeValidation
	codeInvalidHouseNr            = 3 | codeValidation
)

var testCatalog = MustCatalog(
	Base("UserNotFound", codeUserNotFound),
	Base("NoUsersAtAddress", codeNoUsersAtAddress),
	Category("ValidationError", codeValidation),
	Base("InvalidZipCode", codeInvalidZipCode),
	Base("InvalidHouseNr", codeInvalidHouseNr),
)

func (c testCode) String() string { return testCatalog.Name(c) }

// recoverErr runs f and returns the error it panicked with.
func recoverErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatalf("expected panic")
		}
		e, ok := rec.(error)
		if !ok {
			t.Fatalf("expected error panic, got %T: %v", rec, rec)
		}
		err = e
	}()
	f()
	return nil
}

func mustBeProgrammerError(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
	if !IsProgrammerError(err) {
		t.Fatalf("expected programmer error, got %v", err)
	}
}
