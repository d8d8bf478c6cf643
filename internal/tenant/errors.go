package tenant

import (
	"fmt"

	"github.com/ib-77/results/pkg/rop"
)

// ErrorCode tags tenant failures. The numeric values are part of the wire
// contract.
type ErrorCode uint32

const (
	CodeUserNotFound     ErrorCode = 1
	CodeNoUsersAtAddress ErrorCode = 2

	CodeValidation      ErrorCode = 1024
	CodeInvalidZipCode            = 2 | CodeValidation
	CodeInvalidHouseNr            = 3 | CodeValidation
	CodeInvalidUserName           = 4 | CodeValidation
)

var Catalog = rop.MustCatalog(
	rop.Base("UserNotFound", CodeUserNotFound),
	rop.Base("NoUsersAtAddress", CodeNoUsersAtAddress),
	rop.Category("ValidationError", CodeValidation),
	rop.Base("InvalidZipCode", CodeInvalidZipCode),
	rop.Base("InvalidHouseNr", CodeInvalidHouseNr),
	rop.Base("InvalidUserName", CodeInvalidUserName),
)

func (c ErrorCode) String() string { return Catalog.Name(c) }

type (
	Result[T any] = rop.Result[T, ErrorCode]
	Status        = rop.Status[ErrorCode]
	Error         = rop.Error[ErrorCode]
)

func UserNotFound(id int) Error {
	return rop.Ef(CodeUserNotFound, "User %d not found", id)
}

func NoUsersAtAddress(address string) Error {
	return rop.Ef(CodeNoUsersAtAddress, "No users found at address %s", address)
}

func InvalidZipCode(zip string) Error {
	return rop.Ef(CodeInvalidZipCode, "Zip code %s is not valid - must be 4 digits plus 2 capital letters", zip)
}

func InvalidHouseNr(nr string) Error {
	return rop.Ef(CodeInvalidHouseNr, "House number %s is not valid - must be digit(s) plus optionally a lowercase letter a-z", nr)
}

func InvalidUserName(name string) Error {
	return rop.Ef(CodeInvalidUserName, "User name %q is not valid - must not be blank", name)
}

// Address renders the zip code and house number the way failures report them.
func Address(zip, nr string) string {
	return fmt.Sprintf("%s %s", zip, nr)
}
