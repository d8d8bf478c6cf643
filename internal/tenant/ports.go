package tenant

import (
	"context"
	"time"
)

type User struct {
	ID      int
	Name    string
	Zip     string
	HouseNr string
}

// Store persists users. Lookups report a missing user with found == false;
// errors are reserved for infrastructure failures.
type Store interface {
	User(ctx context.Context, id int) (name string, found bool, err error)
	SetUser(ctx context.Context, id int, name string) (found bool, err error)
	UsersAtAddress(ctx context.Context, zip, nr string) ([]int, error)
	// Seed inserts users that are not stored yet. Stored users are kept as is.
	Seed(ctx context.Context, users []User) error
}

const EventUserUpdated = "tenant.user_updated"

type UserUpdated struct {
	UserID     int       `json:"user_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishUserUpdated(ctx context.Context, event UserUpdated) error
}

// Service is the tenant API. Domain failures come back as outcomes; the
// error return carries infrastructure failures only.
type Service interface {
	GetUser(ctx context.Context, id int) (Result[string], error)
	UpdateUser(ctx context.Context, id int, name string) (Status, error)
	GetUsersAtAddress(ctx context.Context, zip, nr string) (Result[[]int], error)
	GetUsers(ctx context.Context, ids []int) ([]Result[string], error)
}

// SeedUsers is the fixture every fresh store starts from.
func SeedUsers() []User {
	return []User{
		{ID: 0, Name: "John", Zip: "1234AB", HouseNr: "1"},
		{ID: 1, Name: "Vincent", Zip: "1234AB", HouseNr: "3"},
	}
}
