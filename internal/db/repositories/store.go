package repositories

import (
	"context"
	"errors"

	"jamii-hub/mtaani/internal/models/entities"
)

var (
	// ErrNotFound signals a missing record. Handlers translate it to 404.
	ErrNotFound = errors.New("record not found")

	// ErrConflict signals a uniqueness violation (username/email).
	ErrConflict = errors.New("record already exists")
)

// DefaultListLimit is applied when a caller does not supply a limit.
const DefaultListLimit = 10

// Store is the persistence contract for the platform. Two
// implementations exist: MemoryStore (maps, for tests and local
// development) and GormStore (relational, for production). Both must
// behave identically:
//
//   - ids are assigned monotonically per entity type, starting at 1
//   - creation timestamps are server assigned
//   - lists are ordered newest first (created_at desc, id desc),
//     except comments which are oldest first
//   - CreateHarambee forces RaisedAmount to 0
//   - CreateTicket forces Used to false
//   - CreateContribution atomically inserts the contribution and
//     increments the parent harambee's raised amount
type Store interface {
	// Users
	GetUser(ctx context.Context, id int) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	UpdateUserVerification(ctx context.Context, id int, verified bool) (*entities.User, error)

	// Events
	ListEvents(ctx context.Context, limit, offset int) ([]entities.Event, error)
	GetEvent(ctx context.Context, id int) (*entities.Event, error)
	CreateEvent(ctx context.Context, event *entities.Event) (*entities.Event, error)

	// Tickets
	ListTicketsByEvent(ctx context.Context, eventID int) ([]entities.Ticket, error)
	ListTicketsByUser(ctx context.Context, userID int) ([]entities.Ticket, error)
	CreateTicket(ctx context.Context, ticket *entities.Ticket) (*entities.Ticket, error)

	// Harambees
	ListHarambees(ctx context.Context, limit, offset int) ([]entities.Harambee, error)
	GetHarambee(ctx context.Context, id int) (*entities.Harambee, error)
	CreateHarambee(ctx context.Context, harambee *entities.Harambee) (*entities.Harambee, error)

	// Contributions. CreateContribution returns ErrNotFound and writes
	// nothing when the referenced harambee does not exist; otherwise it
	// returns the stored contribution and the updated harambee.
	ListContributionsByHarambee(ctx context.Context, harambeeID int) ([]entities.Contribution, error)
	ListContributionsByUser(ctx context.Context, userID int) ([]entities.Contribution, error)
	CreateContribution(ctx context.Context, contribution *entities.Contribution) (*entities.Contribution, *entities.Harambee, error)

	// Rentals. An empty category means no filter.
	ListRentals(ctx context.Context, category string, limit, offset int) ([]entities.Rental, error)
	GetRental(ctx context.Context, id int) (*entities.Rental, error)
	CreateRental(ctx context.Context, rental *entities.Rental) (*entities.Rental, error)

	// Alerts. An empty alertType means no filter.
	ListAlerts(ctx context.Context, alertType string, limit, offset int) ([]entities.Alert, error)
	GetAlert(ctx context.Context, id int) (*entities.Alert, error)
	CreateAlert(ctx context.Context, alert *entities.Alert) (*entities.Alert, error)

	// Comments, oldest first within an alert.
	ListCommentsByAlert(ctx context.Context, alertID int) ([]entities.Comment, error)
	CreateComment(ctx context.Context, comment *entities.Comment) (*entities.Comment, error)
}
