package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"jamii-hub/mtaani/internal/models/entities"
)

// MemoryStore is the map-backed Store implementation used in tests and
// local development. A single mutex guards every operation, which also
// makes the contribution insert + increment sequence atomic.
type MemoryStore struct {
	mu sync.Mutex

	users         map[int]entities.User
	events        map[int]entities.Event
	tickets       map[int]entities.Ticket
	harambees     map[int]entities.Harambee
	contributions map[int]entities.Contribution
	rentals       map[int]entities.Rental
	alerts        map[int]entities.Alert
	comments      map[int]entities.Comment

	userID         int
	eventID        int
	ticketID       int
	harambeeID     int
	contributionID int
	rentalID       int
	alertID        int
	commentID      int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int]entities.User),
		events:        make(map[int]entities.Event),
		tickets:       make(map[int]entities.Ticket),
		harambees:     make(map[int]entities.Harambee),
		contributions: make(map[int]entities.Contribution),
		rentals:       make(map[int]entities.Rental),
		alerts:        make(map[int]entities.Alert),
		comments:      make(map[int]entities.Comment),
	}
}

// Users

func (s *MemoryStore) GetUser(_ context.Context, id int) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u entities.User) bool { return u.Username == username })
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u entities.User) bool { return u.Email == email })
}

func (s *MemoryStore) findUser(match func(entities.User) bool) (*entities.User, error) {
	for _, user := range s.users {
		if match(user) {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, user *entities.User) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, ErrConflict
		}
	}

	s.userID++
	stored := *user
	stored.ID = s.userID
	stored.CreatedAt = time.Now()
	s.users[stored.ID] = stored

	return &stored, nil
}

func (s *MemoryStore) UpdateUserVerification(_ context.Context, id int, verified bool) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user.Verified = verified
	s.users[id] = user

	return &user, nil
}

// Events

func (s *MemoryStore) ListEvents(_ context.Context, limit, offset int) ([]entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]entities.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		return newerFirst(events[i].CreatedAt, events[i].ID, events[j].CreatedAt, events[j].ID)
	})
	return page(events, limit, offset), nil
}

func (s *MemoryStore) GetEvent(_ context.Context, id int) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &event, nil
}

func (s *MemoryStore) CreateEvent(_ context.Context, event *entities.Event) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eventID++
	stored := *event
	stored.ID = s.eventID
	stored.CreatedAt = time.Now()
	s.events[stored.ID] = stored

	return &stored, nil
}

// Tickets

func (s *MemoryStore) ListTicketsByEvent(_ context.Context, eventID int) ([]entities.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := []entities.Ticket{}
	for _, ticket := range s.tickets {
		if ticket.EventID == eventID {
			tickets = append(tickets, ticket)
		}
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })
	return tickets, nil
}

func (s *MemoryStore) ListTicketsByUser(_ context.Context, userID int) ([]entities.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := []entities.Ticket{}
	for _, ticket := range s.tickets {
		if ticket.UserID == userID {
			tickets = append(tickets, ticket)
		}
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })
	return tickets, nil
}

func (s *MemoryStore) CreateTicket(_ context.Context, ticket *entities.Ticket) (*entities.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticketID++
	stored := *ticket
	stored.ID = s.ticketID
	stored.Used = false
	stored.PurchasedAt = time.Now()
	s.tickets[stored.ID] = stored

	return &stored, nil
}

// Harambees

func (s *MemoryStore) ListHarambees(_ context.Context, limit, offset int) ([]entities.Harambee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	harambees := make([]entities.Harambee, 0, len(s.harambees))
	for _, harambee := range s.harambees {
		harambees = append(harambees, harambee)
	}
	sort.Slice(harambees, func(i, j int) bool {
		return newerFirst(harambees[i].CreatedAt, harambees[i].ID, harambees[j].CreatedAt, harambees[j].ID)
	})
	return page(harambees, limit, offset), nil
}

func (s *MemoryStore) GetHarambee(_ context.Context, id int) (*entities.Harambee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	harambee, ok := s.harambees[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &harambee, nil
}

func (s *MemoryStore) CreateHarambee(_ context.Context, harambee *entities.Harambee) (*entities.Harambee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.harambeeID++
	stored := *harambee
	stored.ID = s.harambeeID
	stored.RaisedAmount = 0
	stored.CreatedAt = time.Now()
	s.harambees[stored.ID] = stored

	return &stored, nil
}

// Contributions

func (s *MemoryStore) ListContributionsByHarambee(_ context.Context, harambeeID int) ([]entities.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contributions := []entities.Contribution{}
	for _, contribution := range s.contributions {
		if contribution.HarambeeID == harambeeID {
			contributions = append(contributions, contribution)
		}
	}
	sort.Slice(contributions, func(i, j int) bool { return contributions[i].ID < contributions[j].ID })
	return contributions, nil
}

func (s *MemoryStore) ListContributionsByUser(_ context.Context, userID int) ([]entities.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contributions := []entities.Contribution{}
	for _, contribution := range s.contributions {
		if contribution.UserID == userID {
			contributions = append(contributions, contribution)
		}
	}
	sort.Slice(contributions, func(i, j int) bool { return contributions[i].ID < contributions[j].ID })
	return contributions, nil
}

func (s *MemoryStore) CreateContribution(_ context.Context, contribution *entities.Contribution) (*entities.Contribution, *entities.Harambee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	harambee, ok := s.harambees[contribution.HarambeeID]
	if !ok {
		return nil, nil, ErrNotFound
	}

	s.contributionID++
	stored := *contribution
	stored.ID = s.contributionID
	stored.ContributedAt = time.Now()
	s.contributions[stored.ID] = stored

	harambee.RaisedAmount += stored.Amount
	s.harambees[harambee.ID] = harambee

	return &stored, &harambee, nil
}

// Rentals

func (s *MemoryStore) ListRentals(_ context.Context, category string, limit, offset int) ([]entities.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rentals := []entities.Rental{}
	for _, rental := range s.rentals {
		if category == "" || rental.Category == category {
			rentals = append(rentals, rental)
		}
	}
	sort.Slice(rentals, func(i, j int) bool {
		return newerFirst(rentals[i].CreatedAt, rentals[i].ID, rentals[j].CreatedAt, rentals[j].ID)
	})
	return page(rentals, limit, offset), nil
}

func (s *MemoryStore) GetRental(_ context.Context, id int) (*entities.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental, ok := s.rentals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rental, nil
}

func (s *MemoryStore) CreateRental(_ context.Context, rental *entities.Rental) (*entities.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rentalID++
	stored := *rental
	stored.ID = s.rentalID
	stored.CreatedAt = time.Now()
	s.rentals[stored.ID] = stored

	return &stored, nil
}

// Alerts

func (s *MemoryStore) ListAlerts(_ context.Context, alertType string, limit, offset int) ([]entities.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts := []entities.Alert{}
	for _, alert := range s.alerts {
		if alertType == "" || alert.Type == alertType {
			alerts = append(alerts, alert)
		}
	}
	sort.Slice(alerts, func(i, j int) bool {
		return newerFirst(alerts[i].CreatedAt, alerts[i].ID, alerts[j].CreatedAt, alerts[j].ID)
	})
	return page(alerts, limit, offset), nil
}

func (s *MemoryStore) GetAlert(_ context.Context, id int) (*entities.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert, ok := s.alerts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &alert, nil
}

func (s *MemoryStore) CreateAlert(_ context.Context, alert *entities.Alert) (*entities.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alertID++
	stored := *alert
	stored.ID = s.alertID
	stored.CreatedAt = time.Now()
	s.alerts[stored.ID] = stored

	return &stored, nil
}

// Comments

func (s *MemoryStore) ListCommentsByAlert(_ context.Context, alertID int) ([]entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := []entities.Comment{}
	for _, comment := range s.comments {
		if comment.AlertID == alertID {
			comments = append(comments, comment)
		}
	}
	// Oldest first; ids break timestamp ties.
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (s *MemoryStore) CreateComment(_ context.Context, comment *entities.Comment) (*entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commentID++
	stored := *comment
	stored.ID = s.commentID
	stored.CreatedAt = time.Now()
	s.comments[stored.ID] = stored

	return &stored, nil
}

// newerFirst orders by created_at desc with id desc as tiebreak, so
// insertion order decides between records created in the same instant.
func newerFirst(aTime time.Time, aID int, bTime time.Time, bID int) bool {
	if aTime.Equal(bTime) {
		return aID > bID
	}
	return aTime.After(bTime)
}

func page[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
