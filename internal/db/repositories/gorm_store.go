package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jamii-hub/mtaani/internal/models/entities"
)

// GormStore is the relational Store implementation. Postgres in
// production, sqlite in tests; behavior is identical either way.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the eight platform tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&entities.User{},
		&entities.Event{},
		&entities.Ticket{},
		&entities.Harambee{},
		&entities.Contribution{},
		&entities.Rental{},
		&entities.Alert{},
		&entities.Comment{},
	)
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// isUniqueViolation matches both the postgres and sqlite driver
// messages for unique index violations.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Users

func (s *GormStore) GetUser(ctx context.Context, id int) (*entities.User, error) {
	var user entities.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	stored := *user
	stored.ID = 0
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, translateErr(err)
	}
	return &stored, nil
}

func (s *GormStore) UpdateUserVerification(ctx context.Context, id int, verified bool) (*entities.User, error) {
	var user entities.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return translateErr(err)
		}
		if err := tx.Model(&user).UpdateColumn("verified", verified).Error; err != nil {
			return fmt.Errorf("update verification: %w", err)
		}
		user.Verified = verified
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Events

func (s *GormStore) ListEvents(ctx context.Context, limit, offset int) ([]entities.Event, error) {
	limit, offset = normalizePage(limit, offset)
	events := []entities.Event{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *GormStore) GetEvent(ctx context.Context, id int) (*entities.Event, error) {
	var event entities.Event
	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &event, nil
}

func (s *GormStore) CreateEvent(ctx context.Context, event *entities.Event) (*entities.Event, error) {
	stored := *event
	stored.ID = 0
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &stored, nil
}

// Tickets

func (s *GormStore) ListTicketsByEvent(ctx context.Context, eventID int) ([]entities.Ticket, error) {
	tickets := []entities.Ticket{}
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("list tickets by event: %w", err)
	}
	return tickets, nil
}

func (s *GormStore) ListTicketsByUser(ctx context.Context, userID int) ([]entities.Ticket, error) {
	tickets := []entities.Ticket{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("list tickets by user: %w", err)
	}
	return tickets, nil
}

func (s *GormStore) CreateTicket(ctx context.Context, ticket *entities.Ticket) (*entities.Ticket, error) {
	stored := *ticket
	stored.ID = 0
	stored.Used = false
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &stored, nil
}

// Harambees

func (s *GormStore) ListHarambees(ctx context.Context, limit, offset int) ([]entities.Harambee, error) {
	limit, offset = normalizePage(limit, offset)
	harambees := []entities.Harambee{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&harambees).Error
	if err != nil {
		return nil, fmt.Errorf("list harambees: %w", err)
	}
	return harambees, nil
}

func (s *GormStore) GetHarambee(ctx context.Context, id int) (*entities.Harambee, error) {
	var harambee entities.Harambee
	if err := s.db.WithContext(ctx).First(&harambee, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &harambee, nil
}

func (s *GormStore) CreateHarambee(ctx context.Context, harambee *entities.Harambee) (*entities.Harambee, error) {
	stored := *harambee
	stored.ID = 0
	stored.RaisedAmount = 0
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create harambee: %w", err)
	}
	return &stored, nil
}

// Contributions

func (s *GormStore) ListContributionsByHarambee(ctx context.Context, harambeeID int) ([]entities.Contribution, error) {
	contributions := []entities.Contribution{}
	err := s.db.WithContext(ctx).
		Where("harambee_id = ?", harambeeID).
		Order("id ASC").
		Find(&contributions).Error
	if err != nil {
		return nil, fmt.Errorf("list contributions by harambee: %w", err)
	}
	return contributions, nil
}

func (s *GormStore) ListContributionsByUser(ctx context.Context, userID int) ([]entities.Contribution, error) {
	contributions := []entities.Contribution{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&contributions).Error
	if err != nil {
		return nil, fmt.Errorf("list contributions by user: %w", err)
	}
	return contributions, nil
}

// CreateContribution inserts the contribution and bumps the parent
// harambee's raised amount in one transaction. The increment runs in
// SQL (raised_amount = raised_amount + ?) so concurrent contributions
// never lose an update to a read-modify-write race.
func (s *GormStore) CreateContribution(ctx context.Context, contribution *entities.Contribution) (*entities.Contribution, *entities.Harambee, error) {
	stored := *contribution
	stored.ID = 0
	var updated entities.Harambee

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var harambee entities.Harambee
		if err := tx.First(&harambee, stored.HarambeeID).Error; err != nil {
			return translateErr(err)
		}

		if err := tx.Create(&stored).Error; err != nil {
			return fmt.Errorf("create contribution: %w", err)
		}

		err := tx.Model(&entities.Harambee{}).
			Where("id = ?", harambee.ID).
			UpdateColumn("raised_amount", gorm.Expr("raised_amount + ?", stored.Amount)).Error
		if err != nil {
			return fmt.Errorf("increment raised amount: %w", err)
		}

		return tx.First(&updated, harambee.ID).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &stored, &updated, nil
}

// Rentals

func (s *GormStore) ListRentals(ctx context.Context, category string, limit, offset int) ([]entities.Rental, error) {
	limit, offset = normalizePage(limit, offset)
	rentals := []entities.Rental{}
	query := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Offset(offset)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	return rentals, nil
}

func (s *GormStore) GetRental(ctx context.Context, id int) (*entities.Rental, error) {
	var rental entities.Rental
	if err := s.db.WithContext(ctx).First(&rental, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &rental, nil
}

func (s *GormStore) CreateRental(ctx context.Context, rental *entities.Rental) (*entities.Rental, error) {
	stored := *rental
	stored.ID = 0
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create rental: %w", err)
	}
	return &stored, nil
}

// Alerts

func (s *GormStore) ListAlerts(ctx context.Context, alertType string, limit, offset int) ([]entities.Alert, error) {
	limit, offset = normalizePage(limit, offset)
	alerts := []entities.Alert{}
	query := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Offset(offset)
	if alertType != "" {
		query = query.Where("type = ?", alertType)
	}
	if err := query.Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

func (s *GormStore) GetAlert(ctx context.Context, id int) (*entities.Alert, error) {
	var alert entities.Alert
	if err := s.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &alert, nil
}

func (s *GormStore) CreateAlert(ctx context.Context, alert *entities.Alert) (*entities.Alert, error) {
	stored := *alert
	stored.ID = 0
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}
	return &stored, nil
}

// Comments

func (s *GormStore) ListCommentsByAlert(ctx context.Context, alertID int) ([]entities.Comment, error) {
	comments := []entities.Comment{}
	err := s.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments by alert: %w", err)
	}
	return comments, nil
}

func (s *GormStore) CreateComment(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	stored := *comment
	stored.ID = 0
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &stored, nil
}
