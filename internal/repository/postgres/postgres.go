package postgres

import (
	"database/sql"

	"swipestay-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ReservationRepository
	repository.ReviewRepository
	repository.RenterReviewRepository
	repository.PropertyRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ReservationRepository:  NewReservationRepository(db),
		ReviewRepository:       NewReviewRepository(db),
		RenterReviewRepository: NewRenterReviewRepository(db),
		PropertyRepository:     NewPropertyRepository(db),
		UserRepository:         NewUserRepository(db),
	}
}
