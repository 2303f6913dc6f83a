package api

import (
	"time"

	"github.com/terraincognita07/fleemy/internal/db"
	"gorm.io/gorm"
)

type Handler struct {
	db                *gorm.DB
	repos             *db.Repositories
	secretKey         []byte
	location          *time.Location
	defaultHourlyRate float64
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, defaultHourlyRate float64) *Handler {
	if location == nil {
		location = time.Local
	}
	if defaultHourlyRate <= 0 {
		defaultHourlyRate = 50
	}

	return &Handler{
		db:                database,
		repos:             db.NewRepositories(database),
		secretKey:         []byte(secret),
		location:          location,
		defaultHourlyRate: defaultHourlyRate,
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
