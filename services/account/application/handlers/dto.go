package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/account/domain/models"
)

// ProfileResponse is the public view of an account.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"       example:"Tendai Repairs"`
	Email     string    `json:"email"      example:"tendai@repairs.example"`
	Sex       string    `json:"sex"        example:"Female"`
	Location  string    `json:"location"   example:"Mutare"`
	Workers   int       `json:"workers"    example:"3"`
	Sector    string    `json:"sector"     example:"Services"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name ProfileResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid email or password"`
} // @name ErrorResponse

func toProfile(a *models.Account) ProfileResponse {
	return ProfileResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Sex:       a.Sex,
		Location:  a.Location,
		Workers:   a.Workers,
		Sector:    a.Sector.String(),
		CreatedAt: a.CreatedAt,
	}
}
