package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	signupdomain "github.com/smallbiznis/familia/internal/signup/domain"
)

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	BirthDate string `json:"birth_date"`
}

// Signup handles POST /v1/auth/signup.
func (s *Server) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEnvelope(c, invalidRequestError("invalid request body"))
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Surname = strings.TrimSpace(req.Surname)

	if req.Email == "" || req.Password == "" || req.Name == "" || req.Surname == "" || req.BirthDate == "" {
		abortWithEnvelope(c, invalidRequestError("email, password, name, surname and birth_date are required"))
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		abortWithEnvelope(c, invalidRequestError("birth_date must be a valid ISO-8601 date"))
		return
	}
	if !birthDate.Before(time.Now()) {
		abortWithEnvelope(c, invalidRequestError("birth_date must be in the past"))
		return
	}

	body := s.signupsvc.Signup(c.Request.Context(), signupdomain.Request{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Surname:   req.Surname,
		BirthDate: birthDate,
	})

	c.JSON(body.StatusCode, body)
}

func parseBirthDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
