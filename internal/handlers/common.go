package handlers

import "github.com/vitos-sk/MOST/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Category = models.Category
type Question = models.Question
type Vote = models.Vote
type User = models.User
type Admin = models.Admin
