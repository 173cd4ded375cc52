package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	Interview *InterviewRepository
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		Interview: NewInterviewRepository(db),
	}
}
