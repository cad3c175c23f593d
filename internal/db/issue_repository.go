package db

import (
	"github.com/pallasgreen/issuedesk/internal/models"
	"gorm.io/gorm"
)

type IssueRepository struct {
	database *gorm.DB
}

func NewIssueRepository(database *gorm.DB) *IssueRepository {
	return &IssueRepository{database: database}
}

func (repo *IssueRepository) Create(issue *models.Issue) error {
	return repo.database.Create(issue).Error
}
