package db

import "gorm.io/gorm"

type Repositories struct {
	Users  *UserRepository
	Issues *IssueRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(database),
		Issues: NewIssueRepository(database),
	}
}
