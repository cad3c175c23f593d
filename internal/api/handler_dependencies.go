package api

import (
	"github.com/pallasgreen/issuedesk/internal/db"
	"github.com/pallasgreen/issuedesk/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.accountService == nil {
		handler.accountService = services.NewAccountService(handler.repositories.Users)
	}
}
