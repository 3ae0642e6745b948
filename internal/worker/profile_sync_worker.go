package worker

import (
	"github.com/spec-kit/bookstore/internal/service"
)

// StartProfileSyncWorker registers the profile sync handlers.
func StartProfileSyncWorker(profileSync *service.ProfileSyncService) {
	if profileSync == nil {
		return
	}
	profileSync.RegisterHandlers()
}
