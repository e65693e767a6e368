package http

import (
	"preparos/internal/domain/batch"
	"preparos/internal/domain/profile"
	"preparos/internal/domain/session"
	"preparos/internal/domain/transfer"
	"preparos/internal/domain/user"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo     user.Repository
	sessionStore user.SessionRepository
	profileRepo  profile.Repository
	batchRepo    batch.Repository
	sessionRepo  session.Repository
	transferRepo transfer.Repository
}
