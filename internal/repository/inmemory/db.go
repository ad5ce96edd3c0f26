// Package inmemory implements the repository contracts over plain maps.
// It backs the unit tests and mirrors the semantics of the Postgres
// implementation, including the insert-if-absent guards.
package inmemory

import (
	"github.com/katikarohith/quick-teams/internal/domain"
)

type InMemoryStorage struct {
	Members       map[string]*domain.Member
	MemberOrder   []string
	Notifications map[string][]domain.Notification
	Teammates     map[string][]string
	Tokens        map[string]domain.AuthToken

	nextNotificationID int64
}

func NewStorage() *InMemoryStorage {
	return &InMemoryStorage{
		Members:       make(map[string]*domain.Member),
		Notifications: make(map[string][]domain.Notification),
		Teammates:     make(map[string][]string),
		Tokens:        make(map[string]domain.AuthToken),
	}
}
