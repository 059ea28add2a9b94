// Package repository содержит реализации реестра кружков: основную
// in-memory и опциональную поверх Postgres.
package repository

import (
	"context"
	"sync"

	"activities-service/internal/model"
)

// MemoryRegistry хранит кружки в памяти процесса.
// Состояние живёт только до рестарта; мьютекс защищает map от
// одновременных запросов стандартного net/http-сервера.
type MemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]model.Activity
}

// NewMemoryRegistry создаёт реестр, заполненный переданным набором кружков.
func NewMemoryRegistry(seed map[string]model.Activity) *MemoryRegistry {
	activities := make(map[string]model.Activity, len(seed))
	for name, a := range seed {
		activities[name] = a.Clone()
	}
	return &MemoryRegistry{activities: activities}
}

// ListActivities возвращает копию всего реестра: имя кружка → запись.
func (r *MemoryRegistry) ListActivities(_ context.Context) (map[string]model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// AddParticipant дописывает email в конец списка участников кружка.
func (r *MemoryRegistry) AddParticipant(_ context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}

	a.Participants = append(a.Participants, email)
	r.activities[activityName] = a
	return nil
}

// RemoveParticipant удаляет ровно один email, сохраняя порядок остальных участников.
func (r *MemoryRegistry) RemoveParticipant(_ context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}

	idx := -1
	for i, p := range a.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrParticipantNotFound
	}

	a.Participants = append(a.Participants[:idx], a.Participants[idx+1:]...)
	r.activities[activityName] = a
	return nil
}
