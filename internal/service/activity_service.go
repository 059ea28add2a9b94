// Package service содержит бизнес-логику записи участников на кружки.
package service

import (
	"context"
	"errors"
	"fmt"

	"activities-service/internal/model"
	"activities-service/internal/repository"
)

// Registry описывает контракт реестра кружков для бизнес-слоя.
type Registry interface {
	ListActivities(ctx context.Context) (map[string]model.Activity, error)
	AddParticipant(ctx context.Context, activityName, email string) error
	RemoveParticipant(ctx context.Context, activityName, email string) error
}

// ActivityService инкапсулирует операции над реестром кружков:
// выдачу списка, запись и отписку участников.
type ActivityService struct {
	registry Registry
}

// NewActivityService создаёт новый сервис поверх реестра кружков.
func NewActivityService(registry Registry) *ActivityService {
	return &ActivityService{registry: registry}
}

// List возвращает полный реестр: имя кружка → запись с участниками.
func (s *ActivityService) List(ctx context.Context) (map[string]model.Activity, error) {
	activities, err := s.registry.ListActivities(ctx)
	if err != nil {
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list activities",
			Status:  500,
			Err:     err,
		}
	}
	return activities, nil
}

// Signup записывает email на кружок и возвращает подтверждающее сообщение.
// Емейл не валидируется как адрес — подходит любая непустая строка.
// Вместимость кружка при записи намеренно не проверяется.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	if activityName == "" {
		return "", ErrBadRequest("activity name is required")
	}
	if email == "" {
		return "", ErrBadRequest("email is required")
	}

	err := s.registry.AddParticipant(ctx, activityName, email)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return "", ErrNotFound("Activity not found")
		}
		if errors.Is(err, repository.ErrAlreadySignedUp) {
			return "", ErrDomain("ALREADY_SIGNED_UP", fmt.Sprintf("%s is already signed up for %s", email, activityName))
		}
		return "", &AppError{
			Code:    "INTERNAL",
			Message: "failed to sign up",
			Status:  500,
			Err:     err,
		}
	}

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister отписывает email от кружка и возвращает подтверждающее сообщение.
// Порядок остальных участников сохраняется.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if activityName == "" {
		return "", ErrBadRequest("activity name is required")
	}
	if email == "" {
		return "", ErrBadRequest("email is required")
	}

	err := s.registry.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return "", ErrNotFound("Activity not found")
		}
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return "", ErrNotFound("Participant not found")
		}
		return "", &AppError{
			Code:    "INTERNAL",
			Message: "failed to unregister",
			Status:  500,
			Err:     err,
		}
	}

	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}
