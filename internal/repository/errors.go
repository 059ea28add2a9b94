package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если кружок с таким именем не найден в реестре.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrParticipantNotFound возвращается, если email не числится среди участников кружка.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrAlreadySignedUp возвращается при повторной записи того же email на кружок.
	ErrAlreadySignedUp = errors.New("participant already signed up")
)
