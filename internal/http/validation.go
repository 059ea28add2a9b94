package http

import (
	"net/url"

	"activities-service/internal/service"
)

// ValidateActivityName Валидация path-параметра name.
// Имя кружка — произвольная непустая строка, сравнение чувствительно к регистру.
func ValidateActivityName(name string) error {
	if name == "" {
		return service.ErrBadRequest("activity name is required")
	}
	return nil
}

// ValidateEmail Валидация email для записи/отписки.
// Формат адреса намеренно не проверяется: идентификатором служит любая непустая строка.
func ValidateEmail(email string) error {
	if email == "" {
		return service.ErrBadRequest("email is required")
	}
	return nil
}

// decodeParam снимает URL-экранирование с path-параметра
// (chi отдаёт значение в том виде, в каком оно пришло в пути:
// "Tennis%20Club" → "Tennis Club", "%2B" → "+").
func decodeParam(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
