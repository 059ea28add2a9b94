// Package http реализует HTTP-обработчики и DTO поверх доменного сервиса кружков.
package http

// errorResponse повторяет проволочный формат исходного сервиса:
// клиентский фронтенд читает поле detail.
type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}
