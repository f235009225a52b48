package service

import "errors"

// Ошибки уровня бизнес-логики, по которым хэндлеры выбирают HTTP-статус
var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrAlertNotFound  = errors.New("alert not found")
	ErrAlertNotActive = errors.New("alert is not active")
	ErrNoLocationData = errors.New("no location data for trip")
	// ErrContention возвращается, когда блокировка поездки не получена за
	// отведённое время; запрос можно безопасно повторить
	ErrContention = errors.New("trip is locked by concurrent update")
)
