package apperr

import "errors"

// Сентинельные ошибки ядра. Слои выше оборачивают их через %w,
// хэндлеры различают вид через errors.Is.
var (
	// ErrInvalidCoordinate - широта или долгота вне допустимого диапазона
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidQuery - некорректные параметры поиска (радиус <= 0, неверный центр)
	ErrInvalidQuery = errors.New("invalid query")

	// ErrAlreadyRegistered - повторная регистрация волонтера
	ErrAlreadyRegistered = errors.New("volunteer already registered")

	// ErrNotRegistered - операция над незарегистрированным волонтером
	ErrNotRegistered = errors.New("volunteer not registered")

	// ErrNotFound - запись (локация, профиль, инцидент) отсутствует
	ErrNotFound = errors.New("not found")
)
