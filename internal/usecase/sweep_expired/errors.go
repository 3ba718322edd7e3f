package sweep_expired

import "errors"

var (
	// ErrInternal возвращается, когда не удалось получить снимок коллекции
	// Отказ отдельной архивации внутренней ошибкой не считается - проход
	// продолжается, отказ попадает в результат
	ErrInternal = errors.New("sweep_expired: internal error")
)
