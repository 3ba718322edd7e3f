package sweep_expired

// FailedArchive отказ архивации одной записи в рамках прохода
type FailedArchive struct {
	BookingID int64
	Reason    string
}

// Result итог одного прохода очистки
// Итоговое состояние - то подмножество, которое удалось заархивировать:
// атомарности по батчу нет
type Result struct {
	// ExpiredCount сколько активных записей прошло точку истечения
	ExpiredCount int
	// ArchivedIDs записи, заархивированные этим проходом
	ArchivedIDs []int64
	// Failed записи, архивация которых не удалась
	Failed []FailedArchive
}
