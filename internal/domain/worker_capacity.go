package domain

// WorkerCapacity вычисляет количество параллельных заказов:
// активные сотрудники + владелец, но не меньше MinWorkerCapacity
func WorkerCapacity(rosterSize int) int {
	return FloorCapacity(rosterSize + 1)
}

// FloorCapacity ограничивает ёмкость снизу, чтобы некорректная настройка
// не превращала весь день в занятый
func FloorCapacity(capacity int) int {
	if capacity < MinWorkerCapacity {
		return MinWorkerCapacity
	}
	return capacity
}
