package job

import "errors"

var (
	// ErrJobNotFound возвращается, когда заказ не найден
	ErrJobNotFound = errors.New("job.repository: job not found")

	// ErrTransaction возвращается, когда операция требует активной транзакции
	ErrTransaction = errors.New("job.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("job.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("job.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("job.repository: failed to scan row")

	// ErrCannotCancel возвращается, когда заказ не в статусе scheduled
	ErrCannotCancel = errors.New("job.repository: job cannot be cancelled")
)
