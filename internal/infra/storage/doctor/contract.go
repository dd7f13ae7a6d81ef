package doctor

import (
	"github.com/m04kA/SMC-DoctorService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
// Транзакция попадает в репозиторий через контекст (dbmetrics.GetExecutor)
type DBExecutor = dbmetrics.DBExecutor
