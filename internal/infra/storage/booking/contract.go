package booking

import "github.com/m04kA/CampusBook-Service/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
// Поддерживает *sql.DB и обёртку с метриками *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
