package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/webyte/ploutos-ledger-api/internal/scheduler"
	"github.com/webyte/ploutos-ledger-api/pkg/apiErrors"
)

// CronJobServices agrupa os agendadores controláveis pela API
type CronJobServices struct {
	BackupSyncService *scheduler.BackupSyncService
}

// RunCronJob dispara manualmente a execução de um agendador
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch jobType {
		case "backup-sync":
			services.BackupSyncService.TriggerManualSync(r.Context())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de rotina desconhecido", map[string]any{
				"type": jobType,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"type":   jobType,
		})
	}
}

// GetCronStatus devolve o status dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"backup_sync": services.BackupSyncService.GetStatus(),
		})
	}
}
