package routers

import (
	"claimgate-service/internal/app/services/remittances"

	"github.com/go-chi/chi/v5"
)

func attachRemittanceRoutes(r chi.Router, remittanceController *remittances.RemittanceController) {
	r.Post("/decode", remittanceController.DecodeRemittance)
	r.Post("/summarize", remittanceController.SummarizeRemittance)
	r.Post("/intake", remittanceController.AcceptRemittance)
	r.Get("/{traceNumber}/report", remittanceController.GetReportByTrace)
}
