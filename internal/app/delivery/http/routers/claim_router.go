package routers

import (
	"claimgate-service/internal/app/services/claims"

	"github.com/go-chi/chi/v5"
)

func attachClaimRoutes(r chi.Router, claimController *claims.ClaimController) {
	r.Post("/validate", claimController.ValidateClaim)
	r.Post("/submit", claimController.SubmitClaim)
	r.Get("/{submissionID}", claimController.GetSubmissionByID)
}
