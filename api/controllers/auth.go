package controllers

import (
	"net/http"

	"github.com/saracafe/saracafe-backend/api/responses"
	"github.com/saracafe/saracafe-backend/api/validators"
	authsvc "github.com/saracafe/saracafe-backend/internal/auth"
	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
	"github.com/saracafe/saracafe-backend/pkg/logger"
)

// AuthLogin handles credential exchange for an access token.
func AuthLogin(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
