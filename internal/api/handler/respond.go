package handler

import (
	"log"
	"net/http"

	"user_accounts/internal/common"
)

// respondServiceError maps a service error to its HTTP status. Unexpected
// failures are logged in full but reported to the caller as a bare 500; the
// taxonomy errors carry caller-safe messages and pass through verbatim.
func respondServiceError(w http.ResponseWriter, err error) {
	code := common.HTTPStatusFromError(err)
	if code == http.StatusInternalServerError {
		log.Printf("ERROR: %v", err)
		common.RespondWithError(w, code, "server error")
		return
	}
	common.RespondWithError(w, code, err.Error())
}
