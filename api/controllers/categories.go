package controllers

import (
	"net/http"

	"github.com/arunvel/stockkeep-backend/api/responses"
	"github.com/arunvel/stockkeep-backend/pkg/enums"
)

// ListCategories returns the fixed set of item categories.
func ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, enums.ItemCategories())
	}
}
