package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/arunvel/stockkeep-backend/api/responses"
	"github.com/arunvel/stockkeep-backend/api/validators"
	invsvc "github.com/arunvel/stockkeep-backend/internal/inventory"
	"github.com/arunvel/stockkeep-backend/internal/notifications"
	"github.com/arunvel/stockkeep-backend/pkg/db/models"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
)

// ListItems returns inventory items, optionally filtered by the `search`
// and `category` query parameters.
func ListItems(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		items, err := svc.List(r.Context(), invsvc.ListInput{
			Search:   validators.SanitizeString(r.URL.Query().Get("search"), 200),
			Category: validators.SanitizeString(r.URL.Query().Get("category"), 100),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

func GetItem(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		id, err := uuidParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

type createItemRequest struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Category string          `json:"category" validate:"required"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Price    decimal.Decimal `json:"price"`
}

func CreateItem(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var body createItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), invsvc.CreateItemInput{
			Name:     body.Name,
			Category: body.Category,
			Quantity: body.Quantity,
			Price:    body.Price,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

type updateItemRequest struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Category *string          `json:"category,omitempty"`
	Quantity *int             `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

func UpdateItem(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		id, err := uuidParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Update(r.Context(), id, invsvc.UpdateItemInput{
			Name:     body.Name,
			Category: body.Category,
			Quantity: body.Quantity,
			Price:    body.Price,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

func DeleteItem(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		id, err := uuidParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type adjustQuantityRequest struct {
	Amount int `json:"amount" validate:"omitempty,min=1"`
}

func (b adjustQuantityRequest) amountOrDefault() int {
	if b.Amount <= 0 {
		return 1
	}
	return b.Amount
}

// IncrementItem raises the stored quantity. The body is optional; a missing
// or zero amount adjusts by one.
func IncrementItem(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return adjustQuantity(svc, logg, +1)
}

// DecrementItem lowers the stored quantity, never below zero.
func DecrementItem(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return adjustQuantity(svc, logg, -1)
}

func adjustQuantity(svc invsvc.Service, logg *logger.Logger, sign int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		id, err := uuidParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body adjustQuantityRequest
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &body); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		item, err := svc.AdjustQuantity(r.Context(), id, sign*body.amountOrDefault())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// DownloadItemPDF streams the item sheet, regenerating it when the file is
// missing on disk.
func DownloadItemPDF(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		id, err := uuidParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		path, filename, err := svc.PDFPath(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		http.ServeFile(w, r, path)
	}
}

// LowStockItems lists every item at or below the configured threshold.
func LowStockItems(svc invsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		items, err := svc.LowStock(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// NotifyLowStock emails the suppliers covering the item's category about the
// current stock level.
func NotifyLowStock(items invsvc.Service, notifier notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if items == nil || notifier == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification service unavailable"))
			return
		}

		id, err := uuidParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := items.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := notifier.NotifyLowStock(r.Context(), &models.InventoryItem{
			ID:       dto.ID,
			Name:     dto.Name,
			Category: dto.Category,
			Quantity: dto.Quantity,
			Price:    dto.Price,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
