package controllers

import (
	"net/http"

	"github.com/arunvel/stockkeep-backend/api/responses"
	"github.com/arunvel/stockkeep-backend/api/validators"
	supsvc "github.com/arunvel/stockkeep-backend/internal/suppliers"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
)

func ListSuppliers(svc supsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "supplier service unavailable"))
			return
		}

		suppliers, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, suppliers)
	}
}

func GetSupplier(svc supsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "supplier service unavailable"))
			return
		}

		id, err := uuidParam(r, "supplierId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		supplier, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, supplier)
	}
}

type createSupplierRequest struct {
	Name          string   `json:"name" validate:"required,max=200"`
	ContactPerson string   `json:"contact_person" validate:"required,max=200"`
	Phone         string   `json:"phone" validate:"required,max=32"`
	Email         string   `json:"email" validate:"required"`
	Categories    []string `json:"categories" validate:"required,min=1,dive,required"`
	Address       string   `json:"address,omitempty"`
}

func CreateSupplier(svc supsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "supplier service unavailable"))
			return
		}

		var body createSupplierRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		supplier, err := svc.Create(r.Context(), supsvc.CreateSupplierInput{
			Name:          body.Name,
			ContactPerson: body.ContactPerson,
			Phone:         body.Phone,
			Email:         body.Email,
			Categories:    body.Categories,
			Address:       body.Address,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, supplier)
	}
}

type updateSupplierRequest struct {
	Name          *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	ContactPerson *string   `json:"contact_person,omitempty" validate:"omitempty,max=200"`
	Phone         *string   `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email         *string   `json:"email,omitempty"`
	Categories    *[]string `json:"categories,omitempty" validate:"omitempty,min=1,dive,required"`
	Address       *string   `json:"address,omitempty"`
}

func UpdateSupplier(svc supsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "supplier service unavailable"))
			return
		}

		id, err := uuidParam(r, "supplierId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateSupplierRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		supplier, err := svc.Update(r.Context(), id, supsvc.UpdateSupplierInput{
			Name:          body.Name,
			ContactPerson: body.ContactPerson,
			Phone:         body.Phone,
			Email:         body.Email,
			Categories:    body.Categories,
			Address:       body.Address,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, supplier)
	}
}

func DeleteSupplier(svc supsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "supplier service unavailable"))
			return
		}

		id, err := uuidParam(r, "supplierId")
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
