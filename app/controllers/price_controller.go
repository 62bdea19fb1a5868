package controllers

import (
	"net/http"

	"github.com/washpoint/washpoint/app/services"
	"github.com/washpoint/washpoint/pkg/bind"
	"github.com/washpoint/washpoint/pkg/pagination"
	"github.com/washpoint/washpoint/pkg/response"
)

type PriceController struct {
	prices *services.PriceService
}

func NewPriceController(prices *services.PriceService) *PriceController {
	return &PriceController{prices: prices}
}

// Index handles GET /prices. Optional filters: category_id, type (substring,
// case-insensitive).
func (c *PriceController) Index(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination.FromRequest(r)
	prices, page, err := c.prices.List(skip, limit, queryUint(r, "category_id"), r.URL.Query().Get("type"))
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Paginated(w, prices, page)
}

// Show handles GET /prices/{id}.
func (c *PriceController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid price id")
		return
	}
	price, err := c.prices.Get(id)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, price)
}

// Store handles POST /prices.
func (c *PriceController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CreatePriceInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	price, err := c.prices.Create(in)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, price)
}

// Update handles PATCH /prices/{id}.
func (c *PriceController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid price id")
		return
	}

	var in services.UpdatePriceInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	price, err := c.prices.Update(id, in)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, price)
}

// Destroy handles DELETE /prices/{id}.
func (c *PriceController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid price id")
		return
	}
	if err := c.prices.Delete(id); err != nil {
		response.AppError(w, err)
		return
	}
	response.NoContent(w)
}
