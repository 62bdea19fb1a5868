package controllers

import (
	"net/http"

	"github.com/washpoint/washpoint/app/services"
	"github.com/washpoint/washpoint/pkg/bind"
	"github.com/washpoint/washpoint/pkg/pagination"
	"github.com/washpoint/washpoint/pkg/response"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// Index handles GET /categories. A name query parameter turns the listing
// into an exact-name lookup.
func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		category, err := c.categories.GetByName(name)
		if err != nil {
			response.AppError(w, err)
			return
		}
		response.Success(w, category)
		return
	}

	skip, limit := pagination.FromRequest(r)
	categories, page, err := c.categories.List(skip, limit)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Paginated(w, categories, page)
}

// Show handles GET /categories/{id}.
func (c *CategoryController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := c.categories.Get(id)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, category)
}

// Store handles POST /categories.
func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CreateCategoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.categories.Create(in)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, category)
}

// Update handles PATCH /categories/{id}.
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var in services.UpdateCategoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.categories.Update(id, in)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, category)
}

// Destroy handles DELETE /categories/{id}.
func (c *CategoryController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := c.categories.Delete(id); err != nil {
		response.AppError(w, err)
		return
	}
	response.NoContent(w)
}
