package controllers

import (
	"net/http"

	"github.com/washpoint/washpoint/app/services"
	"github.com/washpoint/washpoint/pkg/bind"
	"github.com/washpoint/washpoint/pkg/pagination"
	"github.com/washpoint/washpoint/pkg/response"
)

type ClientController struct {
	clients *services.ClientService
}

func NewClientController(clients *services.ClientService) *ClientController {
	return &ClientController{clients: clients}
}

// Index handles GET /clients.
func (c *ClientController) Index(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination.FromRequest(r)
	clients, page, err := c.clients.List(skip, limit)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Paginated(w, clients, page)
}

// Show handles GET /clients/{id}.
func (c *ClientController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid client id")
		return
	}
	client, err := c.clients.Get(id)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, client)
}

// Store handles POST /clients.
func (c *ClientController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CreateClientInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	client, err := c.clients.Create(in)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, client)
}

// Update handles PATCH /clients/{id}.
func (c *ClientController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid client id")
		return
	}

	var in services.UpdateClientInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	client, err := c.clients.Update(id, in)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, client)
}

// Destroy handles DELETE /clients/{id}.
func (c *ClientController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid client id")
		return
	}
	if err := c.clients.Delete(id); err != nil {
		response.AppError(w, err)
		return
	}
	response.NoContent(w)
}
