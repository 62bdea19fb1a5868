package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/washpoint/washpoint/app/repositories"
	"github.com/washpoint/washpoint/app/services"
	"github.com/washpoint/washpoint/pkg/bind"
	"github.com/washpoint/washpoint/pkg/pagination"
	"github.com/washpoint/washpoint/pkg/response"
	"github.com/washpoint/washpoint/pkg/validate"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// clientPayload is the embedded client block of an integrated order request.
type clientPayload struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,min=7,max=20"`
	Address       string `json:"address" validate:"nullable,max=255"`
}

// integratedOrderRequest is the wire form of the integrated workflow. The
// legacy pricing convention survives here and only here: type_name "custom"
// plus custom_amount selects manual pricing; any other type_name selects
// tier resolution and custom_amount is ignored.
type integratedOrderRequest struct {
	Client       clientPayload    `json:"client"`
	CategoryID   uint             `json:"category_id" validate:"required"`
	TypeName     string           `json:"type_name" validate:"required,max=100"`
	Weight       float64          `json:"weight" validate:"nullable,gte=0"`
	CustomAmount *decimal.Decimal `json:"custom_amount"`
	Notes        string           `json:"notes" validate:"nullable,max=500"`
}

// StoreIntegrated handles POST /orders/integrated.
func (c *OrderController) StoreIntegrated(w http.ResponseWriter, r *http.Request) {
	var req integratedOrderRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	// The validator is flat; the client block gets its own pass.
	for field, msg := range validate.Struct(&req.Client) {
		errs["client."+field] = msg
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	mode := services.Predefined()
	if strings.EqualFold(req.TypeName, services.CustomTypeName) {
		if req.CustomAmount == nil {
			response.ValidationError(w, map[string]string{
				"custom_amount": "The custom_amount field is required when type_name is \"custom\".",
			})
			return
		}
		mode = services.Custom(*req.CustomAmount)
	}

	view, err := c.orders.CreateIntegrated(services.IntegratedOrderInput{
		ClientName:    req.Client.Name,
		ClientContact: req.Client.ContactNumber,
		ClientAddress: req.Client.Address,
		CategoryID:    req.CategoryID,
		TypeName:      req.TypeName,
		Weight:        req.Weight,
		Pricing:       mode,
		Notes:         req.Notes,
	})
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, view)
}

// Index handles GET /orders. Optional filters: client_id, category_id,
// status; with_details embeds client and category rows.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination.FromRequest(r)
	filter := repositories.OrderFilter{
		ClientID:   queryUint(r, "client_id"),
		CategoryID: queryUint(r, "category_id"),
		Status:     r.URL.Query().Get("status"),
	}
	orders, page, err := c.orders.List(skip, limit, filter, queryBool(r, "with_details"))
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Paginated(w, orders, page)
}

// Show handles GET /orders/{id}.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := c.orders.Get(id, false)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, order)
}

// ShowDetails handles GET /orders/{id}/details: the order with its client
// and category embedded.
func (c *OrderController) ShowDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := c.orders.Get(id, true)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, order)
}

// Store handles POST /orders, the plain create path with pre-resolved ids.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CreateOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.Create(in)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, order)
}

// Update handles PATCH /orders/{id}.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var in services.UpdateOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.Update(id, in)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, order)
}

// Destroy handles DELETE /orders/{id}.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	if err := c.orders.Delete(id); err != nil {
		response.AppError(w, err)
		return
	}
	response.NoContent(w)
}
