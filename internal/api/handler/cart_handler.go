package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fruitmart/shop-api/internal/api/metrics"
	"github.com/fruitmart/shop-api/internal/core/domain"
	"github.com/fruitmart/shop-api/internal/core/ports"
)

// qtyFieldPrefix is the form field convention for quantity updates:
// one qty_<product_id> field per cart row.
const qtyFieldPrefix = "qty_"

// CartHandler handles the shop listing, cart mutation, and checkout routes.
// All of them require a verified token and an active cart session.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// ListProducts handles GET /v1/products.
//
// @Summary      List the product catalog
// @Tags         shop
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  productListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/products [get]
func (h *CartHandler) ListProducts(c echo.Context) error {
	memberID, err := ctxMemberID(c)
	if err != nil {
		return err
	}

	products, err := h.carts.ListProducts(c.Request().Context(), memberID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productListResponse{Products: products})
}

// AddItem handles POST /v1/cart/items/:product_id — adds one unit and
// responds with the refreshed cart.
//
// @Summary      Add one unit of a product to the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      int  true  "Product id"
// @Success      200         {object}  cartResponse
// @Failure      400         {object}  map[string]string
// @Failure      401         {object}  map[string]string
// @Router       /v1/cart/items/{product_id} [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	memberID, err := ctxMemberID(c)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	view, err := h.carts.AddItem(c.Request().Context(), memberID, productID)
	if err != nil {
		return err
	}

	metrics.CartItemsAddedTotal.Inc()
	return c.JSON(http.StatusOK, cartResponse{Items: view.Items, Total: view.Total})
}

// ViewCart handles GET /v1/cart.
//
// @Summary      View the priced cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/cart [get]
func (h *CartHandler) ViewCart(c echo.Context) error {
	memberID, err := ctxMemberID(c)
	if err != nil {
		return err
	}

	view, err := h.carts.ViewCart(c.Request().Context(), memberID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse{Items: view.Items, Total: view.Total})
}

// UpdateCart handles PUT /v1/cart. JSON clients send an items list;
// form clients send one qty_<product_id> field per cart row. Only submitted
// product ids are touched.
//
// @Summary      Update cart quantities
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCartRequest  true  "Quantity updates"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/cart [put]
func (h *CartHandler) UpdateCart(c echo.Context) error {
	memberID, err := ctxMemberID(c)
	if err != nil {
		return err
	}

	updates, err := bindQuantityUpdates(c)
	if err != nil {
		return err
	}

	view, err := h.carts.UpdateQuantities(c.Request().Context(), memberID, updates)
	if err != nil {
		return err
	}

	for _, u := range updates {
		metrics.CartUpdatesTotal.WithLabelValues(updateOutcome(u.Quantity)).Inc()
	}
	return c.JSON(http.StatusOK, cartResponse{Items: view.Items, Total: view.Total})
}

// updateOutcome classifies a submitted quantity the same way the cart
// service applies it.
func updateOutcome(raw string) string {
	qty, ok := domain.ParseQuantity(raw)
	switch {
	case !ok:
		return "skipped"
	case qty == 0:
		return "removed"
	default:
		return "applied"
	}
}

// Checkout handles GET /v1/checkout — the order summary, priced by the
// same logic as the cart view.
//
// @Summary      Checkout summary
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/checkout [get]
func (h *CartHandler) Checkout(c echo.Context) error {
	memberID, err := ctxMemberID(c)
	if err != nil {
		return err
	}

	view, err := h.carts.Checkout(c.Request().Context(), memberID)
	if err != nil {
		return err
	}

	metrics.CheckoutsTotal.Inc()
	metrics.CheckoutTotalValue.Observe(float64(view.Total))
	return c.JSON(http.StatusOK, cartResponse{Items: view.Items, Total: view.Total})
}

// bindQuantityUpdates translates either body format into the service input.
func bindQuantityUpdates(c echo.Context) ([]ports.QuantityUpdate, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationForm) ||
		strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return formQuantityUpdates(c)
	}

	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updates := make([]ports.QuantityUpdate, 0, len(req.Items))
	for _, item := range req.Items {
		updates = append(updates, ports.QuantityUpdate{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return updates, nil
}

func formQuantityUpdates(c echo.Context) ([]ports.QuantityUpdate, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	var updates []ports.QuantityUpdate
	for field, values := range params {
		if !strings.HasPrefix(field, qtyFieldPrefix) || len(values) == 0 {
			continue
		}
		productID, err := strconv.Atoi(strings.TrimPrefix(field, qtyFieldPrefix))
		if err != nil {
			continue
		}
		updates = append(updates, ports.QuantityUpdate{ProductID: productID, Quantity: values[0]})
	}
	return updates, nil
}
