package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fruitmart/shop-api/internal/api/metrics"
	"github.com/fruitmart/shop-api/internal/core/domain"
	"github.com/fruitmart/shop-api/internal/core/ports"
)

// MemberHandler handles registration and login. Both routes accept JSON and
// classic form-encoded bodies; echo's binder picks by content type.
type MemberHandler struct {
	members ports.MemberService
	carts   ports.CartService
}

func NewMemberHandler(members ports.MemberService, carts ports.CartService) *MemberHandler {
	return &MemberHandler{members: members, carts: carts}
}

type registerRequest struct {
	Username  string `json:"username"  form:"username"  validate:"required"`
	Email     string `json:"email"     form:"email"     validate:"required,email"`
	Password  string `json:"password"  form:"password"  validate:"required"`
	Phone     string `json:"phone"     form:"phone"`
	Birthdate string `json:"birthdate" form:"birthdate"`
}

type loginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type memberResponse struct {
	Token  string         `json:"token,omitempty"`
	Member *domain.Member `json:"member,omitempty"`
}

// Register creates a new member account.
//
// @Summary      Register a new member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Member registration details"
// @Success      201   {object}  memberResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *MemberHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.members.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		return err
	}

	metrics.MembersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, memberResponse{Member: member})
}

// Login authenticates a member, starts their cart session, and returns a
// signed token.
//
// @Summary      Login
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  memberResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *MemberHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, member, err := h.members.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	// Login is the only transition into an active session. StartSession is
	// idempotent, so a second login keeps the in-progress cart.
	if err := h.carts.StartSession(c.Request().Context(), member.ID); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, memberResponse{Token: token, Member: member})
}
