package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxMemberID extracts the member id injected by the Auth middleware and
// fast-fails before any service call: a missing id means the middleware
// did not run or the token carried no identity.
func ctxMemberID(c echo.Context) (int64, error) {
	memberID, ok := c.Get("member_id").(int64)
	if !ok || memberID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return memberID, nil
}
