package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openmsig/msig-client/internal/wallet"
)

// actionError renders gateway failures as structured 422 responses the
// caller can display inline next to the form that produced them.
func actionError(c echo.Context, err error) error {
	var validation *wallet.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": validation.Message,
			"field": validation.Field,
		})
	}
	var write *wallet.WriteError
	if errors.As(err, &write) {
		// The wrapped cause carries the actionable detail, e.g. which
		// argument was missing; the caller renders it inline.
		message := write.Message
		if write.Err != nil {
			message = fmt.Sprintf("%s: %v", write.Message, write.Err)
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error":  message,
			"action": write.Action,
		})
	}
	var precondition *wallet.PreconditionError
	if errors.As(err, &precondition) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": precondition.Reason,
		})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func parseTxID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &wallet.ValidationError{Field: "id", Message: fmt.Sprintf("%q is not a transaction id", raw)}
	}
	return id, nil
}
