package controller

import (
	"github.com/dilshat/guest-book/model"
	"github.com/dilshat/guest-book/service"
	"github.com/dilshat/guest-book/util"
	"github.com/labstack/echo/v4"
	"net/http"
)

const (
	CallerHeader  = "X-Predecessor-Account-Id"
	DepositHeader = "X-Attached-Deposit"

	invocationKey = "invocation"
)

type InvalidContextErr struct {
	message string
}

func (e *InvalidContextErr) Error() string {
	return e.message
}

func NewInvalidContextError(msg string) *InvalidContextErr {
	return &InvalidContextErr{message: msg}
}

//ParseInvocation reads the caller and attached deposit the host put on the request
func ParseInvocation(r *http.Request) (service.Invocation, error) {
	caller := r.Header.Get(CallerHeader)
	if util.IsBlank(caller) {
		return service.Invocation{}, NewInvalidContextError("Missing " + CallerHeader)
	}

	deposit, err := model.ParseDeposit(r.Header.Get(DepositHeader))
	if err != nil {
		return service.Invocation{}, NewInvalidContextError("Invalid " + DepositHeader + ": " + err.Error())
	}

	return service.Invocation{Caller: caller, Deposit: deposit}, nil
}

//HostContext rejects calls without a valid invocation context and
//stores the parsed one for the handler
func HostContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		inv, err := ParseInvocation(c.Request())
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}
		c.Set(invocationKey, inv)
		return next(c)
	}
}

func invocationOf(c echo.Context) (service.Invocation, error) {
	inv, ok := c.Get(invocationKey).(service.Invocation)
	if !ok {
		return service.Invocation{}, NewInvalidContextError("Missing invocation context")
	}
	return inv, nil
}
