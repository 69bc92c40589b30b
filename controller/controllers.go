package controller

import (
	"net/http"
	"strconv"

	"github.com/dilshat/guest-book/log"
	"github.com/dilshat/guest-book/model"
	"github.com/dilshat/guest-book/service"
	"github.com/dilshat/guest-book/service/dto"
	"github.com/holiman/uint256"
	"github.com/labstack/echo/v4"
)

const malfunction = "System malfunction. Please, try later"

// AddMessage godoc
// @Summary Add message
// @Description Appends a message to the guest book. Sender and deposit come from the invocation context.
// @Accept json
// @Produce json
// @Param message body dto.NewMessage true "Message"
// @Param X-Predecessor-Account-Id header string true "Caller account"
// @Param X-Attached-Deposit header string false "Attached deposit in yocto units"
// @Success 200 {object} dto.Index
// @Failure 400 "error description"
// @Router /messages [post]
func GetAddMessageFunc(srv service.Service) echo.HandlerFunc {

	return func(c echo.Context) error {
		msg := new(dto.NewMessage)
		if err := c.Bind(msg); err != nil {
			return err
		}

		inv, err := invocationOf(c)
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}

		idx, err := srv.AddMessage(inv, msg.Text)
		if err != nil {
			log.ErrIfErr("Error adding message", err)
			return c.String(http.StatusInternalServerError, malfunction)
		}

		return c.JSON(http.StatusOK, dto.Index{Index: idx})
	}
}

// GetMessages godoc
// @Summary List messages
// @Description Returns a page of messages in insertion order
// @Produce json
// @Param from_index query string false "First index, u128 as decimal string" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} dto.PostedMessage
// @Failure 400 "error description"
// @Router /messages [get]
func GetMessagesFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var from *uint256.Int
		if fromParam := c.QueryParam("from_index"); fromParam != "" {
			v, err := model.ParseU128(fromParam)
			if err != nil {
				return c.String(http.StatusBadRequest, "Invalid from_index "+fromParam)
			}
			from = v
		}

		var limit *uint64
		if limitParam := c.QueryParam("limit"); limitParam != "" {
			v, err := strconv.ParseUint(limitParam, 10, 64)
			if err != nil {
				return c.String(http.StatusBadRequest, "Invalid limit "+limitParam)
			}
			limit = &v
		}

		messages, err := srv.GetMessages(from, limit)
		if err != nil {
			log.ErrIfErr("Error listing messages", err)
			return c.String(http.StatusInternalServerError, malfunction)
		}

		return c.JSON(http.StatusOK, messages)
	}
}

// TotalMessages godoc
// @Summary Count messages
// @Description Returns the number of stored messages
// @Produce json
// @Success 200 {object} dto.Total
// @Router /messages/total [get]
func GetTotalMessagesFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		total, err := srv.TotalMessages()
		if err != nil {
			log.ErrIfErr("Error counting messages", err)
			return c.String(http.StatusInternalServerError, malfunction)
		}

		return c.JSON(http.StatusOK, dto.Total{Total: total})
	}
}
