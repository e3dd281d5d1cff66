package ticket

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tsel-ticketmaster/tm-catalog/pkg/errors"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/response"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/status"
)

type HTTPHandler struct {
	TicketUseCase TicketUseCase
}

func InitHTTPHandler(router *mux.Router, ticketUseCase TicketUseCase) {
	handler := &HTTPHandler{
		TicketUseCase: ticketUseCase,
	}

	router.HandleFunc("/tm-catalog/v1/storefront/events/{eventID}/tickets", handler.GetEventTickets).Methods(http.MethodGet)
}

func (handler HTTPHandler) GetEventTickets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID := mux.Vars(r)["eventID"]
	if eventID == "" {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: "event id is required",
		})

		return
	}

	tickets, err := handler.TicketUseCase.GetEventTickets(ctx, eventID)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	resp := GetEventTicketsResponse{}
	resp.PopulateFromEntity(tickets)

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "event's tickets have been fetched",
		Data:    resp,
	})
}
