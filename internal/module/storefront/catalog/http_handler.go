package catalog

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/tsel-ticketmaster/tm-catalog/pkg/errors"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/response"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/status"
)

type HTTPHandler struct {
	Validate       *validator.Validate
	CatalogUseCase CatalogUseCase
}

func InitHTTPHandler(router *mux.Router, validate *validator.Validate, catalogUseCase CatalogUseCase) {
	handler := &HTTPHandler{
		Validate:       validate,
		CatalogUseCase: catalogUseCase,
	}

	router.HandleFunc("/tm-catalog/v1/storefront/events", handler.GetEvents).Methods(http.MethodGet)
}

func (handler HTTPHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := GetEventsRequest{}
	req.PopulateFromQuery(r.URL.Query())

	if err := handler.Validate.StructCtx(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	events, err := handler.CatalogUseCase.FetchEvents(ctx, req.FilterSpec(), req.TeamID, req.ShowAll)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	resp := GetEventsResponse{}
	resp.PopulateFromEntities(events)

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "events are retrieved",
		Data:    resp,
		Meta:    GetEventsMeta{Total: len(resp)},
	})
}
