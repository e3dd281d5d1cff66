package resolver

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tsel-ticketmaster/tm-catalog/pkg/errors"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/response"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/status"
)

type HTTPHandler struct {
	ResolverUseCase ResolverUseCase
}

func InitHTTPHandler(router *mux.Router, resolverUseCase ResolverUseCase) {
	handler := &HTTPHandler{
		ResolverUseCase: resolverUseCase,
	}

	router.HandleFunc("/tm-catalog/v1/storefront/sports/{sportSlug}/tournaments/{tournamentSlug}", handler.ResolveTournament).Methods(http.MethodGet)
	router.HandleFunc("/tm-catalog/v1/storefront/sports/{sportSlug}/tournaments/{tournamentSlug}/events/{eventSlug}", handler.ResolveEvent).Methods(http.MethodGet)
}

func (handler HTTPHandler) ResolveTournament(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	res, err := handler.ResolverUseCase.ResolveTournament(ctx, vars["sportSlug"], r.URL.Query().Get("sport_type"), vars["tournamentSlug"])
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	if res == nil {
		response.JSON(w, http.StatusNotFound, response.RESTEnvelope{
			Status:  status.NOT_FOUND,
			Message: "tournament is not found",
		})

		return
	}

	resp := ResolveTournamentResponse{}
	resp.PopulateFromResolution(*res)

	httpStatus := http.StatusOK
	statusWord := status.OK
	if res.Redirect {
		httpStatus = http.StatusMovedPermanently
		statusWord = status.MOVED_PERMANENTLY
		w.Header().Set("Location", res.CanonicalPath)
	}

	response.JSON(w, httpStatus, response.RESTEnvelope{
		Status:  statusWord,
		Message: "tournament is resolved",
		Data:    resp,
	})
}

func (handler HTTPHandler) ResolveEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	res, err := handler.ResolverUseCase.ResolveEvent(ctx, r.URL.Query().Get("sport_type"), vars["sportSlug"], vars["tournamentSlug"], vars["eventSlug"])
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	if res == nil {
		response.JSON(w, http.StatusNotFound, response.RESTEnvelope{
			Status:  status.NOT_FOUND,
			Message: "event is not found",
		})

		return
	}

	resp := ResolveEventResponse{}
	resp.PopulateFromResolution(*res)

	httpStatus := http.StatusOK
	statusWord := status.OK
	if res.Redirect {
		httpStatus = http.StatusMovedPermanently
		statusWord = status.MOVED_PERMANENTLY
		w.Header().Set("Location", res.CanonicalPath)
	}

	response.JSON(w, httpStatus, response.RESTEnvelope{
		Status:  statusWord,
		Message: "event is resolved",
		Data:    resp,
	})
}
