package handlers

import (
	"errors"
	"net/http"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	eventsvc "github.com/Ihebmsaed/Artygen/internal/services/events"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/dto"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

type EventsHandler struct {
	service *eventsvc.Service
}

func NewEventsHandler(service *eventsvc.Service) *EventsHandler {
	return &EventsHandler{service: service}
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "EVENTS_SERVICE_UNAVAILABLE", "events service is unavailable")
		return
	}

	var req dto.EventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	event, err := h.service.Create(r.Context(), identity.UserID, eventInput(req))
	if err != nil {
		handleEventsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.NewEventResponse(event))
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "EVENTS_SERVICE_UNAVAILABLE", "events service is unavailable")
		return
	}

	events, err := h.service.List(r.Context())
	if err != nil {
		handleEventsError(w, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		items = append(items, dto.NewEventResponse(event))
	}

	httperrors.Write(w, http.StatusOK, dto.EventListResponse{Events: items})
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "EVENTS_SERVICE_UNAVAILABLE", "events service is unavailable")
		return
	}
	eventID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid event id")
		return
	}

	event, err := h.service.Get(r.Context(), eventID)
	if err != nil {
		handleEventsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewEventResponse(event))
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "EVENTS_SERVICE_UNAVAILABLE", "events service is unavailable")
		return
	}
	eventID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid event id")
		return
	}

	var req dto.EventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	event, err := h.service.Update(r.Context(), eventID, identity.UserID, eventInput(req))
	if err != nil {
		handleEventsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewEventResponse(event))
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "EVENTS_SERVICE_UNAVAILABLE", "events service is unavailable")
		return
	}
	eventID, ok := urlID(r, "id")
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid event id")
		return
	}

	if err := h.service.Delete(r.Context(), eventID, identity.UserID); err != nil {
		handleEventsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *EventsHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	if _, ok := authsvc.IdentityFromContext(r.Context()); !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "EVENTS_SERVICE_UNAVAILABLE", "events service is unavailable")
		return
	}

	var req dto.GenerateEventDescriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	description, err := h.service.GenerateDescription(r.Context(), eventsvc.DescribeInput{
		Title:     req.Title,
		EventType: req.EventType,
		Location:  req.Location,
		StartsAt:  req.StartsAt,
		Capacity:  req.Capacity,
		Tone:      enums.ParseTone(req.Tone),
	})
	if err != nil {
		if writeAIError(w, err) {
			return
		}
		handleEventsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.GenerateEventDescriptionResponse{Description: description})
}

func eventInput(req dto.EventRequest) eventsvc.EventInput {
	return eventsvc.EventInput{
		Title:       req.Title,
		EventType:   req.EventType,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		Capacity:    req.Capacity,
		Description: req.Description,
		AIDescribed: req.AIDescribed,
	}
}

func handleEventsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid event request")
	case errors.Is(err, eventsvc.ErrEventNotFound):
		writeNotFound(w, "EVENT_NOT_FOUND", "event not found")
	case errors.Is(err, eventsvc.ErrForbidden):
		writeForbidden(w, "FORBIDDEN", "only the creator can modify this event")
	case errors.Is(err, eventsvc.ErrGeneration):
		httperrors.Write(w, http.StatusBadGateway, httperrors.APIError{
			Code: "AI_EMPTY_RESULT", Message: "model returned an empty description",
		})
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process event request")
	}
}
