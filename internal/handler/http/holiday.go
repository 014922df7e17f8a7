package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
)

type HolidayHandler interface {
	ListHolidays(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// ListHolidays implements HolidayHandler.
func (h *HolidayHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.ListHolidays(r.Context(), holiday.HolidayFilter{Year: r.URL.Query().Get("year")})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, holidays)
}

// CreateHoliday implements HolidayHandler.
func (h *HolidayHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if !decodeJSON(w, r, &req, "CreateHoliday") {
		return
	}

	created, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", created)
}

// DeleteHoliday implements HolidayHandler.
func (h *HolidayHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", holiday.ErrHolidayNotFound)
	if !ok {
		return
	}

	if err := h.holidayService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}
