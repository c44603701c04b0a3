package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karolw/hotel-reservation/internal/booking"
	"github.com/karolw/hotel-reservation/internal/model"
	"github.com/karolw/hotel-reservation/internal/queue"
)

type stubCreator struct {
	res   *model.Reservation
	err   error
	calls int
}

func (s *stubCreator) CreateReservation(_ context.Context, _, _ uint64, _, _ time.Time) (*model.Reservation, error) {
	s.calls++
	return s.res, s.err
}

func postReservation(t *testing.T, h *ReservationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7))
	require.NoError(t, h.Create(c))
	return rec
}

func TestCreateReservationSuccess(t *testing.T) {
	created := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubCreator{res: &model.Reservation{
		ID:               42,
		UserID:           7,
		RoomID:           3,
		StartDate:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:           model.ReservationPending,
		TotalAmountCents: 30000,
		Currency:         "PLN",
		CreatedAt:        created,
	}}
	published := make(chan queue.ReservationCreatedEvent, 1)
	h := &ReservationHandler{
		Coordinator: stub,
		Publish: func(_ context.Context, ev queue.ReservationCreatedEvent) error {
			published <- ev
			return nil
		},
	}

	rec := postReservation(t, h, `{"room_id":3,"start_date":"2024-03-01","end_date":"2024-03-04"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_amount":"300.00"`)
	assert.Contains(t, rec.Body.String(), `"status":"PENDING"`)

	select {
	case ev := <-published:
		assert.NotEmpty(t, ev.EventID)
		assert.Equal(t, uint64(42), ev.ReservationID)
		assert.Equal(t, "2024-03-01", ev.StartDate)
	case <-time.After(time.Second):
		t.Fatal("reservation.created event was not published")
	}
}

func TestCreateReservationRejectsMalformedInput(t *testing.T) {
	stub := &stubCreator{}
	h := &ReservationHandler{Coordinator: stub}

	cases := []struct {
		name string
		body string
	}{
		{"missing room", `{"start_date":"2024-03-01","end_date":"2024-03-04"}`},
		{"bad date format", `{"room_id":3,"start_date":"01/03/2024","end_date":"2024-03-04"}`},
		{"not json", `room_id=3`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postReservation(t, h, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Zero(t, stub.calls, "coordinator must not be called for malformed input")
}

func TestCreateReservationOutcomeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"inverted interval", booking.ErrInvalidInterval, http.StatusBadRequest},
		{"unknown room", booking.ErrRoomNotFound, http.StatusNotFound},
		{"dates taken", booking.ErrDatesUnavailable, http.StatusConflict},
		{"bad pricing", booking.ErrBadPricing, http.StatusInternalServerError},
		{"retries exhausted", booking.ErrTemporarilyUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &ReservationHandler{Coordinator: &stubCreator{err: tc.err}}
			rec := postReservation(t, h, `{"room_id":3,"start_date":"2024-03-01","end_date":"2024-03-04"}`)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestCreateReservationUnauthorizedWithoutIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &ReservationHandler{Coordinator: &stubCreator{}}
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCancelReservationRejectsBadID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/reservations/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	c.Set("user_id", uint64(7))

	h := &ReservationHandler{Coordinator: &stubCreator{}}
	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
