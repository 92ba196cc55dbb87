//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"workshop-booking/internal/handler/dto/response"
	"workshop-booking/tests/common/builder"
	"workshop-booking/tests/common/dbtest"
	"workshop-booking/tests/common/httptest"
	"workshop-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	mechanicsURL = "/api/mechanics"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// =============================================================================
// TestBookAppointment - admission happy path and rejections
// =============================================================================

func (s *BookingSuite) TestBookAppointment() {
	s.Run("Normal case: free slot is admitted", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")

		reqBody := builder.NewBookingBuilder().WithMechanicID(mechanicID).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		httptest.AssertOutcome(t, w, true, "your appointment has been booked")

		var outcome response.BookingOutcomeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &outcome))
		require.NotNil(t, outcome.BookingID)

		// the booking is readable back with the joined mechanic
		detailURL := fmt.Sprintf("%s/%d", bookingsURL, *outcome.BookingID)
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, "2026-09-15", detail.Date)
		require.Equal(t, "Hasan Mahmud", detail.MechanicName)
		require.Equal(t, "pending", detail.Status)
	})

	s.Run("Rejection: same phone cannot book twice on one date", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		otherMechanicID := dbtest.MechanicIDByName(t, s.DB, "Jamal Uddin")

		first := builder.NewBookingBuilder().WithMechanicID(mechanicID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first)
		httptest.AssertOutcome(t, w, true, "")

		// different mechanic, same phone and date: still rejected
		second := builder.NewBookingBuilder().WithMechanicID(otherMechanicID).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second)
		httptest.AssertOutcome(t, w, false, "you already have an appointment on this date")
	})

	s.Run("Rejection: mechanic day fills at capacity", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")

		for i := range 4 {
			reqBody := builder.NewBookingBuilder().
				WithPhone(fmt.Sprintf("0171100%04d", i)).
				WithMechanicID(mechanicID).
				BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
			httptest.AssertOutcome(t, w, true, "")
		}

		fifth := builder.NewBookingBuilder().
			WithPhone("01711009999").
			WithMechanicID(mechanicID).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, fifth)
		httptest.AssertOutcome(t, w, false, "fully booked")

		// same mechanic, next day: admitted again
		nextDay := builder.NewBookingBuilder().
			WithPhone("01711009999").
			WithMechanicID(mechanicID).
			WithDate("2026-09-16").
			BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, nextDay)
		httptest.AssertOutcome(t, w, true, "")
	})

	s.Run("Validation: unknown mechanic is a 400", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().WithMechanicID(424242).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unknown mechanic")
	})

	s.Run("Validation: malformed date is a 400", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")

		reqBody := builder.NewBookingBuilder().
			WithMechanicID(mechanicID).
			WithDate("15-09-2026").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Validation failed")
	})
}

// =============================================================================
// TestConcurrentAdmission - racing requests cannot exceed capacity
// =============================================================================

func (s *BookingSuite) TestConcurrentAdmission() {
	s.Run("Concurrency: only capacity many of racing requests are admitted", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Rafiq Islam")

		const racers = 12
		results := make([]bool, racers)

		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := builder.NewBookingBuilder().
					WithPhone(fmt.Sprintf("0189900%04d", i)).
					WithMechanicID(mechanicID).
					BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
				if w.Code != http.StatusOK {
					return
				}
				var outcome response.BookingOutcomeResponse
				if err := json.Unmarshal(w.Body.Bytes(), &outcome); err == nil {
					results[i] = outcome.Success
				}
			}()
		}
		wg.Wait()

		admittedCount := 0
		for _, admitted := range results {
			if admitted {
				admittedCount++
			}
		}
		require.Equal(t, 4, admittedCount, "exactly the daily capacity must be admitted")

		var stored int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM bookings WHERE mechanic_id = $1 AND appointment_date = '2026-09-15'",
			mechanicID).Scan(&stored)
		require.NoError(t, err)
		require.Equal(t, 4, stored)
	})

	s.Run("Concurrency: same phone racing for one date yields one booking", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Selim Reza")

		const racers = 8
		var wg sync.WaitGroup
		admitted := make([]bool, racers)
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := builder.NewBookingBuilder().
					WithPhone("01555000111").
					WithMechanicID(mechanicID).
					BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
				if w.Code != http.StatusOK {
					return
				}
				var outcome response.BookingOutcomeResponse
				if err := json.Unmarshal(w.Body.Bytes(), &outcome); err == nil {
					admitted[i] = outcome.Success
				}
			}()
		}
		wg.Wait()

		admittedCount := 0
		for _, ok := range admitted {
			if ok {
				admittedCount++
			}
		}
		require.Equal(t, 1, admittedCount)
	})
}

// =============================================================================
// TestUpdateBooking - lifecycle re-admission
// =============================================================================

func (s *BookingSuite) TestUpdateBooking() {
	s.Run("Normal case: status and address edits never re-check admission", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		id := dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-15", mechanicID)

		url := fmt.Sprintf("%s/%d", bookingsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{
			"status":  "confirmed",
			"address": "45 New Market Road",
		})
		httptest.AssertOutcome(t, w, true, "appointment updated")

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		var detail response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, "confirmed", detail.Status)
		require.Equal(t, "45 New Market Road", detail.Address)
	})

	s.Run("Normal case: keeping own date is not a self-conflict", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		otherMechanicID := dbtest.MechanicIDByName(t, s.DB, "Jamal Uddin")
		id := dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-15", mechanicID)

		// same phone and date, only the mechanic moves; the record must not
		// collide with itself on the duplicate-date check
		url := fmt.Sprintf("%s/%d", bookingsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{
			"mechanic_id": otherMechanicID,
		})
		httptest.AssertOutcome(t, w, true, "appointment updated")
	})

	s.Run("Rejection: moving onto an occupied date", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-16", mechanicID)
		id := dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-15", mechanicID)

		url := fmt.Sprintf("%s/%d", bookingsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{
			"date": "2026-09-16",
		})
		httptest.AssertOutcome(t, w, false, "you already have an appointment on this date")

		// stored record is untouched
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		var detail response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, "2026-09-15", detail.Date)
	})

	s.Run("Rejection: moving onto a full mechanic day", func() {
		t := s.T()
		fullMechanicID := dbtest.MechanicIDByName(t, s.DB, "Jamal Uddin")
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")

		for i := range 4 {
			dbtest.CreateTestBooking(t, s.DB, fmt.Sprintf("0171200%04d", i), "2026-09-15", fullMechanicID)
		}
		id := dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-15", mechanicID)

		url := fmt.Sprintf("%s/%d", bookingsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{
			"mechanic_id": fullMechanicID,
		})
		httptest.AssertOutcome(t, w, false, "fully booked")
	})

	s.Run("Error: unknown booking id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/424242", map[string]any{
			"status": "confirmed",
		})
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

// =============================================================================
// TestDeleteBooking
// =============================================================================

func (s *BookingSuite) TestDeleteBooking() {
	s.Run("Normal case: delete frees the slot", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		id := dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-15", mechanicID)

		url := fmt.Sprintf("%s/%d", bookingsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil)
		httptest.AssertOutcome(t, w, true, "deleted")

		// the phone/date slot opens up again
		reqBody := builder.NewBookingBuilder().WithMechanicID(mechanicID).BuildCreateRequestDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		httptest.AssertOutcome(t, bw, true, "")
	})

	s.Run("Error: deleting twice is a 404", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		id := dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-15", mechanicID)

		url := fmt.Sprintf("%s/%d", bookingsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil)
		httptest.AssertOutcome(t, w, true, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

// =============================================================================
// TestListBookings - query service
// =============================================================================

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: range filter is inclusive on both ends", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-10", mechanicID)
		dbtest.CreateTestBooking(t, s.DB, "01711000002", "2026-09-15", mechanicID)
		dbtest.CreateTestBooking(t, s.DB, "01711000003", "2026-09-20", mechanicID)
		dbtest.CreateTestBooking(t, s.DB, "01711000004", "2026-09-25", mechanicID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"?start=2026-09-15&end=2026-09-20", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 2)
		for _, item := range items {
			require.Contains(t, []string{"2026-09-15", "2026-09-20"}, item.Date)
		}
	})

	s.Run("Normal case: no params lists everything", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-10", mechanicID)
		dbtest.CreateTestBooking(t, s.DB, "01711000002", "2026-09-15", mechanicID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 2)
	})

	s.Run("Error: reversed range is a 400", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"?start=2026-09-20&end=2026-09-15", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "End date must not be before start date")
	})
}

// =============================================================================
// TestMechanics - resource directory and stats
// =============================================================================

func (s *BookingSuite) TestMechanics() {
	s.Run("Normal case: seeded mechanics are listed", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, mechanicsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var mechanics []response.MechanicResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mechanics))
		require.Len(t, mechanics, 4)
		for _, m := range mechanics {
			require.Equal(t, int32(4), m.DailyCapacity)
		}
	})

	s.Run("Normal case: stats count total bookings per mechanic", func() {
		t := s.T()
		mechanicID := dbtest.MechanicIDByName(t, s.DB, "Hasan Mahmud")
		dbtest.CreateTestBooking(t, s.DB, "01711000001", "2026-09-15", mechanicID)
		dbtest.CreateTestBooking(t, s.DB, "01711000002", "2026-09-16", mechanicID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, mechanicsURL+"/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var stats []response.MechanicStatsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stats))
		require.Len(t, stats, 4)
		for _, st := range stats {
			if st.Name == "Hasan Mahmud" {
				require.Equal(t, int64(2), st.TotalBookings)
			}
		}
	})
}
