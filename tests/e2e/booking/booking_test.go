//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"court-reserve/internal/domain/booking"
	reqdto "court-reserve/internal/handler/dto/request"
	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/tests/common/httptest"
	"court-reserve/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL        = "/api/auth/signup"
	loginURL         = "/api/auth/login"
	meURL            = "/api/auth/me"
	courtsURL        = "/api/courts"
	reservationsURL  = "/api/reservations"
	scheduleURL      = "/api/reservations/schedule"
	deleteRequestURL = "/api/account/delete-request"
	deleteURL        = "/api/account/delete"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// nextBookableDate returns a weekend day far enough out that the
// modification cutoff cannot interfere.
func nextBookableDate() time.Time {
	d := time.Now().AddDate(0, 0, 3)
	for d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func (s *bookingSuite) signUpAndLogin(email string) string {
	t := s.T()

	signUp := reqdto.SignUpRequest{
		Email:        email,
		Password:     "password123",
		FullName:     "Test Member",
		FullNameKana: "テスト メンバー",
		Phone:        "090-0000-0000",
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, signUp, "")
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())

	login := reqdto.LoginRequest{Email: email, Password: "password123"}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, login, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var loginRes resdto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginRes))
	require.NotEmpty(t, loginRes.AccessToken)
	return loginRes.AccessToken
}

func (s *bookingSuite) firstCourtID(token string) string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, courtsURL, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var courts []resdto.CourtResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courts))
	require.NotEmpty(t, courts, "no courts seeded")
	return courts[0].ID.String()
}

func (s *bookingSuite) slot(courtID string, date time.Time, start, end string) reqdto.SlotPayload {
	return reqdto.SlotPayload{
		CourtID:   uuid.MustParse(courtID),
		Date:      date.Format("2006-01-02"),
		StartTime: start,
		EndTime:   end,
	}
}

func (s *bookingSuite) TestReservationLifecycle() {
	s.Run("reserve, move and cancel within one week", func() {
		t := s.T()
		token := s.signUpAndLogin("member@example.com")
		courtID := s.firstCourtID(token)
		date := nextBookableDate()

		// the grid shows the target day as bookable and empty
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			scheduleURL+"?court_id="+courtID+"&week_start="+date.Format("2006-01-02"), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var schedule resdto.WeekScheduleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
		require.Len(t, schedule.Days, 7)

		// reserve two slots in one request
		create := reqdto.CreateReservationsRequest{Slots: []reqdto.SlotPayload{
			s.slot(courtID, date, "10:00", "11:00"),
			s.slot(courtID, date, "11:00", "12:00"),
		}}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, create, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created resdto.CreateReservationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		require.Len(t, created.Created, 2)
		require.Empty(t, created.Failed)

		// the daily cap blocks a third slot on the same day
		third := reqdto.CreateReservationsRequest{Slots: []reqdto.SlotPayload{
			s.slot(courtID, date, "13:00", "14:00"),
		}}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, third, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		// move the second reservation to a free slot; the cap does not
		// apply to a single-slot replacement
		update := reqdto.UpdateReservationRequest{Slot: s.slot(courtID, date, "13:00", "14:00")}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			reservationsURL+"/"+created.Created[1].ID.String(), update, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var moved resdto.ReservationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moved))
		require.Equal(t, "13:00", moved.StartTime)

		// moving onto the own still-held slot is rejected as taken
		conflict := reqdto.UpdateReservationRequest{Slot: s.slot(courtID, date, "10:00", "11:00")}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			reservationsURL+"/"+created.Created[1].ID.String(), conflict, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// cancel the first reservation
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+created.Created[0].ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		// one reservation remains
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var remaining []resdto.ReservationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &remaining))
		require.Len(t, remaining, 1)
		require.Equal(t, "13:00", remaining[0].StartTime)
	})

	s.Run("double booking loses to the first writer", func() {
		t := s.T()
		first := s.signUpAndLogin("first@example.com")
		second := s.signUpAndLogin("second@example.com")
		courtID := s.firstCourtID(first)
		date := nextBookableDate()

		create := reqdto.CreateReservationsRequest{Slots: []reqdto.SlotPayload{
			s.slot(courtID, date, "10:00", "11:00"),
		}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, create, first)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, create, second)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("weekday dates are not bookable", func() {
		t := s.T()
		token := s.signUpAndLogin("weekday@example.com")
		courtID := s.firstCourtID(token)

		// walk forward to a closed day well past the cutoff; holidays fall
		// on weekdays too, so check the calendar rather than the weekday
		date := time.Now().AddDate(0, 0, 14)
		for booking.IsBookableDate(date) {
			date = date.AddDate(0, 0, 1)
		}

		create := reqdto.CreateReservationsRequest{Slots: []reqdto.SlotPayload{
			s.slot(courtID, date, "10:00", "11:00"),
		}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, create, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestAccountDeletionFlow() {
	s.Run("two-step deletion removes reservations and identity", func() {
		t := s.T()
		token := s.signUpAndLogin("leaving@example.com")
		courtID := s.firstCourtID(token)
		date := nextBookableDate()

		create := reqdto.CreateReservationsRequest{Slots: []reqdto.SlotPayload{
			s.slot(courtID, date, "10:00", "11:00"),
		}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, create, token)
		require.Equal(t, http.StatusCreated, w.Code)

		// step one issues the confirmation token
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, deleteRequestURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var issued resdto.TokenIssuedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
		require.NotEmpty(t, issued.Token)

		// step two executes the deletion
		confirm := reqdto.AccountDeleteRequest{Token: issued.Token}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, deleteURL, confirm, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// the login no longer works
		login := reqdto.LoginRequest{Email: "leaving@example.com", Password: "password123"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, login, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		// the identity does not resolve even with the old JWT
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)

		// the slot is free for others again
		otherToken := s.signUpAndLogin("newcomer@example.com")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, create, otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("confirmation token is single use", func() {
		t := s.T()
		token := s.signUpAndLogin("repeat@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, deleteRequestURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var issued resdto.TokenIssuedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))

		confirm := reqdto.AccountDeleteRequest{Token: issued.Token}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, deleteURL, confirm, token)
		require.Equal(t, http.StatusOK, w.Code)

		// a second confirmation with the same token is rejected; the JWT
		// itself is stateless so the middleware still admits the request
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, deleteURL, confirm, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("foreign tokens cannot delete the account", func() {
		t := s.T()
		victim := s.signUpAndLogin("victim@example.com")
		attacker := s.signUpAndLogin("attacker@example.com")
		_ = victim

		// the attacker requests deletion of their own account but presents
		// the token against the victim's identity via their own session
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, deleteRequestURL, nil, attacker)
		require.Equal(t, http.StatusOK, w.Code)
		var issued resdto.TokenIssuedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))

		confirm := reqdto.AccountDeleteRequest{Token: issued.Token}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, deleteURL, confirm, victim)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())

		// the victim can still log in
		login := reqdto.LoginRequest{Email: "victim@example.com", Password: "password123"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, login, "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}
