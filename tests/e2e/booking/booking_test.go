//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"fitstudio/internal/domain/user"
	resdto "fitstudio/internal/handler/dto/response"
	"fitstudio/tests/common/authtest"
	"fitstudio/tests/common/builder"
	"fitstudio/tests/common/dbtest"
	"fitstudio/tests/common/httptest"
	"fitstudio/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	myURL       = "/api/bookings/my"
	bookingDate = "2030-01-07"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) reserve(token string, classID int64, date string) *resdto.BookingResponse {
	s.T().Helper()
	req := builder.NewBookingBuilder().WithClassID(classID).WithDate(date).BuildDTO()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, token)

	var body resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return &body
}

func (s *bookingSuite) TestReserve() {
	s.Run("最後の1席を予約すると満席になる", func() {
		classID := dbtest.CreateTestClass(s.T(), s.DB, "Last Seat", 2)
		first := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "first@example.com", string(user.RoleMember))
		second := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "second@example.com", string(user.RoleMember))
		third := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "third@example.com", string(user.RoleMember))

		s.reserve(first, classID, bookingDate)
		created := s.reserve(second, classID, bookingDate)
		s.Equal("active", created.Status)
		s.Equal(bookingDate, created.BookingDate)
		s.Equal(2, dbtest.BookedCount(s.T(), s.DB, classID))

		req := builder.NewBookingBuilder().WithClassID(classID).WithDate(bookingDate).BuildDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, third)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No seats left")
		s.Equal(2, dbtest.BookedCount(s.T(), s.DB, classID))
		s.Equal(2, dbtest.ActiveBookings(s.T(), s.DB, classID))
	})

	s.Run("同じ日付の重複予約は拒否し別日なら可能", func() {
		classID := dbtest.CreateTestClass(s.T(), s.DB, "Dup Check", 10)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "dup@example.com", string(user.RoleMember))

		s.reserve(token, classID, bookingDate)

		req := builder.NewBookingBuilder().WithClassID(classID).WithDate(bookingDate).BuildDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already booked")

		s.reserve(token, classID, "2030-01-14")
		s.Equal(2, dbtest.BookedCount(s.T(), s.DB, classID))
	})

	s.Run("存在しないクラス: 404", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "ghost@example.com", string(user.RoleMember))

		req := builder.NewBookingBuilder().WithClassID(999999).WithDate(bookingDate).BuildDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Class not found")
	})

	s.Run("日付形式不正: 400", func() {
		classID := dbtest.CreateTestClass(s.T(), s.DB, "Bad Date", 10)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "date@example.com", string(user.RoleMember))

		req := builder.NewBookingBuilder().WithClassID(classID).WithDate("07/01/2030").BuildDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking date")
		s.Equal(0, dbtest.BookedCount(s.T(), s.DB, classID))
	})

	s.Run("未認証: 401", func() {
		req := builder.NewBookingBuilder().BuildDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *bookingSuite) TestConcurrentReserve() {
	s.Run("同時予約でも定員を超えない", func() {
		const capacity, members = 5, 20
		classID := dbtest.CreateTestClass(s.T(), s.DB, "Rush Hour", capacity)

		tokens := make([]string, members)
		for i := range tokens {
			tokens[i] = authtest.CreateAndLogin(s.T(), s.DB, s.Router, fmt.Sprintf("rush%02d@example.com", i), string(user.RoleMember))
		}

		var (
			wg       sync.WaitGroup
			created  atomic.Int32
			rejected atomic.Int32
		)
		req := builder.NewBookingBuilder().WithClassID(classID).WithDate(bookingDate).BuildDTO()
		for _, token := range tokens {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, token)
				switch rec.Code {
				case http.StatusCreated:
					created.Add(1)
				case http.StatusBadRequest:
					rejected.Add(1)
				}
			}(token)
		}
		wg.Wait()

		s.Equal(int32(capacity), created.Load())
		s.Equal(int32(members-capacity), rejected.Load())
		s.Equal(capacity, dbtest.BookedCount(s.T(), s.DB, classID))
		s.Equal(capacity, dbtest.ActiveBookings(s.T(), s.DB, classID))
	})
}

func (s *bookingSuite) TestListMine() {
	s.Run("有効な予約のみ日付と開始時刻順に返す", func() {
		early := dbtest.CreateTestClass(s.T(), s.DB, "Early", 10)
		late := dbtest.CreateTestClass(s.T(), s.DB, "Late", 10)
		_, err := s.DB.Exec(s.T().Context(), "UPDATE classes SET start_time = '19:00' WHERE id = $1", late)
		require.NoError(s.T(), err)

		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "list@example.com", string(user.RoleMember))
		other := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", string(user.RoleMember))

		s.reserve(token, late, "2030-01-14")
		s.reserve(token, late, bookingDate)
		s.reserve(token, early, bookingDate)
		cancelled := s.reserve(token, early, "2030-01-21")
		s.reserve(other, early, bookingDate)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingsURL+"/"+cancelled.BookingID.String(), nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, myURL, nil, token)
		var body []resdto.BookingListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

		s.Require().Len(body, 3)
		s.Equal([]string{"Early", "Late", "Late"}, []string{body[0].ClassName, body[1].ClassName, body[2].ClassName})
		s.Equal([]string{bookingDate, bookingDate, "2030-01-14"}, []string{body[0].BookingDate, body[1].BookingDate, body[2].BookingDate})
		for _, b := range body {
			s.Equal("active", b.Status)
			s.NotEmpty(b.TrainerName)
		}
	})

	s.Run("予約がなければ空配列", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "empty@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, myURL, nil, token)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *bookingSuite) TestCancel() {
	s.Run("取消で席が戻り再予約できる", func() {
		classID := dbtest.CreateTestClass(s.T(), s.DB, "Single Seat", 1)
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "cancel@example.com", string(user.RoleMember))

		created := s.reserve(token, classID, bookingDate)
		url := bookingsURL + "/" + created.BookingID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(0, dbtest.BookedCount(s.T(), s.DB, classID))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
		s.Equal(0, dbtest.BookedCount(s.T(), s.DB, classID))

		s.reserve(token, classID, bookingDate)
		s.Equal(1, dbtest.BookedCount(s.T(), s.DB, classID))
	})

	s.Run("他人の予約は存在しないものとして扱う", func() {
		classID := dbtest.CreateTestClass(s.T(), s.DB, "Foreign", 5)
		owner := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", string(user.RoleMember))
		intruder := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "intruder@example.com", string(user.RoleMember))

		created := s.reserve(owner, classID, bookingDate)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingsURL+"/"+created.BookingID.String(), nil, intruder)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
		s.Equal(1, dbtest.BookedCount(s.T(), s.DB, classID))
		s.Equal(1, dbtest.ActiveBookings(s.T(), s.DB, classID))
	})

	s.Run("存在しないID", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "missing@example.com", string(user.RoleMember))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingsURL+"/"+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestReconcile() {
	s.Run("管理者はずれた予約数を修正できる", func() {
		classID := dbtest.CreateTestClass(s.T(), s.DB, "Drifted", 10)
		member := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "m@example.com", string(user.RoleMember))
		admin := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleAdmin))

		s.reserve(member, classID, bookingDate)
		_, err := s.DB.Exec(s.T().Context(), "UPDATE classes SET booked_count = 7 WHERE id = $1", classID)
		require.NoError(s.T(), err)

		url := fmt.Sprintf("/api/admin/classes/%d/reconcile", classID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, member)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, admin)
		var body resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(7, body.PreviousCount)
		s.Equal(1, body.BookedCount)
		s.Equal(1, dbtest.BookedCount(s.T(), s.DB, classID))
	})
}
