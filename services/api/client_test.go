package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"therewecome/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}), srv
}

func TestListStylistsSendsQueryAndBearer(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/profile/stylists", r.URL.Path)
		assert.Equal(t, "Austin", r.URL.Query().Get("location"))
		assert.Equal(t, "Haircut", r.URL.Query().Get("service"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{"id":"p1","user":{"id":"u1"},"firstName":"Sam","lastName":"Lee","phoneNumber":"555-1"},
			{"id":"p2","user":{"id":"u2"},"firstName":"Kim","lastName":"Ray","phoneNumber":"555-2"}
		]`))
	})

	stylists, err := c.ListStylists(context.Background(), "tok", "Austin", "Haircut")
	require.NoError(t, err)
	require.Len(t, stylists, 2)
	assert.Equal(t, "u2", stylists[1].BookingID())
	assert.Equal(t, "Kim Ray", stylists[1].DisplayName())
}

func TestCreateBookingPostsDraft(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/booking", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PENDING", body["status"])
		assert.Equal(t, map[string]any{"id": "u2"}, body["stylist"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"b1","status":"PENDING","service":"Haircut","bookingTime":"2025-01-01T10:00:00"}`))
	})

	at, err := models.ParseBookingTime("2025-01-01T10:00")
	require.NoError(t, err)
	draft := models.BookingDraft{
		Location: "Austin", Service: "Haircut", Stylist: &models.StylistRef{ID: "u2"},
		ClientName: "Ada", ClientEmail: "a@b.com", ClientPhoneNumber: "555-0100", BookingTime: at,
	}

	created, err := c.CreateBooking(context.Background(), "tok", draft.Request())
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
	assert.True(t, created.IsPending())
}

func TestInviteSendsJSONString(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/invite", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.Equal(t, `"new@stylist.com"`, string(b))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.Invite(context.Background(), "tok", "new@stylist.com"))
}

func TestServerErrorCarriesMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := c.Login(context.Background(), "a@b.com", "nope")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindServer))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", UserMessage(err, "fallback"))
}

func TestServerErrorWithoutMessageFallsBack(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`not json`))
	})

	_, err := c.ListClientBookings(context.Background(), "tok", "a@b.com")
	assert.True(t, IsKind(err, KindServer))
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Options{BaseURL: url, Timeout: time.Second})
	_, err := c.ListStylists(context.Background(), "tok", "Austin", "Haircut")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
	assert.Equal(t, NetworkRetryMessage, UserMessage(err, "fallback"))
}

func TestMalformedResponses(t *testing.T) {
	cases := map[string]string{
		"invalid json":        `{"id":`,
		"stylist without ids": `[{"firstName":"Nobody"}]`,
		"wrong shape":         `{"id":"p1"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			})
			_, err := c.ListStylists(context.Background(), "tok", "Austin", "Haircut")
			require.Error(t, err)
			assert.True(t, IsKind(err, KindMalformed), err.Error())
		})
	}
}

func TestCreatedBookingWithoutIDIsMalformed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"PENDING"}`))
	})
	_, err := c.CreateBooking(context.Background(), "tok", models.BookingRequest{})
	assert.True(t, IsKind(err, KindMalformed))
}

func TestEmptyBodyForRecordIsMalformed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	updated, err := c.ApproveBooking(context.Background(), "tok", "b1")
	assert.Nil(t, updated)
	assert.True(t, IsKind(err, KindMalformed))

	_, err = c.CreateBooking(context.Background(), "tok", models.BookingRequest{})
	assert.True(t, IsKind(err, KindMalformed))

	_, err = c.GetProfile(context.Background(), "tok")
	assert.True(t, IsKind(err, KindMalformed))

	require.NoError(t, c.UpdateProfile(context.Background(), "tok", models.ProfileUpdate{}))
}

func TestRegisterAcceptsEmptyBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	})

	resp, err := c.Register(context.Background(), models.RegistrationRequest{Email: "new@x.com"})
	require.NoError(t, err)
	assert.Empty(t, resp.ID)
}

func TestBreakerOpensAfterRepeatedServerFailures(t *testing.T) {
	var hits int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 5; i++ {
		_, err := c.ListStylistBookings(context.Background(), "tok")
		assert.True(t, IsKind(err, KindServer))
	}

	_, err := c.ListStylistBookings(context.Background(), "tok")
	assert.True(t, IsKind(err, KindNetwork))
	assert.Equal(t, int32(5), atomic.LoadInt32(&hits))
}

func TestDecideBookingPaths(t *testing.T) {
	var paths []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"id":"b 1","status":"APPROVED"}`))
	})

	b, err := c.ApproveBooking(context.Background(), "tok", "b 1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, b.Status)

	_, err = c.RejectBooking(context.Background(), "tok", "b2")
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/booking/b 1/approve", "/api/booking/b2/reject"}, paths)
}
