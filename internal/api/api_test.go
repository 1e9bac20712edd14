package api

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	planner_service "github.com/erfan-rahmanian/barnameh/internal/business/planner"
	"github.com/erfan-rahmanian/barnameh/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "valid-token"

type stubJwtManager struct{}

func (s *stubJwtManager) CreateToken(_ int64) (string, error) {
	return testToken, nil
}

func (s *stubJwtManager) GetIdFromToken(token string) (int64, error) {
	if token != testToken {
		return 0, errors.New("unknown token")
	}
	return ownerID, nil
}

type stubSessions struct {
	sessions map[string]int64
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: map[string]int64{}}
}

func (s *stubSessions) Add(_ context.Context, session string, id int64) error {
	if _, ok := s.sessions[session]; ok {
		return model.ErrAlreadyExists
	}
	s.sessions[session] = id
	return nil
}

func (s *stubSessions) Get(_ context.Context, session string) (int64, error) {
	id, ok := s.sessions[session]
	if !ok {
		return 0, model.ErrNoRecord
	}
	return id, nil
}

func (s *stubSessions) Refresh(_ context.Context, old, new string) error {
	id, err := s.Get(context.Background(), old)
	if err != nil {
		return err
	}
	if err := s.Add(context.Background(), new, id); err != nil {
		return err
	}
	delete(s.sessions, old)
	return nil
}

func (s *stubSessions) Delete(_ context.Context, session string) error {
	if _, ok := s.sessions[session]; !ok {
		return model.ErrNoRecord
	}
	delete(s.sessions, session)
	return nil
}

type memoryStore struct {
	state model.PlannerState
}

func (m *memoryStore) Load(_ context.Context) (model.PlannerState, error) {
	if m.state == nil {
		return model.PlannerState{}, nil
	}
	return m.state, nil
}

func (m *memoryStore) Save(_ context.Context, state model.PlannerState) error {
	m.state = state
	return nil
}

type seqIDs struct{ next int }

func (s *seqIDs) NewID() string {
	s.next++
	return "event-" + strconv.Itoa(s.next)
}

func newTestApi(t *testing.T) (*Api, *stubSessions) {
	t.Helper()

	service, err := planner_service.NewService(context.Background(), &memoryStore{}, &seqIDs{})
	require.NoError(t, err)

	sessions := newStubSessions()
	a, err := NewApi(zap.NewNop().Sugar(), rand.Reader, &stubJwtManager{}, sessions, service)
	require.NoError(t, err)

	return a, sessions
}

func doRequest(t *testing.T, a *Api, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, req)

	return rec
}

func TestHealthcheck(t *testing.T) {
	a, _ := newTestApi(t)

	rec := doRequest(t, a, http.MethodGet, "/healthcheck", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	a, _ := newTestApi(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/calendar/month"},
		{http.MethodGet, "/calendar/week"},
		{http.MethodGet, "/days/2024-03-20/agenda"},
		{http.MethodPost, "/days/2024-03-20/events"},
	}

	for _, tc := range paths {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, a, tc.method, tc.path, "", false)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestLoginRejectedWithoutConfiguredSecret(t *testing.T) {
	a, _ := newTestApi(t)

	rec := doRequest(t, a, http.MethodPost, "/auth/login", `{"secret":"anything"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshUnknownSession(t *testing.T) {
	a, _ := newTestApi(t)

	rec := doRequest(t, a, http.MethodPost, "/auth/refresh", `{"refresh_token":"missing"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRotatesSession(t *testing.T) {
	a, sessions := newTestApi(t)
	require.NoError(t, sessions.Add(context.Background(), "old-session", ownerID))

	rec := doRequest(t, a, http.MethodPost, "/auth/refresh", `{"refresh_token":"old-session"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)

	resp := struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testToken, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	_, err := sessions.Get(context.Background(), "old-session")
	assert.ErrorIs(t, err, model.ErrNoRecord)
	_, err = sessions.Get(context.Background(), resp.RefreshToken)
	assert.NoError(t, err)
}

func TestLogout(t *testing.T) {
	a, sessions := newTestApi(t)
	require.NoError(t, sessions.Add(context.Background(), "session", ownerID))

	rec := doRequest(t, a, http.MethodPost, "/auth/logout", `{"refresh_token":"session"}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, a, http.MethodPost, "/auth/logout", `{"refresh_token":"session"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMonthView(t *testing.T) {
	a, _ := newTestApi(t)

	rec := doRequest(t, a, http.MethodGet, "/calendar/month?date=2024-03-20", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	resp := struct {
		Month    string `json:"month"`
		Year     string `json:"year"`
		Weekdays []string `json:"weekdays"`
		Days     []struct {
			Date           string `json:"date"`
			IsCurrentMonth bool   `json:"is_current_month"`
		} `json:"days"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "فروردین", resp.Month)
	assert.Equal(t, "۱۴۰۳", resp.Year)
	assert.Len(t, resp.Weekdays, 7)
	require.Len(t, resp.Days, 42)
	assert.Equal(t, "2024-03-16", resp.Days[0].Date)
	assert.False(t, resp.Days[0].IsCurrentMonth)
}

func TestGetMonthViewBadDate(t *testing.T) {
	a, _ := newTestApi(t)

	rec := doRequest(t, a, http.MethodGet, "/calendar/month?date=20-03-2024", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWeekView(t *testing.T) {
	a, _ := newTestApi(t)

	rec := doRequest(t, a, http.MethodGet, "/calendar/week?date=2024-03-20", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	resp := struct {
		Days []struct {
			Date    string   `json:"date"`
			DayName string   `json:"day_name"`
			Markers []string `json:"markers"`
		} `json:"days"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2024-03-16", resp.Days[0].Date)
	assert.Equal(t, "شنبه", resp.Days[0].DayName)
	assert.NotNil(t, resp.Days[0].Markers)
}

func TestCreateEvent(t *testing.T) {
	a, _ := newTestApi(t)

	t.Run("creates and returns the event", func(t *testing.T) {
		body := `{"title":"کلاس ریاضی","type":"exam","hour":9}`
		rec := doRequest(t, a, http.MethodPost, "/days/2024-03-20/events", body, true)

		require.Equal(t, http.StatusCreated, rec.Code)

		event := &model.Event{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), event))
		assert.NotEmpty(t, event.ID)
		assert.Equal(t, "کلاس ریاضی", event.Title)
		assert.Equal(t, model.EventTypeExam, event.Type)
		assert.Equal(t, 9, event.Hour)
		assert.False(t, event.IsCompleted)
	})

	t.Run("event shows up in the agenda", func(t *testing.T) {
		rec := doRequest(t, a, http.MethodGet, "/days/2024-03-20/agenda", "", true)

		require.Equal(t, http.StatusOK, rec.Code)

		resp := struct {
			Title string `json:"title"`
			Hours []struct {
				Hour   int            `json:"hour"`
				Label  string         `json:"label"`
				Events []*model.Event `json:"events"`
			} `json:"hours"`
		}{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "چهارشنبه ۱ فروردین ۱۴۰۳", resp.Title)
		require.Len(t, resp.Hours, 24)
		assert.Equal(t, "۹:۰۰", resp.Hours[9].Label)
		require.Len(t, resp.Hours[9].Events, 1)
		assert.Empty(t, resp.Hours[10].Events)
	})

	t.Run("validation failures get 422", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"blank title", `{"title":"   ","type":"normal","hour":9}`},
			{"unknown type", `{"title":"x","type":"party","hour":9}`},
			{"hour out of range", `{"title":"x","type":"normal","hour":24}`},
			{"negative hour", `{"title":"x","type":"normal","hour":-1}`},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				rec := doRequest(t, a, http.MethodPost, "/days/2024-03-20/events", tc.body, true)
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			})
		}
	})

	t.Run("malformed body gets 400", func(t *testing.T) {
		rec := doRequest(t, a, http.MethodPost, "/days/2024-03-20/events", "{not json", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date gets 400", func(t *testing.T) {
		body := `{"title":"x","type":"normal","hour":9}`
		rec := doRequest(t, a, http.MethodPost, "/days/nowruz/events", body, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestToggleAndDeleteEvent(t *testing.T) {
	a, _ := newTestApi(t)

	body := `{"title":"تحویل پروژه","type":"deadline","hour":17}`
	rec := doRequest(t, a, http.MethodPost, "/days/2024-03-20/events", body, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	event := &model.Event{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), event))

	t.Run("toggle flips completion", func(t *testing.T) {
		rec := doRequest(t, a, http.MethodPost, "/days/2024-03-20/events/"+event.ID+"/toggle", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, a, http.MethodGet, "/days/2024-03-20/agenda", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"isCompleted":true`)
	})

	t.Run("toggle of unknown event is still ok", func(t *testing.T) {
		rec := doRequest(t, a, http.MethodPost, "/days/2024-03-20/events/missing/toggle", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete removes the event", func(t *testing.T) {
		rec := doRequest(t, a, http.MethodDelete, "/days/2024-03-20/events/"+event.ID, "", true)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, a, http.MethodGet, "/days/2024-03-20/agenda", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), event.ID)
	})

	t.Run("delete of unknown event is still ok", func(t *testing.T) {
		rec := doRequest(t, a, http.MethodDelete, "/days/2024-03-20/events/missing", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNotFound(t *testing.T) {
	a, _ := newTestApi(t)

	t.Run("unknown path without token", func(t *testing.T) {
		rec := doRequest(t, a, http.MethodGet, "/nope", "", false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown path with token", func(t *testing.T) {
		rec := doRequest(t, a, http.MethodGet, "/nope", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
