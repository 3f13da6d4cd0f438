package editor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chefpay/internal/auth"
	"chefpay/internal/core"
	"chefpay/internal/menu"
	"chefpay/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("editor-test-secret")

func newTestRouter(f *fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	g := r.Group("/api/canteens/:canteen_id/menu-editor")
	g.Use(middleware.AuthMiddleware(testSecret), middleware.RequireCanteenAccess())
	NewHandler(f.service).Register(g)
	return r
}

func do(t *testing.T, r http.Handler, p core.Principal, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	token, err := auth.GenerateToken(testSecret, p)
	require.NoError(t, err)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) State {
	t.Helper()
	var st State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	return st
}

const base = "/api/canteens/7/menu-editor"

func TestHandlerEditFlow(t *testing.T) {
	f := newFixture(t)
	f.repo.SetRecords(7, dailyRecords(30, 5))
	r := newTestRouter(f)

	w := do(t, r, manager, http.MethodPost, base, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	st := decodeState(t, w)
	assert.Equal(t, []int{5}, st.Assignment.DailyItemIDs)

	w = do(t, r, manager, http.MethodPut, base+"/weekdays/Mon", `{"included":true}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, manager, http.MethodPut, base+"/mode", `{"mode":"day-specific"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, manager, http.MethodPut, base+"/weekdays/Tuesday", `{"included":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, manager, http.MethodPut, base+"/items/12", `{"included":true,"day":"Tue"}`)
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeState(t, w)
	assert.Equal(t, []menu.Weekday{menu.Tuesday}, st.Assignment.SelectedWeekdays)
	// per-day sets loaded from a daily menu carry over into day-specific mode
	assert.Equal(t, []int{5, 12}, st.Assignment.PerDayItemIDs[menu.Tuesday])

	w = do(t, r, manager, http.MethodPut, base+"/name", `{"name":"Exam week"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Exam week", decodeState(t, w).Assignment.Name)

	w = do(t, r, manager, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updates := f.repo.Updates()
	require.Len(t, updates, 1)
	assert.Equal(t, menu.ModeDaySpecific, updates[0].MenuType)
	assert.Equal(t, []menu.DayEntry{{Day: "Tue", ItemIDs: "5,12"}}, updates[0].Data)

	// the editor is closed after a successful submit
	assert.Equal(t, http.StatusNotFound, do(t, r, manager, http.MethodGet, base, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, manager, http.MethodPost, base+"/submit", "").Code)

	// reopening loads the submitted menu
	w = do(t, r, manager, http.MethodPost, base, "")
	require.Equal(t, http.StatusCreated, w.Code)
	st = decodeState(t, w)
	assert.Equal(t, menu.ModeDaySpecific, st.Assignment.Mode)
	assert.Equal(t, []int{5, 12}, st.Assignment.PerDayItemIDs[menu.Tuesday])
	require.NotNil(t, st.Assignment.RemoteMenuID)
	assert.Equal(t, 30, *st.Assignment.RemoteMenuID)
}

func TestHandlerValidationErrors(t *testing.T) {
	f := newFixture(t)
	r := newTestRouter(f)

	require.Equal(t, http.StatusCreated, do(t, r, manager, http.MethodPost, base, "").Code)
	require.Equal(t, http.StatusOK, do(t, r, manager, http.MethodPut, base+"/mode", `{"mode":"day-specific"}`).Code)

	w := do(t, r, manager, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "days")
	assert.Contains(t, body.Errors, "items")
	assert.Empty(t, f.repo.Updates())
}

func TestHandlerErrors(t *testing.T) {
	f := newFixture(t)
	r := newTestRouter(f)

	// nothing open yet
	assert.Equal(t, http.StatusNotFound, do(t, r, manager, http.MethodGet, base, "").Code)

	// managers are limited to their canteen
	assert.Equal(t, http.StatusForbidden, do(t, r, manager, http.MethodPost, "/api/canteens/8/menu-editor", "").Code)

	require.Equal(t, http.StatusCreated, do(t, r, manager, http.MethodPost, base, "").Code)

	assert.Equal(t, http.StatusBadRequest, do(t, r, manager, http.MethodPut, base+"/mode", `{"mode":"weekly"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, manager, http.MethodPut, base+"/weekdays/Funday", `{"included":true}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, manager, http.MethodPut, base+"/items/abc", `{"included":true}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, manager, http.MethodPut, base+"/items/3", `{}`).Code)

	// no remote menu exists for the canteen
	require.Equal(t, http.StatusOK, do(t, r, manager, http.MethodPut, base+"/items/3", `{"included":true}`).Code)
	assert.Equal(t, http.StatusConflict, do(t, r, manager, http.MethodPost, base+"/submit", "").Code)

	assert.Equal(t, http.StatusNoContent, do(t, r, manager, http.MethodDelete, base, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, manager, http.MethodGet, base, "").Code)
}

func TestHandlerRemoveDay(t *testing.T) {
	f := newFixture(t)
	r := newTestRouter(f)

	require.Equal(t, http.StatusCreated, do(t, r, manager, http.MethodPost, base, "").Code)
	require.Equal(t, http.StatusOK, do(t, r, manager, http.MethodPut, base+"/mode", `{"mode":"day-specific"}`).Code)
	require.Equal(t, http.StatusOK, do(t, r, manager, http.MethodPut, base+"/weekdays/Sat", `{"included":true}`).Code)

	w := do(t, r, manager, http.MethodDelete, base+"/weekdays/Sat", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeState(t, w).Assignment.SelectedWeekdays)
}
