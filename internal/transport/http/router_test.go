package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/news-compiler/internal/config"
	"github.com/pribylovaa/news-compiler/internal/models"
	"github.com/pribylovaa/news-compiler/internal/service"
	"github.com/pribylovaa/news-compiler/internal/storage"
	"github.com/pribylovaa/news-compiler/internal/transport/http/handlers"
	"github.com/pribylovaa/news-compiler/mocks"
)

// Тесты HTTP-слоя поверх реального роутера и реального сервисного слоя
// с мок-хранилищем.
//
// Покрываем контракт REST API:
//  - GET  /api/articles/recent        — 200, порядок publish desc, nil-publish в конце;
//  - GET  /api/articles/recent/lite   — 200, тот же порядок, body == null;
//  - GET  /api/articles/{id}          — 200/400/404 по таблице контракта;
//  - POST /api/articles               — 200, порядок входа сохранён, id назначены;
//                                       400 на битый JSON/категорию, 500 на ошибку стораджа;
//  - GET  /api/categories             — 200, 15 меток;
//  - GET  /api/health/ping            — 200, литеральный "pong".

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, st storage.Storage) http.Handler {
	t.Helper()

	cfg := config.Config{
		Recent: config.RecentConfig{Window: 24 * time.Hour},
	}
	svc := service.New(st, cfg)

	return NewRouter(svc, Options{
		Logger:   silentLogger(),
		BasePath: "/api",
	})
}

func doRequest(t *testing.T, router http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeArticles(t *testing.T, rr *httptest.ResponseRecorder) []handlers.Article {
	t.Helper()

	var out []handlers.Article
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func timeptr(t time.Time) *time.Time { return &t }

func strptr(s string) *string { return &s }

func TestGetRecentArticles_OrderedByPublishDesc(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Second)

	// Три статьи с publish≈fetch (now, -1h, -2h) и четвёртая без publish-времени:
	// ожидаем now, -1h, -2h, затем статью без времени публикации.
	mk := func(id int64, title string, age time.Duration) models.Article {
		ts := now.Add(-age)
		return models.Article{
			ID: id, Title: title,
			Body:          strptr("body of " + title),
			TimePublished: timeptr(ts),
			TimeFetched:   ts,
			Category:      models.CategoryOther,
		}
	}
	noPub := models.Article{
		ID: 4, Title: "no-publish-time",
		Body:        strptr("body"),
		TimeFetched: now,
		Category:    models.CategoryOther,
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListArticles(gomock.Any()).
		Return([]models.Article{mk(2, "hour-old", time.Hour), noPub, mk(1, "newest", 0), mk(3, "two-hours-old", 2*time.Hour)}, nil)

	router := newTestRouter(t, mockSt)
	rr := doRequest(t, router, http.MethodGet, "/api/articles/recent", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	got := decodeArticles(t, rr)
	require.Len(t, got, 4)
	require.Equal(t, "newest", got[0].Title)
	require.Equal(t, "hour-old", got[1].Title)
	require.Equal(t, "two-hours-old", got[2].Title)
	require.Equal(t, "no-publish-time", got[3].Title)
	require.NotNil(t, got[0].Body)
}

func TestGetRecentArticlesLite_BodyNull(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListArticles(gomock.Any()).
		Return([]models.Article{
			{ID: 1, Title: "a", Body: strptr("text"), TimePublished: timeptr(now), TimeFetched: now, Category: models.CategoryOther},
		}, nil)

	router := newTestRouter(t, mockSt)
	rr := doRequest(t, router, http.MethodGet, "/api/articles/recent/lite", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	// Проверяем именно сырое значение поля: body обязан быть null, не "".
	var raw []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	require.Len(t, raw, 1)
	require.Equal(t, "null", string(raw[0]["body"]))
}

func TestGetRecentArticles_EmptyArray(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().ListArticles(gomock.Any()).Return(nil, nil)

	router := newTestRouter(t, mockSt)
	rr := doRequest(t, router, http.MethodGet, "/api/articles/recent", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, "[]", rr.Body.String())
}

func TestGetArticleByID_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Second)

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ArticleByID(gomock.Any(), int64(42)).
		Return(&models.Article{
			ID: 42, Title: "solo", Body: strptr("text"),
			TimePublished: timeptr(now), TimeFetched: now,
			Source: "AP", ArticleURL: "https://example.org/solo",
			Category: models.CategoryScience,
		}, nil)

	router := newTestRouter(t, mockSt)
	rr := doRequest(t, router, http.MethodGet, "/api/articles/42", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var got handlers.Article
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, int64(42), got.ID)
	require.Equal(t, "solo", got.Title)
	require.Equal(t, "SCIENCE", got.Category)
}

func TestGetArticleByID_BadID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Хранилище не вызывается ни для нечислового, ни для отрицательного id.
	mockSt := mocks.NewMockStorage(ctrl)
	router := newTestRouter(t, mockSt)

	for _, target := range []string{"/api/articles/abc", "/api/articles/-1"} {
		rr := doRequest(t, router, http.MethodGet, target, nil)
		require.Equal(t, http.StatusBadRequest, rr.Code, "target %s", target)

		var env struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		require.Equal(t, "invalid_argument", env.Error.Code)
	}
}

func TestGetArticleByID_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ArticleByID(gomock.Any(), int64(9000)).
		Return(nil, storage.ErrNotFound)

	router := newTestRouter(t, mockSt)
	rr := doRequest(t, router, http.MethodGet, "/api/articles/9000", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWriteArticles_RoundTripPreservesOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Second)

	payload := []handlers.Article{
		{Title: "first", Body: strptr("b1"), TimeFetched: timeptr(now), Category: "SCIENCE"},
		{Title: "second", Body: strptr("b2"), TimeFetched: timeptr(now), Category: "SPORTS"},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	nextID := int64(100)
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		SaveArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item models.Article) (*models.Article, error) {
			nextID++
			saved := item
			saved.ID = nextID
			return &saved, nil
		}).
		Times(2)

	router := newTestRouter(t, mockSt)
	rr := doRequest(t, router, http.MethodPost, "/api/articles", body)

	require.Equal(t, http.StatusOK, rr.Code)

	got := decodeArticles(t, rr)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Title)
	require.Equal(t, int64(101), got[0].ID)
	require.Equal(t, "second", got[1].Title)
	require.Equal(t, int64(102), got[1].ID)
}

func TestWriteArticles_MalformedJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, mocks.NewMockStorage(ctrl))

	rr := doRequest(t, router, http.MethodPost, "/api/articles", []byte(`{"not":"an array"`))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// Неизвестные поля тоже отклоняются — декодер строгий.
	rr = doRequest(t, router, http.MethodPost, "/api/articles", []byte(`[{"title":"x","category":"OTHER","surprise":true}]`))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWriteArticles_UnknownCategory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Запись не должна дойти до хранилища.
	router := newTestRouter(t, mocks.NewMockStorage(ctrl))

	rr := doRequest(t, router, http.MethodPost, "/api/articles", []byte(`[{"title":"x","category":"MEMES"}]`))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWriteArticles_StorageErrorIs500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		SaveArticle(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pool exhausted"))

	router := newTestRouter(t, mockSt)
	rr := doRequest(t, router, http.MethodPost, "/api/articles", []byte(`[{"title":"x","category":"OTHER"}]`))

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var env struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "internal", env.Error.Code)
	require.NotContains(t, env.Error.Message, "pool exhausted")
}

func TestGetCategories_AllLabels(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, mocks.NewMockStorage(ctrl))
	rr := doRequest(t, router, http.MethodGet, "/api/categories", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var labels []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &labels))
	require.Len(t, labels, 15)
	require.Equal(t, "United States Politics", labels[0])
	require.Contains(t, labels, "Technology")
	require.Equal(t, "Other", labels[14])
}

func TestHealthPing_Pong(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, mocks.NewMockStorage(ctrl))
	rr := doRequest(t, router, http.MethodGet, "/api/health/ping", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "pong", rr.Body.String())
}

func TestRouter_SetsRequestIDHeader(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, mocks.NewMockStorage(ctrl))
	rr := doRequest(t, router, http.MethodGet, "/api/health/ping", nil)

	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}
