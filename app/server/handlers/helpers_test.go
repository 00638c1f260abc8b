package handlers

import (
	"bytes"
	"encoding/json"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"net/http/httptest"
	"seed-inventory/app/server/config"
	"seed-inventory/app/server/inits"
	"seed-inventory/app/server/jwt"
	"seed-inventory/app/server/middlewares"
	"testing"
	"time"
)

const testSecret = "test-secret"

type testServer struct {
	e   *echo.Echo
	db  *gorm.DB
	jwt *jwt.JWT
	app *App
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存数据库每个连接都是独立的，只保留一个连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, inits.Migrate(db))
	return db
}

// newMockDB 用于模拟数据库故障
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newTestServerWithDB(t *testing.T, db *gorm.DB, opts ...func(*App)) *testServer {
	t.Helper()

	j, err := jwt.New(testSecret)
	require.NoError(t, err)

	a := NewApp(zap.NewNop(), db, nil, j, &config.Config{})
	for _, opt := range opts {
		opt(a)
	}

	e := echo.New()
	require.NoError(t, RegisterHandlers(e, a, middlewares.TokenAuth(j, zap.NewNop())))

	return &testServer{e: e, db: db, jwt: j, app: a}
}

func newTestServer(t *testing.T, opts ...func(*App)) *testServer {
	t.Helper()
	return newTestServerWithDB(t, newTestDB(t), opts...)
}

// token 签发一个有效的令牌，不经过登录流程
func (ts *testServer) token(t *testing.T) string {
	t.Helper()

	tok, err := ts.jwt.SignToken(&jwt.User{
		ID:       1,
		Username: "tester",
		Expires:  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	return tok
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		payload = b
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("x-access-token", token)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

type testBody struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) testBody {
	t.Helper()

	var body testBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
