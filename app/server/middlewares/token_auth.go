package middlewares

import (
	"bytes"
	"encoding/json"
	"errors"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"io"
	"net/http"
	"seed-inventory/app/server/constants"
	"seed-inventory/app/server/jwt"
	"strings"
)

const (
	MessageTokenRequired = "A token is required for authentication"
	MessageTokenInvalid  = "Invalid Token"
)

var ErrTokenMissing = errors.New("token missing")

type message struct {
	Message string `json:"message"`
}

// TokenAuth 验证请求携带的 JWT ，通过后将 *jwt.User 放入 context
func TokenAuth(j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:       constants.ContextKeyUser,
		TokenLookupFuncs: []middleware.ValuesExtractor{LookupToken},
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.ParseUser(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, ErrTokenMissing) {
				return c.JSON(http.StatusForbidden, &message{Message: MessageTokenRequired})
			}

			l.Debug("rejected token", zap.String("URI", c.Request().RequestURI), zap.Error(err))
			return c.JSON(http.StatusUnauthorized, &message{Message: MessageTokenInvalid})
		},
	})
}

// LookupToken 按 cookie 、请求体、查询参数、请求头的顺序查找，只返回第一个找到的
func LookupToken(c echo.Context) ([]string, error) {
	if cookie, err := c.Cookie(constants.TokenCookieName); err == nil && cookie.Value != "" {
		return []string{cookie.Value}, nil
	}

	if token := bodyToken(c); token != "" {
		return []string{token}, nil
	}

	if token := c.QueryParam(constants.TokenFieldName); token != "" {
		return []string{token}, nil
	}

	if token := c.Request().Header.Get(constants.TokenHeaderName); token != "" {
		return []string{token}, nil
	}

	return nil, ErrTokenMissing
}

func bodyToken(c echo.Context) string {
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody || req.ContentLength == 0 {
		return ""
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		// 还原请求体，之后的 handler 还需要绑定
		req.Body = io.NopCloser(bytes.NewReader(b))
		if err != nil {
			return ""
		}

		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(b, &body); err != nil {
			return ""
		}
		return body.Token
	case strings.HasPrefix(ctype, echo.MIMEApplicationForm), strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		// 表单解析结果会被缓存，不影响之后的绑定
		return req.PostFormValue(constants.TokenFieldName)
	default:
		return ""
	}
}

// CurrentUser 取出验证通过的令牌内容
func CurrentUser(c echo.Context) (*jwt.User, bool) {
	u, ok := c.Get(constants.ContextKeyUser).(*jwt.User)
	return u, ok
}
