package handlers

import (
	"fmt"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"net/http"
	"seed-inventory/app/server/gen/oapi"
	"strings"
)

// RegisterHandlers 绑定所有路由，文档中声明了 security 的接口使用 auth 验证
func RegisterHandlers(e *echo.Echo, a *App, auth echo.MiddlewareFunc) error {
	e.Validator = &requestValidator{v: validator.New()}

	swg, err := oapi.GetSwagger()
	if err != nil {
		return fmt.Errorf("load api document: %w", err)
	}

	oapi.RegisterHandlers(newSecuredRouter(e, auth, swg), a)

	return nil
}

type requestValidator struct {
	v *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

// securedRouter 按接口文档给需要登录的路由加上认证中间件
type securedRouter struct {
	oapi.EchoRouter
	auth    echo.MiddlewareFunc
	secured map[string]bool // "METHOD /path/:param"
}

func newSecuredRouter(r oapi.EchoRouter, auth echo.MiddlewareFunc, swg *openapi3.T) *securedRouter {
	secured := map[string]bool{}
	for p, item := range swg.Paths.Map() {
		for method, op := range item.Operations() {
			security := op.Security
			if security == nil {
				// 没有单独声明时使用全局设置
				security = &swg.Security
			}
			if len(*security) > 0 {
				secured[method+" "+echoPath(p)] = true
			}
		}
	}

	return &securedRouter{
		EchoRouter: r,
		auth:       auth,
		secured:    secured,
	}
}

// echoPath 将 /data/{id} 转换为 echo 的 /data/:id
func echoPath(p string) string {
	return strings.NewReplacer("{", ":", "}", "").Replace(p)
}

func (r *securedRouter) middlewares(method, path string, m []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if r.secured[method+" "+path] {
		return append([]echo.MiddlewareFunc{r.auth}, m...)
	}
	return m
}

func (r *securedRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.GET(path, h, r.middlewares(http.MethodGet, path, m)...)
}

func (r *securedRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.POST(path, h, r.middlewares(http.MethodPost, path, m)...)
}

func (r *securedRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.PUT(path, h, r.middlewares(http.MethodPut, path, m)...)
}

func (r *securedRouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.DELETE(path, h, r.middlewares(http.MethodDelete, path, m)...)
}
