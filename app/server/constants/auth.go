package constants

import "time"

const (
	AuthTokenDuration = 2 * time.Hour // 令牌有效期，过期后需要重新登录

	TokenCookieName = "token"          // 浏览器使用的 cookie 名
	TokenFieldName  = "token"          // 请求体与查询参数中的字段名
	TokenHeaderName = "x-access-token" // 非浏览器客户端使用的请求头

	ContextKeyUser = "user" // 验证通过后 echo context 中保存令牌内容的键
)
