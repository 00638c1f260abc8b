package handlers

import (
	"errors"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"seed-inventory/app/server/constants"
	"seed-inventory/app/server/gen/oapi"
	"seed-inventory/app/server/jwt"
	"seed-inventory/app/server/models"
	"time"
)

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req oapi.AuthRegisterJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind register body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, messageInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest, messageInvalidBody)
	}

	// 检查用户名是否已被占用（区分大小写）
	var counter int64
	if err := a.db.WithContext(rctx).Model(&models.User{}).Where("username = ?", req.Username).Count(&counter).Error; err != nil {
		a.l.Error("failed to count user", zap.String("username", req.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error registering user")
	} else if counter > 0 {
		return a.er(c, http.StatusBadRequest, "Username already exists")
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error registering user")
	}

	// 创建用户
	user := models.User{
		Username: req.Username,
		Password: passwordHash,
	}
	if err = a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发注册同名用户，由唯一索引兜底
			return a.er(c, http.StatusBadRequest, "Username already exists")
		}
		a.l.Error("failed to create user", zap.String("username", req.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error registering user")
	}

	// 用新用户的 ID 签发令牌并记录，失败不影响注册结果
	if token, _, err := a.signUserToken(&user); err != nil {
		a.l.Warn("failed to sign token for new user", zap.Uint("id", user.ID), zap.Error(err))
	} else if err = a.db.WithContext(rctx).Model(&user).Update("token", token).Error; err != nil {
		a.l.Warn("failed to save token for new user", zap.Uint("id", user.ID), zap.Error(err))
	}

	return c.JSON(http.StatusCreated, &oapi.Message{
		Message: "User registered successfully!",
	})
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req oapi.AuthLoginJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind login body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, messageInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return a.er(c, http.StatusBadRequest, messageInvalidBody)
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusUnauthorized, "No username")
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "Error logging in")
		}
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error logging in")
	} else if !match {
		// 密码不一致
		return a.er(c, http.StatusUnauthorized, "Invalid username or password")
	}

	// 签出 JWT
	token, expires, err := a.signUserToken(&user)
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error logging in")
	}

	// 记录最近一次签发的令牌
	if err = a.db.WithContext(rctx).Model(&user).Update("token", token).Error; err != nil {
		a.l.Error("failed to save token", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error logging in")
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   a.isProd,
		SameSite: http.SameSiteStrictMode,
	})

	// 返回
	return c.JSON(http.StatusOK, &oapi.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

func (a *App) signUserToken(user *models.User) (string, time.Time, error) {
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:       user.ID,
		Username: user.Username,
		Expires:  expires.Unix(),
	})
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expires, nil
}
