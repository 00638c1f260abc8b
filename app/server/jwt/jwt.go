package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"time"
)

type JWT struct {
	key []byte
}

type User struct {
	ID       uint
	Username string
	Expires  int64 // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 只接受 HS256 ，并且必须带有过期时间
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	// 匹配内容
	id, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid token: missing user_id")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token: missing username")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("invalid token: missing exp")
	}

	return &User{
		ID:       uint(id),
		Username: username,
		Expires:  exp.Unix(),
	}, nil
}

func (j *JWT) SignToken(user *User) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      user.Expires,
		"iat":      time.Now().Unix(),
		"jti":      uuid.NewString(),
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
