package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Username string `gorm:"column:username;uniqueIndex;not null"` // 用户名，全局唯一，区分大小写

	// 登录与授权认证相关
	Password string `gorm:"column:password;not null"` // 密码，使用 argon2id 储存
	Token    string `gorm:"column:token"`             // 最近一次签发的 JWT ，仅作记录，验证不依赖它
}
