package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串，留空则不启用记录缓存
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生 JWT ，更新会导致旧有会话失效
	}
	Compat struct {
		LegacyStatusCodes bool // 更新与删除成功时返回 201 ，兼容旧客户端
	}
}
