package config

type Config struct {
	// 基础配置
	IsProd             bool
	DBConnectionString string

	// 导入配置
	Source      string // 本地路径或 s3://bucket/key
	Concurrency int    // 同时进行的写入数量上限
	ExitOnDone  bool   // 导入完成后直接退出，而不是等待中断信号

	// 对象存储配置，仅在 Source 为 s3:// 时使用
	S3 struct {
		Region    string
		Endpoint  string // 留空使用 AWS 默认端点，填写则按 path-style 访问（例如 MinIO）
		AccessKey string // 留空使用默认凭证链
		SecretKey string
	}
}
