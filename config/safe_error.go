package config

// SafeErrorMessage 根据运行模式决定向客户端暴露的错误信息。
// release 模式下只返回 fallback，避免泄露内部实现细节；
// 其他模式（含未初始化配置的测试环境）返回原始错误便于排查。
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
