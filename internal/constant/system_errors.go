package constant

// 系统级错误码 (1xxx)

const (
	CodeSuccess     = 0    // 操作成功
	CodeSystemError = 1000 // 系统内部错误
	CodeDBError     = 1001 // 数据库操作失败
	CodeCacheError  = 1002 // redis 操作失败
	CodeLockError   = 1003 // 分布式锁获取失败
	CodeMQError     = 1004 // 消息发布失败
	CodeParamError  = 1005 // 请求参数解析失败
)
