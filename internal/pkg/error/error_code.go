package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY   = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS = 40001 // 400 - 無效的請求參數

	// 40100 ~ 40199: 驗證錯誤 (401 系列)
	UNAUTHORIZED    = 40100 // 401 - 未授權
	INVALID_SESSION = 40101 // 401 - 會話失效

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	SERVICE_UNAVAILABLE = 50300 // 503 - 上游資料來源不可用
)
