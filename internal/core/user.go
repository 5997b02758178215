package core

// Identity 驗證成功後放進 gin context 的登入者資訊
type Identity struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

const ContextIdentityKey = "identity"
