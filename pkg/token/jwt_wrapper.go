package token

// 測試時可覆蓋
var ParseJWTFunc = ParseJWT

// ParseJWTWrapper middleware 透過這個包裝函數解析 token
func ParseJWTWrapper(t string) (*Claims, error) {
	return ParseJWTFunc(t)
}
