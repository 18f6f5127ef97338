package constant

// Response 统一响应格式
type Response struct {
	Code    int         `json:"code"`
	Kind    string      `json:"kind,omitempty"`
	Msg     string      `json:"msg"`
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func OK(data interface{}) Response {
	return Response{Code: CodeSuccess, Msg: "success", Data: data}
}

func Fail(err error) Response {
	if e, ok := err.(Error); ok {
		return Response{Code: e.Code(), Kind: e.Kind(), Msg: e.Message()}
	}
	return Response{Code: CodeSystemError, Kind: KindSystem, Msg: err.Error()}
}
