package status

const (
	OK                    = "OK"
	BAD_REQUEST           = "BAD_REQUEST"
	NOT_FOUND             = "NOT_FOUND"
	MOVED_PERMANENTLY     = "MOVED_PERMANENTLY"
	UNPROCESSABLE_ENTITY  = "UNPROCESSABLE_ENTITY"
	INTERNAL_SERVER_ERROR = "INTERNAL_SERVER_ERROR"
	BAD_GATEWAY           = "BAD_GATEWAY"
)
