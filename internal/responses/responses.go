package responses

import "tgshop/internal/structs"

var (
	Success      = structs.Response{Ok: true}
	BadRequest   = structs.Response{Ok: false, Msg: "bad request"}
	NotFound     = structs.Response{Ok: false, Msg: "not found"}
	Unauthorized = structs.Response{Ok: false, Msg: "unauthorized"}
	InternalErr  = structs.Response{Ok: false, Msg: "internal server error"}
)
