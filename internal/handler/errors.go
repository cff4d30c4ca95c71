package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"dao-client-sol/internal/chain"
	"dao-client-sol/internal/codec"
	"dao-client-sol/internal/fee"
	"dao-client-sol/internal/oracle"
	"dao-client-sol/internal/program"
	"dao-client-sol/internal/txbuilder"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeError 将核心库的错误类别映射为 HTTP 状态码：
// 输入类错误 400，上游依赖不可用 502，其余 500。
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, program.ErrValidation),
		errors.Is(err, program.ErrInvalidIdentifier),
		errors.Is(err, txbuilder.ErrWalletNotConnected),
		errors.Is(err, fee.ErrUnitPriceOutOfRange),
		errors.Is(err, codec.ErrEncodingOverflow):
		status = http.StatusBadRequest
	case errors.Is(err, oracle.ErrPriceUnavailable),
		errors.Is(err, chain.ErrBlockhashUnavailable):
		status = http.StatusBadGateway
	}
	httpx.WriteJsonCtx(r.Context(), w, status, errorBody{Error: err.Error()})
}
