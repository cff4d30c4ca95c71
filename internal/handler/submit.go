package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/rest/httpx"

	"dao-client-sol/internal/chain"
	"dao-client-sol/internal/mq"
	"dao-client-sol/internal/svc"
	"dao-client-sol/pkg/logger"
)

// confirmTimeout 等待目标确认级别的上限
const confirmTimeout = 90 * time.Second

// SubmitHandler 接收钱包补签完成的信封：广播、确认、发布入库事件
func SubmitHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		raw, err := base64.StdEncoding.DecodeString(req.Envelope)
		if err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: "envelope is not valid base64"})
			return
		}
		tx, err := sdktypes.TransactionDeserialize(raw)
		if err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: "envelope is not a valid transaction"})
			return
		}

		level := chain.CommitLevel(req.Level)
		switch level {
		case "":
			level = chain.CommitConfirmed
		case chain.CommitProcessed, chain.CommitConfirmed, chain.CommitFinalized:
		default:
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: "unknown confirm level"})
			return
		}

		txID, err := svcCtx.Ledger.Submit(r.Context(), tx)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), confirmTimeout)
		defer cancel()
		status, err := svcCtx.Ledger.Confirm(ctx, txID, level)
		if err != nil {
			writeError(w, r, err)
			return
		}

		// 确认成功后通知下游入库；发布失败不影响本次响应，下游有对账兜底
		if !status.Failed && req.PublicID != "" {
			if err := svcCtx.Publisher.Publish(mq.RecordEvent{
				Kind:     req.Kind,
				PublicID: req.PublicID,
				TxID:     txID,
				Level:    string(status.Level),
			}); err != nil {
				logger.Warnf("发布确认事件失败: tx=%s err=%v", txID, err)
			}
		}

		httpx.OkJsonCtx(r.Context(), w, SubmitResp{
			TxID:   txID,
			Level:  string(status.Level),
			Failed: status.Failed,
		})
	}
}

// PriceHandler 返回当前缓存单价；缓存陈旧时直连价格源并回填
func PriceHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cents, fetchedAt, ok := svcCtx.PriceCache.Get(r.Context()); ok {
			httpx.OkJsonCtx(r.Context(), w, PriceResp{
				UnitPriceCents: cents,
				FetchedAt:      fetchedAt.Unix(),
				Cached:         true,
			})
			return
		}

		cents, err := svcCtx.Oracle.UnitPriceCents(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		svcCtx.PriceCache.Set(r.Context(), cents)
		httpx.OkJsonCtx(r.Context(), w, PriceResp{UnitPriceCents: cents, Cached: false})
	}
}
