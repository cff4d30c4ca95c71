package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/zeromicro/go-zero/rest/httpx"

	"dao-client-sol/internal/consts"
	"dao-client-sol/internal/fee"
	"dao-client-sol/internal/program"
	"dao-client-sol/internal/svc"
)

// resolveUnitPrice 决定本次付费指令使用的单价：显式覆盖 > 缓存 > 直连价格源。
// 覆盖价同样过边界校验（链上程序会拒绝区间外的单价）。
func resolveUnitPrice(ctx context.Context, svcCtx *svc.ServiceContext, override *uint64) (uint64, error) {
	if override != nil {
		if *override < consts.MinUnitPriceCents || *override > consts.MaxUnitPriceCents {
			return 0, fmt.Errorf("override price %d cents not in [%d, %d]: %w",
				*override, consts.MinUnitPriceCents, consts.MaxUnitPriceCents, fee.ErrUnitPriceOutOfRange)
		}
		return *override, nil
	}
	if cents, _, ok := svcCtx.PriceCache.Get(ctx); ok {
		return cents, nil
	}
	cents, err := svcCtx.Oracle.UnitPriceCents(ctx)
	if err != nil {
		return 0, err
	}
	svcCtx.PriceCache.Set(ctx, cents)
	return cents, nil
}

// buildAndRespond 公共尾段：组装信封并编码响应
func buildAndRespond(w http.ResponseWriter, r *http.Request, svcCtx *svc.ServiceContext,
	wallet string, ins program.Instruction, unitPriceCents uint64) {

	res, err := svcCtx.Assembler.Build(r.Context(), wallet, ins)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := BuildResp{
		Kind:     res.Kind.String(),
		PublicID: res.NewAccount.PublicKey.ToBase58(),
		Envelope: base64.StdEncoding.EncodeToString(res.Envelope),
	}
	if ins.Kind.Paid() {
		lamports, err := fee.LamportsForUSD(consts.CreateDaoFeeUSD, unitPriceCents)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.UnitPriceCents = unitPriceCents
		resp.FeeLamports = lamports
	}
	httpx.OkJsonCtx(r.Context(), w, resp)
}

func CreateDaoHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDaoReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		cents, err := resolveUnitPrice(r.Context(), svcCtx, req.UnitPriceCents)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ins, err := program.BuildCreateDao(program.CreateDaoArgs{
			Name:           req.Name,
			Description:    req.Description,
			Discord:        req.Discord,
			Twitter:        req.Twitter,
			Telegram:       req.Telegram,
			Instagram:      req.Instagram,
			TikTok:         req.TikTok,
			Website:        req.Website,
			Treasury:       req.Treasury,
			Profile:        req.Profile,
			TokenAddress:   req.TokenAddress,
			UnitPriceCents: cents,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		buildAndRespond(w, r, svcCtx, req.Wallet, ins, cents)
	}
}

func CreateProposalHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProposalReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		// 时间约束在入口处拦截，编码层保持宽容（链上程序仍会复核）
		now := time.Now().Unix()
		if req.StartTime < now {
			writeError(w, r, fmt.Errorf("start_time %d is in the past: %w", req.StartTime, program.ErrValidation))
			return
		}
		if req.EndTime <= req.StartTime {
			writeError(w, r, fmt.Errorf("end_time %d not after start_time %d: %w", req.EndTime, req.StartTime, program.ErrValidation))
			return
		}

		ins, err := program.BuildCreateProposal(program.CreateProposalArgs{
			Name:        req.Name,
			Description: req.Description,
			DaoID:       req.DaoID,
			PodID:       req.PodID,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		buildAndRespond(w, r, svcCtx, req.Wallet, ins, 0)
	}
}

func VoteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoteReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		ins, err := program.BuildVote(program.VoteArgs{
			Vote:       req.Vote,
			ProposalID: req.ProposalID,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		buildAndRespond(w, r, svcCtx, req.Wallet, ins, 0)
	}
}

func FeaturedHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FeaturedReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		cents, err := resolveUnitPrice(r.Context(), svcCtx, req.UnitPriceCents)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ins, err := program.BuildFeatured(program.FeaturedArgs{
			DaoID:          req.DaoID,
			UnitPriceCents: cents,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		buildAndRespond(w, r, svcCtx, req.Wallet, ins, cents)
	}
}

func ModulesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModulesReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		cents, err := resolveUnitPrice(r.Context(), svcCtx, req.UnitPriceCents)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ins, err := program.BuildModules(program.ModulesArgs{
			DaoID:          req.DaoID,
			ModuleType:     req.ModuleType,
			UnitPriceCents: cents,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		buildAndRespond(w, r, svcCtx, req.Wallet, ins, cents)
	}
}
