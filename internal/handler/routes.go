package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"dao-client-sol/internal/svc"
)

// RegisterHandlers 注册全部路由
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{Method: http.MethodPost, Path: "/v1/dao", Handler: CreateDaoHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/v1/proposal", Handler: CreateProposalHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/v1/vote", Handler: VoteHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/v1/featured", Handler: FeaturedHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/v1/module", Handler: ModulesHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/v1/submit", Handler: SubmitHandler(svcCtx)},
		{Method: http.MethodGet, Path: "/v1/price", Handler: PriceHandler(svcCtx)},
	})
}
