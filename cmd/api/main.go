package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"

	"dao-client-sol/internal/config"
	"dao-client-sol/internal/handler"
	"dao-client-sol/internal/service"
	"dao-client-sol/internal/svc"
	"dao-client-sol/pkg/logger"
)

var configFile = flag.String("f", "etc/api.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.ApiConfig
	conf.MustLoad(*configFile, &c)

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer serviceContext.Close()

	// 价格刷新服务：保持缓存单价新鲜，REST 入口优先读缓存
	priceRefresh := service.NewPriceRefreshService(
		serviceContext.Oracle, serviceContext.PriceCache, c.OracleConf.RefreshInterval())

	server := rest.MustNewServer(c.Rest)
	handler.RegisterHandlers(server, serviceContext)

	sg := zerosvc.NewServiceGroup()
	sg.Add(priceRefresh)
	sg.Add(server)

	logx.Infof("Starting dao api service at %s:%d", c.Rest.Host, c.Rest.Port)

	// 启动服务
	sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logx.Info("Shutting down services...")
	sg.Stop()
}
