package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"iso-rate-api/internal/config"
	"iso-rate-api/internal/contract"
	"iso-rate-api/internal/dal"
	"iso-rate-api/internal/handler"
	"iso-rate-api/internal/idgen"
	"iso-rate-api/internal/lock"
	"iso-rate-api/internal/middleware"
	"iso-rate-api/internal/service"
	"iso-rate-api/internal/settle"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitTxnDB()
	dal.InitRedis()
	dal.InitRabbitMQ()
	lock.Init()

	// idgen
	idgen.Init(1)

	// scheduled batches
	startScheduler()

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Recover())

	rh := handler.NewRateHandler()
	ch := handler.NewContractHandler()
	lh := handler.NewLifecycleHandler()
	sh := handler.NewSettlementHandler()
	nh := handler.NewNotificationHandler()

	v1 := r.Group("/api/v1", middleware.AuthActor())
	{
		v1.GET("/rates", rh.Query)

		v1.POST("/rate-tables/import", rh.ImportCandidates)
		v1.POST("/rate-tables/:id/versions", lh.CreateNewVersion)

		v1.POST("/bindings/:id/propagate", lh.Propagate)
		v1.POST("/bindings/:id/submit", ch.BindingTransition(contract.ActionSubmit))
		v1.POST("/bindings/:id/approve", ch.BindingTransition(contract.ActionApprove))
		v1.POST("/bindings/:id/reject", ch.BindingTransition(contract.ActionReject))
		v1.POST("/bindings/:id/deactivate", ch.BindingTransition(contract.ActionDeactivate))
		v1.POST("/bindings/:id/reactivate", ch.BindingTransition(contract.ActionReactivate))

		v1.POST("/partners/:id/links", ch.LinkPartner)
		v1.DELETE("/partners/:id/links/:linkId", ch.UnlinkPartner)
		v1.PUT("/partners/:id/platform-margins", rh.UpsertPlatformMargin)

		v1.POST("/links/:id/submit", ch.Transition(contract.ActionSubmit))
		v1.POST("/links/:id/approve", ch.Transition(contract.ActionApprove))
		v1.POST("/links/:id/reject", ch.Transition(contract.ActionReject))
		v1.POST("/links/:id/deactivate", ch.Transition(contract.ActionDeactivate))
		v1.POST("/links/:id/reactivate", ch.Transition(contract.ActionReactivate))

		v1.PUT("/links/:id/margins", rh.UpsertPartnerMargin)
		v1.PUT("/links/:id/overrides", rh.UpsertOverride)
		v1.POST("/links/:id/overrides/revert", rh.RevertOverride)

		v1.POST("/settlements/consolidate", sh.Consolidate)
		v1.POST("/settlements/process-accumulation", sh.ProcessAccumulation)
		v1.POST("/lifecycle/sweep", lh.Sweep)

		v1.GET("/partners/:id/notifications", nh.List)
		v1.POST("/notifications/:id/read", nh.MarkRead)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

// startScheduler wires the three batch passes. Each entry point takes
// its own redsync lock, so overlapping ticks across instances are safe.
func startScheduler() {
	if !config.C.Sweep.Enabled {
		log.Printf("scheduler disabled by config")
		return
	}

	lifecycleSvc := service.NewLifecycleService()
	settlementSvc := service.NewSettlementService()

	c := cron.New()

	// daily expiration sweep
	c.AddFunc("0 3 * * *", func() {
		if _, err := lifecycleSvc.SweepExpirations(context.Background()); err != nil {
			log.Printf("scheduled sweep failed: %v", err)
		}
	})

	// monthly consolidation of the previous calendar month
	c.AddFunc("0 4 1 * *", func() {
		month, year := settle.PrevPeriod(time.Now())
		if _, err := settlementSvc.Consolidate(month, year); err != nil {
			log.Printf("scheduled consolidate %02d/%d failed: %v", month, year, err)
		}
	})

	// accumulation pass the day after the invoice deadline
	c.AddFunc("0 5 * * *", func() {
		now := time.Now()
		if now.Day() != config.C.Settlement.InvoiceDeadlineDay+1 {
			return
		}
		month, year := settle.PrevPeriod(now)
		if _, err := settlementSvc.ProcessAccumulation(month, year); err != nil {
			log.Printf("scheduled accumulation %02d/%d failed: %v", month, year, err)
		}
	})

	c.Start()
}
