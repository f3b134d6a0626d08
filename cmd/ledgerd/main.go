package main

import (
	"context"
	"fmt"

	"github.com/duocun-ca/ledgercore/internal/adapter/config"
	"github.com/duocun-ca/ledgercore/internal/adapter/handler/http"
	"github.com/duocun-ca/ledgercore/internal/adapter/idgen"
	"github.com/duocun-ca/ledgercore/internal/adapter/logger"
	"github.com/duocun-ca/ledgercore/internal/adapter/storage"
	"github.com/duocun-ca/ledgercore/internal/adapter/storage/repository"
	"github.com/duocun-ca/ledgercore/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	ids := idgen.New()

	ledger, err := service.NewLedger(repo, ids, log.Named("Ledger"))
	if err != nil {
		log.Error("ledger service creating error", zap.Error(err))
		return
	}
	orders, err := service.NewOrders(repo, ledger, ids, log.Named("Orders"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	pickups, err := service.NewPickups(repo, ids, log.Named("Pickups"))
	if err != nil {
		log.Error("pickup service creating error", zap.Error(err))
		return
	}

	accountHandler, err := http.NewAccountHandler(ledger, log.Named("Account handler"))
	if err != nil {
		log.Error("account handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(orders, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	pickupHandler, err := http.NewPickupHandler(pickups, log.Named("Pickup handler"))
	if err != nil {
		log.Error("pickup handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, accountHandler, orderHandler, pickupHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
