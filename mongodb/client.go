// Package mongodb persists cross chain transfer records, vault records and
// rate change history.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client    *mongo.Client
	clientCtx = context.Background()

	databaseName string
	databaseURL  string
)

// HasClient has client connected
func HasClient() bool {
	return client != nil
}

// MongoServerInit connects to the mongodb server and initializes the
// collections. Blocks until the first connect succeeds.
func MongoServerInit(appName, url, dbName, user, pass string) {
	databaseName = dbName
	if user != "" {
		databaseURL = fmt.Sprintf("mongodb://%v:%v@%v/%v", user, pass, url, dbName)
	} else {
		databaseURL = fmt.Sprintf("mongodb://%v/%v", url, dbName)
	}
	mongoConnect(appName)
	initCollections()
	go checkMongoSession(appName)
}

func mongoConnect(appName string) {
	log.Info("[mongodb] connect database start", "dbName", databaseName)
	for {
		err := doConnect(appName)
		if err == nil {
			break
		}
		log.Warn("[mongodb] connect database failed", "dbName", databaseName, "err", err)
		time.Sleep(1 * time.Second)
	}
	log.Info("[mongodb] connect database finished", "dbName", databaseName)
}

func doConnect(appName string) error {
	ctx, cancel := context.WithTimeout(clientCtx, 10*time.Second)
	defer cancel()
	opts := options.Client().ApplyURI(databaseURL).SetAppName(appName)
	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	if err = c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(clientCtx)
		return err
	}
	if client != nil { // when reconnect
		_ = client.Disconnect(clientCtx)
	}
	client = c
	return nil
}

func checkMongoSession(appName string) {
	for {
		time.Sleep(60 * time.Second)
		if err := sessionPing(); err != nil {
			log.Error("[mongodb] session ping failed", "err", err)
			log.Info("[mongodb] reconnect database", "dbName", databaseName)
			mongoConnect(appName)
			initCollections()
		}
	}
}

func sessionPing() error {
	ctx, cancel := context.WithTimeout(clientCtx, 10*time.Second)
	defer cancel()
	return client.Ping(ctx, nil)
}
