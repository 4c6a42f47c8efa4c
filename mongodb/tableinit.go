package mongodb

import (
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	tbCrossTransfers  string = "CrossTransfers"
	tbTransferResults string = "TransferResults"
	tbVaultRecords    string = "VaultRecords"
	tbRateChanges     string = "RateChanges"
)

var (
	database *mongo.Database

	collCrossTransfer  *mongo.Collection
	collTransferResult *mongo.Collection
	collVaultRecord    *mongo.Collection
	collRateChange     *mongo.Collection
)

func initCollections() {
	database = client.Database(databaseName)

	initCollection(tbCrossTransfers, &collCrossTransfer, "inittime", "status")
	initCollection(tbTransferResults, &collTransferResult, "inittime", "status")
	initCollection(tbVaultRecords, &collVaultRecord, "account", "timestamp")
	initCollection(tbRateChanges, &collRateChange, "timestamp")
}

func initCollection(table string, collection **mongo.Collection, indexKey ...string) {
	*collection = database.Collection(table)
	if len(indexKey) != 0 {
		createOneIndex(*collection, indexKey...)
	}
}

func createOneIndex(coll *mongo.Collection, indexes ...string) {
	keys := make([]bson.E, len(indexes))
	for i, index := range indexes {
		keys[i] = bson.E{Key: index, Value: 1}
	}
	model := mongo.IndexModel{Keys: keys}
	_, err := coll.Indexes().CreateOne(clientCtx, model)
	if err != nil {
		log.Error("[mongodb] create indexes failed", "collection", coll.Name(), "indexes", indexes, "err", err)
	}
}
