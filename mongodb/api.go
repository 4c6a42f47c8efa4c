package mongodb

import (
	"fmt"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	maxCountOfResults = int64(5000)
)

// checkTransferKey transfer ids are 0x prefixed keccak hashes
func checkTransferKey(transferID string) error {
	if _, err := common.HexToHash(transferID); err != nil {
		return ErrWrongKey
	}
	return nil
}

// --------------- cross transfer --------------------------------

// AddCrossTransfer add registered outbound transfer
func AddCrossTransfer(mt *MgoCrossTransfer) error {
	_, err := collCrossTransfer.InsertOne(clientCtx, mt)
	if err == nil {
		log.Info("mongodb add cross transfer", "transferID", mt.Key, "destChainID", mt.DestChainID)
	}
	return mgoError(err)
}

// FindCrossTransfer find outbound transfer by transfer id
func FindCrossTransfer(transferID string) (*MgoCrossTransfer, error) {
	if err := checkTransferKey(transferID); err != nil {
		return nil, err
	}
	var result MgoCrossTransfer
	err := collCrossTransfer.FindOne(clientCtx, bson.M{"_id": transferID}).Decode(&result)
	if err != nil {
		return nil, mgoError(err)
	}
	return &result, nil
}

// FindCrossTransfersWithStatus find outbound transfers in status since septime
func FindCrossTransfersWithStatus(status TransferStatus, septime int64) ([]*MgoCrossTransfer, error) {
	query := bson.M{"status": status, "inittime": bson.M{"$gte": septime}}
	opts := options.Find().SetSort(bson.M{"inittime": 1}).SetLimit(maxCountOfResults)
	cur, err := collCrossTransfer.Find(clientCtx, query, opts)
	if err != nil {
		return nil, mgoError(err)
	}
	result := make([]*MgoCrossTransfer, 0, 20)
	err = cur.All(clientCtx, &result)
	return result, mgoError(err)
}

// UpdateCrossTransferStatus update outbound transfer status
func UpdateCrossTransferStatus(transferID string, status TransferStatus, timestamp int64, memo string) error {
	if err := checkTransferKey(transferID); err != nil {
		return err
	}
	updates := bson.M{"status": status, "timestamp": timestamp}
	if memo != "" {
		updates["memo"] = memo
	} else if status == TxRegistered {
		updates["memo"] = ""
	}
	_, err := collCrossTransfer.UpdateByID(clientCtx, transferID, bson.M{"$set": updates})
	if err == nil {
		log.Info("mongodb update cross transfer status", "transferID", transferID, "status", status)
	}
	return mgoError(err)
}

// FindCrossTransferHistory find outbound transfers of one sender
func FindCrossTransferHistory(sender string, offset, limit int64) ([]*MgoCrossTransfer, error) {
	query := bson.M{}
	if sender != "" {
		query["sender"] = sender
	}
	opts := options.Find().SetSort(bson.M{"inittime": -1}).SetSkip(offset).SetLimit(limit)
	cur, err := collCrossTransfer.Find(clientCtx, query, opts)
	if err != nil {
		return nil, mgoError(err)
	}
	result := make([]*MgoCrossTransfer, 0, 20)
	err = cur.All(clientCtx, &result)
	return result, mgoError(err)
}

// --------------- transfer result --------------------------------

// AddTransferResult add inbound fulfillment result
func AddTransferResult(mr *MgoTransferResult) error {
	_, err := collTransferResult.InsertOne(clientCtx, mr)
	if err == nil {
		log.Info("mongodb add transfer result", "transferID", mr.Key, "status", mr.Status)
	}
	return mgoError(err)
}

// FindTransferResult find inbound fulfillment by transfer id
func FindTransferResult(transferID string) (*MgoTransferResult, error) {
	if err := checkTransferKey(transferID); err != nil {
		return nil, err
	}
	var result MgoTransferResult
	err := collTransferResult.FindOne(clientCtx, bson.M{"_id": transferID}).Decode(&result)
	if err != nil {
		return nil, mgoError(err)
	}
	return &result, nil
}

// UpdateTransferResultStatus update inbound fulfillment status
func UpdateTransferResultStatus(transferID string, status TransferStatus, timestamp int64, memo string) error {
	if err := checkTransferKey(transferID); err != nil {
		return err
	}
	updates := bson.M{"status": status, "timestamp": timestamp}
	if memo != "" {
		updates["memo"] = memo
	}
	_, err := collTransferResult.UpdateByID(clientCtx, transferID, bson.M{"$set": updates})
	return mgoError(err)
}

// --------------- vault record --------------------------------

// AddVaultRecord add deposit or redemption record
func AddVaultRecord(account, action string, value string, timestamp int64) error {
	record := &MgoVaultRecord{
		Key:       fmt.Sprintf("%v:%v:%v", account, action, common.NowMilliStr()),
		Account:   account,
		Action:    action,
		Value:     value,
		Timestamp: timestamp,
	}
	_, err := collVaultRecord.InsertOne(clientCtx, record)
	return mgoError(err)
}

// FindVaultRecords find vault records of one account
func FindVaultRecords(account string, offset, limit int64) ([]*MgoVaultRecord, error) {
	query := bson.M{"account": account}
	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetSkip(offset).SetLimit(limit)
	cur, err := collVaultRecord.Find(clientCtx, query, opts)
	if err != nil {
		return nil, mgoError(err)
	}
	result := make([]*MgoVaultRecord, 0, 20)
	err = cur.All(clientCtx, &result)
	return result, mgoError(err)
}

// --------------- rate change --------------------------------

// AddRateChange add global rate change record
func AddRateChange(oldRate, newRate, caller string, timestamp int64) error {
	record := &MgoRateChange{
		Key:       fmt.Sprintf("%v:%v", timestamp, common.NowMilliStr()),
		OldRate:   oldRate,
		NewRate:   newRate,
		Caller:    caller,
		Timestamp: timestamp,
	}
	_, err := collRateChange.InsertOne(clientCtx, record)
	return mgoError(err)
}

// FindRateChanges find the rate change history, latest first
func FindRateChanges(limit int64) ([]*MgoRateChange, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(limit)
	cur, err := collRateChange.Find(clientCtx, bson.M{}, opts)
	if err != nil {
		return nil, mgoError(err)
	}
	result := make([]*MgoRateChange, 0, 20)
	err = cur.All(clientCtx, &result)
	return result, mgoError(err)
}
