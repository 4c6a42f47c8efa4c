package ledgerapi

import (
	"github.com/rebasefi/CrossChain-RebaseToken/mongodb"
)

func convertCrossTransfer(mt *mongodb.MgoCrossTransfer) *TransferInfo {
	return &TransferInfo{
		TransferID:   mt.Key,
		Sender:       mt.Sender,
		Receiver:     mt.Receiver,
		SrcChainID:   mt.SrcChainID,
		DestChainID:  mt.DestChainID,
		Value:        mt.Value,
		PersonalRate: mt.PersonalRate,
		Status:       mt.Status.String(),
		InitTime:     mt.InitTime,
		Timestamp:    mt.Timestamp,
		Memo:         mt.Memo,
	}
}

func convertCrossTransfers(mts []*mongodb.MgoCrossTransfer) []*TransferInfo {
	result := make([]*TransferInfo, len(mts))
	for i, mt := range mts {
		result[i] = convertCrossTransfer(mt)
	}
	return result
}

func convertTransferResult(mr *mongodb.MgoTransferResult) *TransferResultInfo {
	return &TransferResultInfo{
		TransferID:   mr.Key,
		Sender:       mr.Sender,
		Receiver:     mr.Receiver,
		SrcChainID:   mr.SrcChainID,
		DestChainID:  mr.DestChainID,
		Value:        mr.Value,
		PersonalRate: mr.PersonalRate,
		Status:       mr.Status.String(),
		Timestamp:    mr.Timestamp,
		Memo:         mr.Memo,
	}
}

func convertVaultRecords(records []*mongodb.MgoVaultRecord) []*VaultRecordInfo {
	result := make([]*VaultRecordInfo, len(records))
	for i, record := range records {
		result[i] = &VaultRecordInfo{
			Account:   record.Account,
			Action:    record.Action,
			Value:     record.Value,
			Timestamp: record.Timestamp,
		}
	}
	return result
}

func convertRateChanges(records []*mongodb.MgoRateChange) []*RateChangeInfo {
	result := make([]*RateChangeInfo, len(records))
	for i, record := range records {
		result[i] = &RateChangeInfo{
			OldRate:   record.OldRate,
			NewRate:   record.NewRate,
			Caller:    record.Caller,
			Timestamp: record.Timestamp,
		}
	}
	return result
}
